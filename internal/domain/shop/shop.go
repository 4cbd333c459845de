// Package shop defines the tenant domain model. A shop is one isolated
// storefront within the shared platform.
package shop

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/brandini/brandini/internal/domain"
)

// Template is the overall storefront layout.
type Template string

const (
	TemplateMinimal  Template = "minimal"
	TemplateBoutique Template = "boutique"
	TemplatePlayful  Template = "playful"
)

// HeroStyle controls the storefront hero section.
type HeroStyle string

const (
	HeroFullImage HeroStyle = "full-image"
	HeroSplit     HeroStyle = "split"
	HeroVideo     HeroStyle = "video"
	HeroMinimal   HeroStyle = "minimal"
)

// CardStyle controls product card rendering.
type CardStyle string

const (
	CardClean    CardStyle = "clean"
	CardElevated CardStyle = "elevated"
	CardBordered CardStyle = "bordered"
)

// Font is a storefront typography choice.
type Font string

const (
	FontInter      Font = "inter"
	FontPlayfair   Font = "playfair"
	FontMontserrat Font = "montserrat"
	FontPoppins    Font = "poppins"
)

var validTemplates = map[Template]bool{TemplateMinimal: true, TemplateBoutique: true, TemplatePlayful: true}
var validHeroStyles = map[HeroStyle]bool{HeroFullImage: true, HeroSplit: true, HeroVideo: true, HeroMinimal: true}
var validCardStyles = map[CardStyle]bool{CardClean: true, CardElevated: true, CardBordered: true}
var validFonts = map[Font]bool{FontInter: true, FontPlayfair: true, FontMontserrat: true, FontPoppins: true}

// Theme groups the visual attributes a shop owner can customize.
type Theme struct {
	Template       Template  `json:"template"`
	HeroStyle      HeroStyle `json:"hero_style"`
	CardStyle      CardStyle `json:"card_style"`
	PrimaryColor   string    `json:"primary_color"`
	SecondaryColor string    `json:"secondary_color"`
	Font           Font      `json:"font"`
}

// Validate checks every theme field against its closed value set.
func (t *Theme) Validate() error {
	if !validTemplates[t.Template] {
		return fmt.Errorf("invalid template %q", t.Template)
	}
	if !validHeroStyles[t.HeroStyle] {
		return fmt.Errorf("invalid hero style %q", t.HeroStyle)
	}
	if !validCardStyles[t.CardStyle] {
		return fmt.Errorf("invalid card style %q", t.CardStyle)
	}
	if !hexColorRegex.MatchString(t.PrimaryColor) {
		return fmt.Errorf("invalid primary color %q", t.PrimaryColor)
	}
	if !hexColorRegex.MatchString(t.SecondaryColor) {
		return fmt.Errorf("invalid secondary color %q", t.SecondaryColor)
	}
	if !validFonts[t.Font] {
		return fmt.Errorf("invalid font %q", t.Font)
	}
	return nil
}

// DefaultTheme is applied to newly provisioned shops.
func DefaultTheme() Theme {
	return Theme{
		Template:       TemplateMinimal,
		HeroStyle:      HeroFullImage,
		CardStyle:      CardClean,
		PrimaryColor:   "#111827",
		SecondaryColor: "#F3F4F6",
		Font:           FontInter,
	}
}

// ContactLinks holds optional social/contact URLs shown in the storefront footer.
type ContactLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Shop is a tenant record. The subdomain is globally unique and immutable
// after creation; exactly one owner per shop.
type Shop struct {
	ID             domain.ID    `json:"id"`
	Name           string       `json:"name"`
	Subdomain      string       `json:"subdomain"`
	OwnerID        domain.ID    `json:"owner_id"`
	Active         bool         `json:"active"`
	Description    string       `json:"description,omitempty"`
	WhatsAppNumber string       `json:"whatsapp_number,omitempty"`
	Theme          Theme        `json:"theme"`
	Contact        ContactLinks `json:"contact"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

var subdomainRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// reservedSubdomains can never be provisioned as tenant subdomains because
// the tenant resolver routes them specially.
var reservedSubdomains = map[string]bool{
	"dashboard": true,
	"api":       true,
	"www":       true,
}

// CreateRequest holds the fields required to provision a new shop.
type CreateRequest struct {
	Name           string    `json:"name"`
	Subdomain      string    `json:"subdomain"`
	OwnerID        domain.ID `json:"owner_id"`
	WhatsAppNumber string    `json:"whatsapp_number,omitempty"`
}

// Validate checks the provisioning request. Reserved subdomains are rejected
// here so the resolver never has to disambiguate a tenant named "dashboard".
func (r *CreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("shop name is required")
	}
	if !subdomainRegex.MatchString(r.Subdomain) {
		return fmt.Errorf("invalid subdomain %q: must be 3-63 lowercase alphanumeric characters or hyphens", r.Subdomain)
	}
	if reservedSubdomains[r.Subdomain] {
		return fmt.Errorf("subdomain %q is reserved", r.Subdomain)
	}
	if r.OwnerID.Zero() {
		return errors.New("owner id is required")
	}
	return nil
}

// UpdateRequest holds the owner-editable settings. The subdomain and owner
// are immutable and deliberately absent.
type UpdateRequest struct {
	Name           string        `json:"name,omitempty"`
	Description    *string       `json:"description,omitempty"`
	WhatsAppNumber *string       `json:"whatsapp_number,omitempty"`
	Active         *bool         `json:"active,omitempty"`
	Theme          *Theme        `json:"theme,omitempty"`
	Contact        *ContactLinks `json:"contact,omitempty"`
}
