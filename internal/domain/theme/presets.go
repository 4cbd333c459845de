// Package theme provides the static theme preset catalog shown in the
// dashboard's preset gallery. Presets are descriptive data only; applying
// one copies its values onto the shop's theme.
package theme

import "github.com/brandini/brandini/internal/domain/shop"

// Preset is a curated theme configuration with descriptive metadata.
type Preset struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"` // fashion, electronics, food, handmade, beauty, general
	Style       string     `json:"style"`    // minimal, bold, elegant, playful
	ColorScheme string     `json:"color_scheme"`
	Badge       string     `json:"badge,omitempty"` // popular, premium, new
	BestFor     []string   `json:"best_for"`
	Mood        []string   `json:"mood"`
	Values      shop.Theme `json:"values"`
}

// Presets is the full catalog, in display order.
var Presets = []Preset{
	{
		ID:          "modern-minimal",
		Name:        "Modern Minimal",
		Description: "Clean lines, ample whitespace, and product-first design for fashion and lifestyle brands.",
		Category:    "fashion",
		Style:       "minimal",
		ColorScheme: "monochrome",
		Badge:       "popular",
		BestFor:     []string{"Fashion", "Lifestyle", "General Stores"},
		Mood:        []string{"Professional", "Clean", "Modern"},
		Values: shop.Theme{
			Template:       shop.TemplateMinimal,
			HeroStyle:      shop.HeroFullImage,
			CardStyle:      shop.CardClean,
			PrimaryColor:   "#111827",
			SecondaryColor: "#F3F4F6",
			Font:           shop.FontInter,
		},
	},
	{
		ID:          "boutique-luxe",
		Name:        "Luxury Boutique",
		Description: "Sophisticated and elegant with warm tones and refined spacing for premium products.",
		Category:    "fashion",
		Style:       "elegant",
		ColorScheme: "light",
		Badge:       "premium",
		BestFor:     []string{"Luxury Boutiques", "High-end Fashion", "Jewelry"},
		Mood:        []string{"Sophisticated", "Elegant", "Premium"},
		Values: shop.Theme{
			Template:       shop.TemplateBoutique,
			HeroStyle:      shop.HeroSplit,
			CardStyle:      shop.CardElevated,
			PrimaryColor:   "#92400E",
			SecondaryColor: "#FEF3C7",
			Font:           shop.FontPlayfair,
		},
	},
	{
		ID:          "street-bold",
		Name:        "Bold Urban",
		Description: "High contrast design with strong borders and dramatic visuals for streetwear and youth brands.",
		Category:    "fashion",
		Style:       "bold",
		ColorScheme: "dark",
		Badge:       "new",
		BestFor:     []string{"Streetwear", "Urban Fashion", "Electronics"},
		Mood:        []string{"Bold", "Energetic", "Urban"},
		Values: shop.Theme{
			Template:       shop.TemplatePlayful,
			HeroStyle:      shop.HeroVideo,
			CardStyle:      shop.CardBordered,
			PrimaryColor:   "#111827",
			SecondaryColor: "#F97316",
			Font:           shop.FontMontserrat,
		},
	},
	{
		ID:          "beauty-soft",
		Name:        "Soft & Elegant",
		Description: "Soft pastels and gentle aesthetics for beauty, cosmetics and wellness products.",
		Category:    "beauty",
		Style:       "elegant",
		ColorScheme: "light",
		BestFor:     []string{"Beauty Products", "Cosmetics", "Wellness"},
		Mood:        []string{"Soft", "Gentle", "Feminine"},
		Values: shop.Theme{
			Template:       shop.TemplateBoutique,
			HeroStyle:      shop.HeroMinimal,
			CardStyle:      shop.CardElevated,
			PrimaryColor:   "#EC4899",
			SecondaryColor: "#FCE7F3",
			Font:           shop.FontPoppins,
		},
	},
	{
		ID:          "fresh-market",
		Name:        "Fresh Market",
		Description: "Warm, appetizing colors and friendly layout for food, grocery and handmade goods.",
		Category:    "food",
		Style:       "playful",
		ColorScheme: "colorful",
		BestFor:     []string{"Food", "Grocery", "Handmade"},
		Mood:        []string{"Warm", "Friendly", "Inviting"},
		Values: shop.Theme{
			Template:       shop.TemplatePlayful,
			HeroStyle:      shop.HeroSplit,
			CardStyle:      shop.CardClean,
			PrimaryColor:   "#15803D",
			SecondaryColor: "#FEF9C3",
			Font:           shop.FontPoppins,
		},
	},
	{
		ID:          "tech-dark",
		Name:        "Tech Dark",
		Description: "Sleek dark scheme with sharp cards for electronics and gadget stores.",
		Category:    "electronics",
		Style:       "bold",
		ColorScheme: "dark",
		BestFor:     []string{"Electronics", "Gadgets", "Accessories"},
		Mood:        []string{"Sleek", "Technical", "Modern"},
		Values: shop.Theme{
			Template:       shop.TemplateMinimal,
			HeroStyle:      shop.HeroFullImage,
			CardStyle:      shop.CardBordered,
			PrimaryColor:   "#0F172A",
			SecondaryColor: "#38BDF8",
			Font:           shop.FontInter,
		},
	},
}

// ByID returns the preset with the given id, or nil if unknown.
func ByID(id string) *Preset {
	for i := range Presets {
		if Presets[i].ID == id {
			return &Presets[i]
		}
	}
	return nil
}
