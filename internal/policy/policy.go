// Package policy implements shop-scope authorization: every operation on a
// tenant-owned collection is restricted to the acting user's owned shop.
// Platform admins bypass the scope entirely.
//
// The engine is stateless across invocations. It never mutates the request;
// it returns an explicit Decision whose overrides the caller applies.
package policy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/brandini/brandini/internal/domain"
)

// ContentType identifies a tenant-scoped collection. It is a closed set;
// route-derived names that don't parse are rejected rather than used to
// address arbitrary storage.
type ContentType string

const (
	TypeShop     ContentType = "shop"
	TypeProduct  ContentType = "product"
	TypeCategory ContentType = "category"
	TypeOrder    ContentType = "order"
)

// ParseContentType converts a route-derived name into a known ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case TypeShop, TypeProduct, TypeCategory, TypeOrder:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("unknown content type %q: %w", s, domain.ErrValidation)
	}
}

// Actor is the authenticated principal a request acts as, or nil for
// anonymous storefront reads.
type Actor struct {
	UserID        domain.ID
	PlatformAdmin bool
}

// Request is the immutable input to one policy evaluation.
type Request struct {
	// Actor is nil for unauthenticated requests.
	Actor *Actor
	// Method is the HTTP method of the operation.
	Method string
	// ContentType is the target collection.
	ContentType ContentType
	// EntityID is the target entity for update/delete operations.
	EntityID domain.ID
	// FilterShopID is a caller-supplied shop filter on reads, or zero when
	// the caller did not constrain the shop dimension.
	FilterShopID domain.ID
}

// Decision is the outcome of one policy evaluation. Overrides are explicit
// outputs the caller applies; the policy never mutates shared request state.
type Decision struct {
	Allowed bool
	// Reason describes a denial; empty on allow.
	Reason string
	// ShopID is the actor's resolved owned shop, when one was resolved.
	ShopID domain.ID
	// FilterShopID, when non-zero, must be applied as the shop filter on
	// the read the caller is about to perform.
	FilterShopID domain.ID
	// BodyShopID, when non-zero, must be stamped as the shop reference on
	// the entity the caller is about to create, overriding any
	// client-supplied value.
	BodyShopID domain.ID
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

// Store is the slice of the entity store the policy consumes.
type Store interface {
	// ShopIDsByOwner returns the ids of all shops owned by the user.
	ShopIDsByOwner(ctx context.Context, ownerID domain.ID) ([]domain.ID, error)
	// EntityShopID returns the owning shop of the given entity, with the
	// shop relation resolved. It returns domain.ErrNotFound when the
	// entity does not exist or has no shop relation.
	EntityShopID(ctx context.Context, ct ContentType, id domain.ID) (domain.ID, error)
}

// Engine evaluates shop-scope decisions against the entity store.
type Engine struct {
	store Store
	log   *slog.Logger
}

// NewEngine creates a policy engine.
func NewEngine(store Store, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{store: store, log: log}
}

// Evaluate runs one shop-scope check. It never panics through and never
// fails open: any store error during resolution is a denial.
//
// Anonymous actors are allowed through unconditionally; public storefront
// call sites narrow their own queries by subdomain. Platform admins are
// allowed with no overrides.
func (e *Engine) Evaluate(ctx context.Context, req Request) Decision {
	if req.Actor == nil {
		return allow()
	}
	if req.Actor.PlatformAdmin {
		return allow()
	}

	shopID, ok := e.resolveOwnedShop(ctx, req.Actor.UserID)
	if !ok {
		return deny("no shop associated with user")
	}

	switch req.Method {
	case http.MethodPost:
		d := allow()
		d.ShopID = shopID
		d.BodyShopID = shopID
		return d

	case http.MethodGet:
		return e.evaluateRead(req, shopID)

	case http.MethodPut, http.MethodDelete:
		return e.evaluateMutation(ctx, req, shopID)

	default:
		// No rule for other methods; fall through to allow.
		d := allow()
		d.ShopID = shopID
		return d
	}
}

// resolveOwnedShop looks up the actor's owned shop. Exactly one shop per
// owner is a precondition; zero or multiple owned shops are treated as a
// provisioning misconfiguration, not a normal denial.
func (e *Engine) resolveOwnedShop(ctx context.Context, userID domain.ID) (domain.ID, bool) {
	shopIDs, err := e.store.ShopIDsByOwner(ctx, userID)
	if err != nil {
		e.log.Error("shop-scope: owner shop lookup failed", "user_id", userID, "error", err)
		return 0, false
	}
	if len(shopIDs) == 0 {
		e.log.Warn("shop-scope: user has no associated shop", "user_id", userID)
		return 0, false
	}
	if len(shopIDs) > 1 {
		e.log.Warn("shop-scope: user owns multiple shops, refusing to pick one",
			"user_id", userID, "shop_count", len(shopIDs))
		return 0, false
	}
	return shopIDs[0], true
}

// evaluateRead injects the owned shop into unconstrained reads. A
// caller-supplied shop filter is validated against ownership instead of
// being trusted as-is.
func (e *Engine) evaluateRead(req Request, shopID domain.ID) Decision {
	d := allow()
	d.ShopID = shopID

	if req.FilterShopID.Zero() {
		d.FilterShopID = shopID
		return d
	}
	if req.FilterShopID != shopID {
		e.log.Warn("shop-scope: read filter targets foreign shop",
			"user_id", req.Actor.UserID, "filter_shop_id", req.FilterShopID, "owned_shop_id", shopID)
		return deny("shop filter does not match owned shop")
	}
	// The caller's filter equals the owned shop. The decision still carries
	// it: a zero filter means unconstrained downstream, never "already
	// scoped".
	d.FilterShopID = shopID
	return d
}

// evaluateMutation verifies ownership of the target entity before an update
// or delete proceeds. The policy only decides; the caller performs the
// mutation after an allow.
func (e *Engine) evaluateMutation(ctx context.Context, req Request, shopID domain.ID) Decision {
	if req.EntityID.Zero() {
		// Collection-level mutation with no target id carries nothing to
		// verify here; creation is handled by POST.
		d := allow()
		d.ShopID = shopID
		return d
	}

	if req.ContentType == TypeShop {
		if req.EntityID != shopID {
			e.log.Warn("shop-scope: attempt to modify foreign shop",
				"user_id", req.Actor.UserID, "target_shop_id", req.EntityID, "owned_shop_id", shopID)
			return deny("cannot modify another shop")
		}
		d := allow()
		d.ShopID = shopID
		return d
	}

	entityShopID, err := e.store.EntityShopID(ctx, req.ContentType, req.EntityID)
	if err != nil {
		// Missing entity, missing shop relation, or store failure: all
		// fail closed.
		e.log.Error("shop-scope: entity ownership lookup failed",
			"user_id", req.Actor.UserID, "content_type", req.ContentType,
			"entity_id", req.EntityID, "error", err)
		return deny("entity ownership could not be verified")
	}

	if entityShopID != shopID {
		e.log.Warn("shop-scope: attempt to access entity of foreign shop",
			"user_id", req.Actor.UserID, "content_type", req.ContentType,
			"entity_id", req.EntityID, "entity_shop_id", entityShopID, "owned_shop_id", shopID)
		return deny("entity belongs to another shop")
	}

	d := allow()
	d.ShopID = shopID
	return d
}
