// Package middleware provides HTTP middleware for Brandini: tenant
// resolution, session guarding, authentication and shop-scope enforcement.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

// reservedLabels are first host labels that never resolve to a tenant
// storefront; they always win over subdomain classification.
var reservedLabels = map[string]bool{
	"dashboard": true,
	"api":       true,
	"www":       true,
}

// exemptPrefixes are storefront paths passed through without rewriting
// (internal assets and API calls).
var exemptPrefixes = []string{"/api/", "/static/", "/assets/", "/favicon.ico"}

// dashboardPrefix is the path namespace served on the dashboard subdomain.
const dashboardPrefix = "/dashboard"

// StorefrontPrefix is the internal path prefix storefront requests are
// rewritten to. Downstream handlers never re-parse the host.
const StorefrontPrefix = "/storefront"

// OutcomeKind classifies what the resolver decided for a request.
type OutcomeKind int

const (
	// PassThrough leaves the request untouched.
	PassThrough OutcomeKind = iota
	// RewriteStorefront rewrites the request to the storefront rendering
	// path, carrying the tenant subdomain.
	RewriteStorefront
	// Redirect sends the client to another host/path.
	Redirect
)

// Outcome is the routing decision for one request.
type Outcome struct {
	Kind OutcomeKind
	// Subdomain is the tenant label for RewriteStorefront outcomes.
	Subdomain string
	// Host and Path form the redirect target for Redirect outcomes.
	Host string
	Path string
}

// Resolver classifies requests by host into storefront, dashboard and apex
// routing. It is a pure function of request metadata and static
// configuration; no state is held between requests.
type Resolver struct {
	prodApex string
	devApex  string
}

// NewResolver creates a resolver for the given production and development
// apex domains (e.g. "brandini.tn" and "brandini.test").
func NewResolver(prodApex, devApex string) *Resolver {
	return &Resolver{prodApex: prodApex, devApex: devApex}
}

// apexFor picks the environment-appropriate apex for a hostname.
// Development is marked by the dev apex suffix or localhost.
func (rs *Resolver) apexFor(hostname string) string {
	if hostname == "localhost" {
		return rs.devApex
	}
	if i := strings.LastIndexByte(rs.devApex, '.'); i >= 0 {
		if strings.HasSuffix(hostname, rs.devApex[i:]) {
			return rs.devApex
		}
	} else if hostname == rs.devApex || strings.HasSuffix(hostname, "."+rs.devApex) {
		return rs.devApex
	}
	return rs.prodApex
}

// Resolve decides the routing outcome for a host header and request path.
func (rs *Resolver) Resolve(host, path string) Outcome {
	hostname := host
	if i := strings.IndexByte(hostname, ':'); i >= 0 {
		hostname = hostname[:i]
	}
	hostname = strings.ToLower(hostname)

	labels := strings.Split(hostname, ".")
	apex := rs.apexFor(hostname)

	// A hostname carries a tenant subdomain when it has more labels than
	// the apex. A two-label apex therefore requires three labels.
	threshold := strings.Count(apex, ".") + 2

	isSubdomain := len(labels) >= threshold && !reservedLabels[labels[0]]

	if isSubdomain {
		for _, p := range exemptPrefixes {
			if strings.HasPrefix(path, p) {
				return Outcome{Kind: PassThrough}
			}
		}
		return Outcome{Kind: RewriteStorefront, Subdomain: labels[0]}
	}

	if strings.HasPrefix(path, dashboardPrefix) {
		if labels[0] != "dashboard" {
			return Outcome{Kind: Redirect, Host: "dashboard." + apex, Path: path}
		}
		// On the dashboard subdomain; the session guard takes over.
		return Outcome{Kind: PassThrough}
	}

	if hostname == rs.prodApex || hostname == rs.devApex || hostname == "localhost" {
		if path == "/" || path == "" {
			return Outcome{Kind: Redirect, Host: "dashboard." + apex, Path: dashboardPrefix}
		}
		return Outcome{Kind: PassThrough}
	}

	// Unrecognized host shapes are passed through, not rejected.
	return Outcome{Kind: PassThrough}
}

type subdomainCtxKey struct{}

// TenantResolver returns middleware that applies the resolver's outcome:
// storefront requests are rewritten under StorefrontPrefix with the
// subdomain stored in the context, misrouted requests are redirected.
func TenantResolver(rs *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			out := rs.Resolve(r.Host, r.URL.Path)

			switch out.Kind {
			case RewriteStorefront:
				ctx := context.WithValue(r.Context(), subdomainCtxKey{}, out.Subdomain)
				r2 := r.WithContext(ctx)
				r2.URL.Path = StorefrontPrefix + r.URL.Path
				next.ServeHTTP(w, r2)

			case Redirect:
				target := schemeFor(r) + "://" + out.Host + out.Path
				http.Redirect(w, r, target, http.StatusTemporaryRedirect)

			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// SubdomainFromContext returns the tenant subdomain stored by the resolver,
// or an empty string for non-storefront requests.
func SubdomainFromContext(ctx context.Context) string {
	sd, _ := ctx.Value(subdomainCtxKey{}).(string)
	return sd
}

func schemeFor(r *http.Request) string {
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		return "https"
	}
	return "http"
}
