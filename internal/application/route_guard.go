package application

import (
	"path"
	"strings"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

const (
	LoginPath = "/login"
	RootPath  = "/"
)

// ProtectedRoutes are the management views and actions. A "{name}" segment
// matches any single non-empty path segment.
var ProtectedRoutes = []string{
	RootPath,
	"/list",
	"/add",
	"/orders",
	"/edit-food/{id}",
	"/foods",
	"/foods/{id}",
	"/foods/{id}/delete",
	"/orders/{id}/status",
	"/logout",
}

// Decision is the guard's verdict for one navigation. An empty Redirect means render.
type Decision struct {
	Redirect string
}

func (d Decision) Render() bool {
	return d.Redirect == ""
}

type RouteGuard struct {
	protected [][]string
}

func NewRouteGuard(routes ...string) *RouteGuard {
	if len(routes) == 0 {
		routes = ProtectedRoutes
	}
	g := &RouteGuard{}
	for _, r := range routes {
		g.protected = append(g.protected, segments(r))
	}
	return g
}

// Decide is pure and is evaluated on every request.
func (g *RouteGuard) Decide(state domain.SessionState, requested string) Decision {
	p := normalize(requested)
	if p == LoginPath {
		return Decision{}
	}
	if g.isProtected(p) {
		if !state.IsAuthenticated() {
			return Decision{Redirect: LoginPath}
		}
		return Decision{}
	}
	if state.IsAuthenticated() {
		return Decision{Redirect: RootPath}
	}
	return Decision{Redirect: LoginPath}
}

// IsKnown reports whether p is the login view or a protected route.
func (g *RouteGuard) IsKnown(p string) bool {
	p = normalize(p)
	return p == LoginPath || g.isProtected(p)
}

func (g *RouteGuard) isProtected(p string) bool {
	got := segments(p)
	for _, pattern := range g.protected {
		if match(pattern, got) {
			return true
		}
	}
	return false
}

func match(pattern, got []string) bool {
	if len(pattern) != len(got) {
		return false
	}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}

func normalize(p string) string {
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

func segments(p string) []string {
	p = strings.Trim(normalize(p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
