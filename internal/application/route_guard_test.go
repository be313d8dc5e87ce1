package application

import (
	"strings"
	"testing"

	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

func TestRouteGuard_Decide(t *testing.T) {
	g := NewRouteGuard()
	anon := domain.Anonymous()
	authed := domain.Authenticated("T1")

	tests := []struct {
		name  string
		state domain.SessionState
		path  string
		want  string
	}{
		{"Login anonymous", anon, "/login", ""},
		{"Login authenticated", authed, "/login", ""},
		{"Login trailing slash", authed, "/login/", ""},
		{"Root anonymous", anon, "/", LoginPath},
		{"Root authenticated", authed, "/", ""},
		{"Orders anonymous", anon, "/orders", LoginPath},
		{"Edit anonymous", anon, "/edit-food/7", LoginPath},
		{"Edit authenticated", authed, "/edit-food/7", ""},
		{"Edit without id authenticated", authed, "/edit-food", RootPath},
		{"Status action anonymous", anon, "/orders/1/status", LoginPath},
		{"Unknown authenticated", authed, "/food-list", RootPath},
		{"Unknown anonymous", anon, "/food-list", LoginPath},
		{"Deep unknown", authed, "/orders/1/status/extra", RootPath},
		{"Empty path", authed, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Decide(tt.state, tt.path)
			if got.Redirect != tt.want {
				t.Errorf("Decide(%v, %q) = %q, want %q", tt.state, tt.path, got.Redirect, tt.want)
			}
			if got.Render() != (tt.want == "") {
				t.Errorf("Decide(%v, %q).Render() = %v", tt.state, tt.path, got.Render())
			}
		})
	}
}

func TestRouteGuard_ProtectedAlwaysRedirectAnonymous(t *testing.T) {
	g := NewRouteGuard()
	for _, route := range ProtectedRoutes {
		p := strings.ReplaceAll(route, "{id}", "abc")
		if d := g.Decide(domain.Anonymous(), p); d.Redirect != LoginPath {
			t.Errorf("Decide(anonymous, %q) = %+v, want redirect to login", p, d)
		}
		if d := g.Decide(domain.Authenticated("T1"), p); !d.Render() {
			t.Errorf("Decide(authenticated, %q) = %+v, want render", p, d)
		}
	}
}
