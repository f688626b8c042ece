package middleware

import "testing"

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern, path string
		want          bool
	}{
		{"/api/auth/login", "/api/auth/login", true},
		{"/api/auth/login", "/api/auth/logout", false},
		{"/api/skills/{id}", "/api/skills/123", true},
		{"/api/skills/{id}", "/api/skills", false},
		{"/api/skills/{id}", "/api/skills/123/extra", false},
		{"/api/blogs/**", "/api/blogs", true},
		{"/api/blogs/**", "/api/blogs/my-post", true},
		{"/api/blogs/**", "/api/blogs/abc/cover-image", true},
		{"/api/blogs/**", "/api/projects", false},
		{"/api/profile/{id}/avatar", "/api/profile/p1/avatar", true},
		{"/api/profile/{id}/avatar", "/api/profile/p1/resume", false},
	}
	for _, tc := range cases {
		if got := matchPattern(tc.pattern, tc.path); got != tc.want {
			t.Fatalf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	p := NewPolicy(
		RequireRole("GET", "/api/blogs/all", "admin"),
		Public("GET", "/api/blogs/**"),
		RequireRole("*", "/api/blogs/**", "admin"),
	)

	if r := p.Decide("GET", "/api/blogs/all"); r.Access != AccessRole || r.Role != "admin" {
		t.Fatalf("/api/blogs/all should be admin-only, got %+v", r)
	}
	if r := p.Decide("GET", "/api/blogs/my-post"); r.Access != AccessPublic {
		t.Fatalf("public blog read should be public, got %+v", r)
	}
	if r := p.Decide("POST", "/api/blogs"); r.Access != AccessRole {
		t.Fatalf("blog write should be admin-only, got %+v", r)
	}
}

func TestPolicy_MethodFilter(t *testing.T) {
	p := NewPolicy(
		Public("POST", "/api/contacts"),
		RequireRole("*", "/api/contacts/**", "admin"),
	)

	if r := p.Decide("POST", "/api/contacts"); r.Access != AccessPublic {
		t.Fatalf("contact submission should be public, got %+v", r)
	}
	if r := p.Decide("GET", "/api/contacts"); r.Access != AccessRole {
		t.Fatalf("contact inbox should be admin-only, got %+v", r)
	}
}

func TestPolicy_DefaultIsAuthenticated(t *testing.T) {
	p := NewPolicy(Public("GET", "/health"))

	if r := p.Decide("GET", "/api/unknown"); r.Access != AccessAuthenticated {
		t.Fatalf("unmatched path should default to authenticated, got %+v", r)
	}
}
