package middleware

import "strings"

// Access is the authorization requirement of a route.
type Access int

const (
	// AccessPublic allows the request regardless of principal.
	AccessPublic Access = iota
	// AccessAuthenticated requires any verified principal.
	AccessAuthenticated
	// AccessRole requires a principal carrying a specific role.
	AccessRole
)

// Rule binds a method and path pattern to an access requirement. Method "*"
// matches all methods. Pattern grammar: literal segments, "{x}" matches
// exactly one segment, a trailing "**" matches the rest of the path
// including nothing.
type Rule struct {
	Method  string
	Pattern string
	Access  Access
	Role    string
}

// Public builds a rule allowing anonymous access.
func Public(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessPublic}
}

// Authenticated builds a rule requiring any principal.
func Authenticated(method, pattern string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessAuthenticated}
}

// RequireRole builds a rule requiring a principal with the given role.
func RequireRole(method, pattern, role string) Rule {
	return Rule{Method: method, Pattern: pattern, Access: AccessRole, Role: role}
}

// Policy is an ordered first-match rule table, fixed at startup. Unmatched
// paths default to AccessAuthenticated.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules evaluated in the given order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// Decide returns the first rule matching method and path, or the
// authenticated-by-default fallback.
func (p *Policy) Decide(method, path string) Rule {
	for _, r := range p.rules {
		if r.Method != "*" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r
		}
	}
	return Rule{Method: method, Pattern: path, Access: AccessAuthenticated}
}

// matchPattern matches path against the pattern grammar. Both are split on
// "/"; empty segments from leading slashes are ignored.
func matchPattern(pattern, path string) bool {
	ps := splitSegments(pattern)
	ts := splitSegments(path)

	for i, seg := range ps {
		if seg == "**" {
			// Trailing rest-match; consumes everything including nothing.
			return i == len(ps)-1
		}
		if i >= len(ts) {
			return false
		}
		if seg != ts[i] && !isWildcardSegment(seg) {
			return false
		}
	}
	return len(ps) == len(ts)
}

func isWildcardSegment(seg string) bool {
	return len(seg) >= 2 && seg[0] == '{' && seg[len(seg)-1] == '}'
}

func splitSegments(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
