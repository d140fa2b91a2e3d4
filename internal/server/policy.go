package server

import (
	"net/http"
	"regexp"
	"strings"
)

// Protection is the clearance a route requires.
type Protection int

const (
	// Public routes are forwarded without any check.
	Public Protection = iota
	// ProtectedPage routes redirect to the login page on failure.
	ProtectedPage
	// ProtectedAPI routes answer 401 JSON on failure.
	ProtectedAPI
)

func (p Protection) String() string {
	switch p {
	case ProtectedPage:
		return "protected-page"
	case ProtectedAPI:
		return "protected-api"
	default:
		return "public"
	}
}

// ruleKind is the closed set of matcher variants a policy rule can use.
type ruleKind int

const (
	matchPath     ruleKind = iota // exact path, or prefix at a "/" boundary
	matchPrefix                   // raw string prefix
	matchDotAsset                 // path contains "." and is not under /api/
	matchRoot                     // path is exactly "/"
	matchRegex                    // regexp over the path, optionally method-restricted
)

// policyRule is one entry of the route protection table.
type policyRule struct {
	kind   ruleKind
	value  string
	re     *regexp.Regexp
	method string // only for matchRegex; empty means any method
	level  Protection
}

func (r policyRule) matches(method, path string) bool {
	switch r.kind {
	case matchPath:
		return path == r.value || strings.HasPrefix(path, r.value+"/")
	case matchPrefix:
		return strings.HasPrefix(path, r.value)
	case matchDotAsset:
		return strings.Contains(path, ".") && !strings.HasPrefix(path, "/api/")
	case matchRoot:
		return path == "/"
	case matchRegex:
		if r.method != "" && r.method != method {
			return false
		}
		return r.re.MatchString(path)
	}
	return false
}

// policyRules is evaluated in order; the first matching rule wins. Order is
// load-bearing: the login skip-list entries must come before the /admin and
// /api/admin prefix rules, or the login page would lock itself out.
var policyRules = []policyRule{
	// Skip-list: auth endpoints, static assets, well-known files.
	{kind: matchPath, value: "/admin/login", level: Public},
	{kind: matchPath, value: "/api/admin/login", level: Public},
	{kind: matchPath, value: "/api/admin/check-auth", level: Public},
	{kind: matchPrefix, value: "/static", level: Public},
	{kind: matchPath, value: "/favicon.ico", level: Public},
	{kind: matchPath, value: "/robots.txt", level: Public},
	{kind: matchPath, value: "/sitemap.xml", level: Public},

	// Static files outside the API (anything with a file extension).
	{kind: matchDotAsset, level: Public},

	// Site root.
	{kind: matchRoot, level: Public},

	// Admin pages and APIs.
	{kind: matchPrefix, value: "/admin", level: ProtectedPage},
	{kind: matchPrefix, value: "/api/admin", level: ProtectedAPI},
	{kind: matchPrefix, value: "/api/sync-github", level: ProtectedAPI},

	// Project mutations.
	{kind: matchRegex, re: regexp.MustCompile(`^/api/projects/[^/]+/toggle-visibility$`), level: ProtectedAPI},
	{kind: matchRegex, re: regexp.MustCompile(`^/api/projects/[^/]+$`), method: http.MethodDelete, level: ProtectedAPI},
}

// ClassifyRoute decides what clearance a request needs. It is a pure function
// of the method and path; everything else defaults to Public.
func ClassifyRoute(method, path string) Protection {
	for _, rule := range policyRules {
		if rule.matches(method, path) {
			return rule.level
		}
	}
	return Public
}
