// Package router maps location fragments to page identifiers and applies
// the access-control policy. It is a pure transition function; the app
// shell performs the actual navigation.
package router

import "strings"

type Page string

const (
	PageHome        Page = "home"
	PageLogin       Page = "login"
	PageRegister    Page = "register"
	PageVerifyEmail Page = "verify-email"
	PageProfile     Page = "profile"
	PageAccounts    Page = "accounts"
	PageDepartment  Page = "department"
	PageEmployees   Page = "employees"
	PageRequests    Page = "requests"
)

var known = map[Page]bool{
	PageHome:        true,
	PageLogin:       true,
	PageRegister:    true,
	PageVerifyEmail: true,
	PageProfile:     true,
	PageAccounts:    true,
	PageDepartment:  true,
	PageEmployees:   true,
	PageRequests:    true,
}

// Pages reachable only with an active session.
var protected = map[Page]bool{
	PageProfile:    true,
	PageAccounts:   true,
	PageEmployees:  true,
	PageDepartment: true,
	PageRequests:   true,
}

// Pages additionally requiring the admin role.
var adminOnly = map[Page]bool{
	PageAccounts:   true,
	PageEmployees:  true,
	PageDepartment: true,
}

// Resolve maps a "#/<page>" fragment to a page, defaulting to home when the
// fragment is empty or unknown.
func Resolve(fragment string) Page {
	name := strings.TrimPrefix(fragment, "#")
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return PageHome
	}
	p := Page(name)
	if !known[p] {
		return PageHome
	}
	return p
}

// Guard returns the page to actually activate. Redirect targets (login,
// home) are never themselves redirected, so one pass terminates.
func Guard(p Page, loggedIn, admin bool) Page {
	if protected[p] && !loggedIn {
		return PageLogin
	}
	if adminOnly[p] && loggedIn && !admin {
		return PageHome
	}
	return p
}

// Fragment is the location fragment addressing p, e.g. "#/login".
func Fragment(p Page) string {
	if p == PageHome {
		return "#/"
	}
	return "#/" + string(p)
}
