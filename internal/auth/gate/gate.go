// Package gate decides route reachability by role. It is a pure predicate
// over (session, route); login and logout happen elsewhere.
package gate

import "github.com/dwikikusuma/storefront/internal/auth/domain"

// RouteClass labels what a route requires.
type RouteClass int

const (
	// Public routes bypass the gate entirely.
	Public RouteClass = iota
	// UserArea routes require a non-admin authenticated user.
	UserArea
	// AdminOnly routes require an admin.
	AdminOnly
)

// Well-known redirect targets.
const (
	LoginPath = "/login"
	HomePath  = "/"
	AdminPath = "/admin"
)

// Decision is the gate's verdict for one navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
	// CaptureFrom marks redirects that should remember the intended
	// destination for post-login resumption.
	CaptureFrom bool
}

func allow() Decision { return Decision{Allow: true} }

// Decide evaluates one navigation. sess is nil for anonymous visitors.
func Decide(sess *domain.Session, class RouteClass) Decision {
	if class == Public {
		return allow()
	}

	if sess == nil {
		return Decision{RedirectTo: LoginPath, CaptureFrom: true}
	}

	switch class {
	case AdminOnly:
		if sess.IsAdmin() {
			return allow()
		}
		return Decision{RedirectTo: HomePath}
	default: // UserArea
		if sess.IsAdmin() {
			// Admins never see customer-area protected routes.
			return Decision{RedirectTo: AdminPath}
		}
		return allow()
	}
}

// PostLoginTarget resolves where a fresh login lands: admins always go to
// the admin home, everyone else resumes the captured destination or falls
// back to home.
func PostLoginTarget(sess domain.Session, captured string) string {
	if sess.IsAdmin() {
		return AdminPath
	}
	if captured != "" {
		return captured
	}
	return HomePath
}
