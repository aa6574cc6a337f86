// Package access decides whether a session may render a protected route and,
// when it may not, where it should be sent instead.
package access

import "github.com/resumatch/candidate-search/internal/core/domain"

// Requirement is the static access predicate a protected route declares.
// Zero values mean "not required".
type Requirement struct {
	RequiredRole     string          `json:"required_role,omitempty"`
	RequiredUserType domain.UserType `json:"required_user_type,omitempty"`
}

// State is the part of a session the gate looks at.
type State struct {
	Authenticated bool
	Role          string
	UserType      domain.UserType
}

// StateOf projects a session onto the gate's input.
func StateOf(s domain.Session) State {
	return State{
		Authenticated: s.Authenticated(),
		Role:          s.Role(),
		UserType:      s.UserType,
	}
}

// Decision is either Allow or a redirect to a known path.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

func allow() Decision { return Decision{Allow: true} }

func redirect(path string) Decision { return Decision{RedirectTo: path} }

func (d Decision) String() string {
	if d.Allow {
		return "allow"
	}
	return "redirect:" + d.RedirectTo
}

// Authorize evaluates the guard rules in order; the first match wins.
//
//  1. not authenticated: login page for the required user type
//  2. role required and different: search landing
//  3. user type required and different: landing of the user's own type
//  4. otherwise allow
func Authorize(st State, req Requirement) Decision {
	if !st.Authenticated {
		return redirect(LoginPathFor(req.RequiredUserType))
	}
	if req.RequiredRole != "" && st.Role != req.RequiredRole {
		return redirect(PathSearch)
	}
	if req.RequiredUserType != domain.UserTypeNone && st.UserType != req.RequiredUserType {
		return redirect(LandingPathFor(st.UserType))
	}
	return allow()
}

// Gate binds Authorize to a route table.
type Gate struct {
	routes RouteMap
}

func NewGate(routes RouteMap) *Gate {
	return &Gate{routes: routes}
}

// AuthorizePath looks up the requirement for path and authorizes s against it.
// Paths missing from the table are public.
func (g *Gate) AuthorizePath(s domain.Session, path string) Decision {
	req, ok := g.routes.Lookup(path)
	if !ok {
		return allow()
	}
	return Authorize(StateOf(s), req)
}

// Requirement returns the declared requirement for path.
func (g *Gate) Requirement(path string) (Requirement, bool) {
	return g.routes.Lookup(path)
}
