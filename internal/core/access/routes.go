package access

import "github.com/resumatch/candidate-search/internal/core/domain"

const (
	PathHome           = "/"
	PathLogin          = "/login"
	PathRecruiterLogin = "/recruiter-login"
	PathApplicantLogin = "/user-login"
	PathSearch         = "/search"
	PathUpload         = "/upload"
	PathUploadStatus   = "/upload-status"
	PathAdmin          = "/admin/candidates"
)

// LoginPathFor returns the login page matching a required user type.
func LoginPathFor(t domain.UserType) string {
	switch t {
	case domain.UserTypeRecruiter:
		return PathRecruiterLogin
	case domain.UserTypeApplicant:
		return PathApplicantLogin
	default:
		return PathLogin
	}
}

// LandingPathFor returns where a user of type t lands after login. Anything
// that is not a recruiter lands on the upload status page.
func LandingPathFor(t domain.UserType) string {
	if t == domain.UserTypeRecruiter {
		return PathSearch
	}
	return PathUploadStatus
}

// RouteMap holds the requirement of every protected route, keyed by path.
type RouteMap map[string]Requirement

// DefaultRoutes is the route table of the web client.
func DefaultRoutes() RouteMap {
	return RouteMap{
		PathSearch:       {RequiredUserType: domain.UserTypeRecruiter},
		PathUpload:       {},
		PathUploadStatus: {RequiredUserType: domain.UserTypeApplicant},
		PathAdmin:        {RequiredRole: domain.RoleAdmin},
	}
}

func (m RouteMap) Lookup(path string) (Requirement, bool) {
	req, ok := m[path]
	return req, ok
}

// KnownPaths lists every path a redirect may name.
func KnownPaths() []string {
	return []string{
		PathHome,
		PathLogin,
		PathRecruiterLogin,
		PathApplicantLogin,
		PathSearch,
		PathUpload,
		PathUploadStatus,
		PathAdmin,
	}
}

// IsKnownPath reports whether p is one of KnownPaths.
func IsKnownPath(p string) bool {
	for _, known := range KnownPaths() {
		if p == known {
			return true
		}
	}
	return false
}
