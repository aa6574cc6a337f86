package domain

const (
	RoleAdmin     = "admin"
	RoleRecruiter = "recruiter"
	RoleApplicant = "applicant"
)

// UserType is the coarse bucket the route guard works with.
type UserType string

const (
	UserTypeNone      UserType = ""
	UserTypeRecruiter UserType = "recruiter"
	UserTypeApplicant UserType = "applicant"
)

// Valid reports whether t is one of the two concrete user types.
func (t UserType) Valid() bool {
	return t == UserTypeRecruiter || t == UserTypeApplicant
}

// Account models a user of the demo directory.
type Account struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           string `json:"role"`
	CredentialHash string `json:"-"`
}

// DeriveUserType maps every role to exactly one user type. Admins and
// recruiters search resumes; everyone else is treated as an applicant.
func DeriveUserType(role string) UserType {
	switch role {
	case RoleAdmin, RoleRecruiter:
		return UserTypeRecruiter
	default:
		return UserTypeApplicant
	}
}

// Session holds at most one authenticated account.
type Session struct {
	ID       string   `json:"id,omitempty"`
	Account  *Account `json:"user,omitempty"`
	UserType UserType `json:"userType,omitempty"`
}

// NewSession builds a session for acc with the user type derived from its role.
// A nil account yields the empty session.
func NewSession(id string, acc *Account) Session {
	if acc == nil {
		return Session{}
	}
	return Session{ID: id, Account: acc, UserType: DeriveUserType(acc.Role)}
}

func (s Session) Authenticated() bool {
	return s.Account != nil
}

func (s Session) Role() string {
	if s.Account == nil {
		return ""
	}
	return s.Account.Role
}
