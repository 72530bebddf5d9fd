package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// Principal is the authenticated identity attached to every request
// by the auth middleware. The core trusts it completely; issuing and
// validating credentials is the identity provider's job.
type Principal struct {
	ID    string
	Role  Role
	Email string
}
