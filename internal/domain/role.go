package domain

// Role is the closed set of actor roles known to the system.
type Role string

const (
	RoleCandidate     Role = "candidate"
	RoleEmployer      Role = "employer"
	RoleHiringManager Role = "hiring_manager"
	RoleRecruiter     Role = "recruiter"
	RoleAdmin         Role = "admin"
)

// Capability tags what a role may do. Handlers dispatch authorization
// through Can instead of comparing role strings inline.
type Capability uint8

const (
	CapSubmitCandidate Capability = 1 << iota
	CapManagePipeline
	CapManagePositions
	CapManagePurchaseOrders
	CapOwnResume
)

var roleCapabilities = map[Role]Capability{
	RoleCandidate:     CapSubmitCandidate | CapOwnResume,
	RoleEmployer:      CapManagePipeline | CapManagePositions | CapManagePurchaseOrders,
	RoleHiringManager: CapManagePipeline | CapManagePositions | CapManagePurchaseOrders,
	RoleRecruiter:     CapSubmitCandidate | CapManagePipeline,
	RoleAdmin: CapSubmitCandidate | CapManagePipeline | CapManagePositions |
		CapManagePurchaseOrders | CapOwnResume,
}

// ParseRole maps an identity-provider role string onto the closed enum.
// Unknown roles fall back to candidate, the least-privileged role.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCandidate, RoleEmployer, RoleHiringManager, RoleRecruiter, RoleAdmin:
		return Role(s)
	}
	return RoleCandidate
}

// Can reports whether the role carries the given capability.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r]&c != 0
}
