package scope

// Role is the access level an authenticated session carries. It is resolved
// by the authorization policy, never by the core.
type Role string

const (
	RoleSysAdmin Role = "sys_admin"
	RoleOrgAdmin Role = "org_admin"
	RoleOrgUser  Role = "org_user"
)

// Session is the explicit, read-only session context handed to the core. It
// is created when a request is authenticated and replaced on login, logout
// and organization switch.
type Session struct {
	Role           Role
	OrganizationID *int64
}

// Filter is the organization slice applied to shelf, product and position
// queries. OrganizationID and IncludeUnassigned are never both set.
type Filter struct {
	OrganizationID    *int64
	IncludeUnassigned bool
}

// ResolveOrgFilter determines which organization slice a session may see.
//
// A sys_admin viewing unassigned entities gets the unassigned filter with no
// organization id, even if one was selected; the two views are mutually
// exclusive. Otherwise a sys_admin is scoped to the selected organization, or
// to everything when none is selected. Lower-privileged roles are always
// forced to their own organization regardless of selection. Unknown roles get
// an empty filter, which upstream role checks should have prevented anyway.
//
// The function is pure and total.
func ResolveOrgFilter(s Session, selectedOrgID *int64, showUnassignedOnly bool) Filter {
	switch s.Role {
	case RoleSysAdmin:
		if showUnassignedOnly {
			return Filter{IncludeUnassigned: true}
		}
		if selectedOrgID != nil {
			id := *selectedOrgID
			return Filter{OrganizationID: &id}
		}
		return Filter{}
	case RoleOrgAdmin, RoleOrgUser:
		if s.OrganizationID == nil {
			return Filter{}
		}
		id := *s.OrganizationID
		return Filter{OrganizationID: &id}
	default:
		return Filter{}
	}
}
