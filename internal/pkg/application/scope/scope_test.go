package scope

import (
	"testing"

	"github.com/matryer/is"
)

func i64(v int64) *int64 { return &v }

func TestSysAdminUnassignedWinsOverSelectedOrg(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: RoleSysAdmin}, i64(5), true)
	is.True(f.IncludeUnassigned)
	is.Equal(f.OrganizationID, nil)
}

func TestSysAdminSelectedOrg(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: RoleSysAdmin}, i64(5), false)
	is.True(f.OrganizationID != nil)
	is.Equal(*f.OrganizationID, int64(5))
	is.True(!f.IncludeUnassigned)
}

func TestSysAdminNoSelection(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: RoleSysAdmin}, nil, false)
	is.Equal(f, Filter{})
}

func TestOrgUserIsForcedToOwnOrg(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: RoleOrgUser, OrganizationID: i64(3)}, i64(9), false)
	is.True(f.OrganizationID != nil)
	is.Equal(*f.OrganizationID, int64(3))
}

func TestOrgAdminIgnoresUnassignedFlag(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: RoleOrgAdmin, OrganizationID: i64(3)}, nil, true)
	is.True(!f.IncludeUnassigned)
	is.Equal(*f.OrganizationID, int64(3))
}

func TestUnknownRoleYieldsEmptyFilter(t *testing.T) {
	is := is.New(t)

	f := ResolveOrgFilter(Session{Role: "auditor", OrganizationID: i64(3)}, i64(9), true)
	is.Equal(f, Filter{})
}
