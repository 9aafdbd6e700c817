package organizations

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

func TestOnlySysAdminMayCreateOrganizations(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	orgID := int64(1)
	_, err := svc.CreateOrganization(ctx, scope.Session{Role: scope.RoleOrgAdmin, OrganizationID: &orgID}, types.Organization{Name: "Grocer North"})
	is.True(errors.Is(err, ErrForbidden))
	is.Equal(len(mock.AddOrganizationCalls()), 0)

	_, err = svc.CreateOrganization(ctx, scope.Session{Role: scope.RoleSysAdmin}, types.Organization{Name: "Grocer North"})
	is.NoErr(err)
}

func TestCreateOrganizationRejectsBlankName(t *testing.T) {
	is, ctx, svc, _ := testSetup(t)

	_, err := svc.CreateOrganization(ctx, scope.Session{Role: scope.RoleSysAdmin}, types.Organization{Name: "   "})
	is.True(errors.Is(err, ErrNameInvalid))
}

func TestCreateOrganizationDuplicateName(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.AddOrganizationFunc = func(ctx context.Context, org types.Organization) (types.Organization, error) {
		return types.Organization{}, storage.ErrAlreadyExist
	}

	_, err := svc.CreateOrganization(ctx, scope.Session{Role: scope.RoleSysAdmin}, types.Organization{Name: "Grocer North"})
	is.True(errors.Is(err, ErrNameTaken))
}

func TestDeleteUnknownOrganization(t *testing.T) {
	is, ctx, svc, mock := testSetup(t)

	mock.DeleteOrganizationFunc = func(ctx context.Context, id int64) error {
		return storage.ErrNoRows
	}

	err := svc.DeleteOrganization(ctx, scope.Session{Role: scope.RoleSysAdmin}, 99)
	is.True(errors.Is(err, ErrNotFound))
}

func testSetup(t *testing.T) (*is.I, context.Context, Organizations, *OrgStorageMock) {
	is := is.New(t)

	mock := &OrgStorageMock{
		AddOrganizationFunc: func(ctx context.Context, org types.Organization) (types.Organization, error) {
			org.ID = 1
			return org, nil
		},
		GetOrganizationFunc: func(ctx context.Context, id int64) (types.Organization, error) {
			return types.Organization{ID: id, Name: "Grocer North", Active: true}, nil
		},
		QueryOrganizationsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Organization], error) {
			return types.Collection[types.Organization]{}, nil
		},
		UpdateOrganizationFunc: func(ctx context.Context, org types.Organization) error { return nil },
		DeleteOrganizationFunc: func(ctx context.Context, id int64) error { return nil },
	}

	return is, context.Background(), New(mock), mock
}
