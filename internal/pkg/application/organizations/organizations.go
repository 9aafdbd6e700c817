package organizations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shelfware/shelf-mgmt/internal/pkg/application/scope"
	"github.com/shelfware/shelf-mgmt/internal/pkg/infrastructure/storage"
	"github.com/shelfware/shelf-mgmt/pkg/types"
)

var ErrNotFound = fmt.Errorf("organization not found")
var ErrNameTaken = fmt.Errorf("organization name already exists")
var ErrNameInvalid = fmt.Errorf("organization name must not be empty")
var ErrForbidden = fmt.Errorf("operation requires system administrator role")

//go:generate moq -rm -out orgstorage_mock.go . OrgStorage
type OrgStorage interface {
	AddOrganization(ctx context.Context, org types.Organization) (types.Organization, error)
	GetOrganization(ctx context.Context, id int64) (types.Organization, error)
	QueryOrganizations(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Organization], error)
	UpdateOrganization(ctx context.Context, org types.Organization) error
	DeleteOrganization(ctx context.Context, id int64) error
}

// Organizations is the owner entity admin surface. Mutations are reserved for
// system administrators; reads are open to any authenticated session since
// org names appear in every scoped listing.
type Organizations interface {
	CreateOrganization(ctx context.Context, s scope.Session, org types.Organization) (types.Organization, error)
	GetOrganizations(ctx context.Context, offset, limit int) (types.Collection[types.Organization], error)
	GetOrganization(ctx context.Context, id int64) (types.Organization, error)
	UpdateOrganization(ctx context.Context, s scope.Session, org types.Organization) error
	DeleteOrganization(ctx context.Context, s scope.Session, id int64) error
}

type service struct {
	storage OrgStorage
}

func New(storage OrgStorage) Organizations {
	return &service{
		storage: storage,
	}
}

func (s *service) CreateOrganization(ctx context.Context, session scope.Session, org types.Organization) (types.Organization, error) {
	if session.Role != scope.RoleSysAdmin {
		return types.Organization{}, ErrForbidden
	}
	if strings.TrimSpace(org.Name) == "" {
		return types.Organization{}, ErrNameInvalid
	}

	created, err := s.storage.AddOrganization(ctx, org)
	if errors.Is(err, storage.ErrAlreadyExist) {
		return types.Organization{}, ErrNameTaken
	}

	return created, err
}

func (s *service) GetOrganizations(ctx context.Context, offset, limit int) (types.Collection[types.Organization], error) {
	return s.storage.QueryOrganizations(ctx, storage.WithOffset(offset), storage.WithLimit(limit))
}

func (s *service) GetOrganization(ctx context.Context, id int64) (types.Organization, error) {
	org, err := s.storage.GetOrganization(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Organization{}, ErrNotFound
		}
		return types.Organization{}, err
	}

	return org, nil
}

func (s *service) UpdateOrganization(ctx context.Context, session scope.Session, org types.Organization) error {
	if session.Role != scope.RoleSysAdmin {
		return ErrForbidden
	}
	if strings.TrimSpace(org.Name) == "" {
		return ErrNameInvalid
	}

	err := s.storage.UpdateOrganization(ctx, org)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrNotFound
	}
	if errors.Is(err, storage.ErrAlreadyExist) {
		return ErrNameTaken
	}

	return err
}

func (s *service) DeleteOrganization(ctx context.Context, session scope.Session, id int64) error {
	if session.Role != scope.RoleSysAdmin {
		return ErrForbidden
	}

	err := s.storage.DeleteOrganization(ctx, id)
	if errors.Is(err, storage.ErrNoRows) {
		return ErrNotFound
	}

	return err
}
