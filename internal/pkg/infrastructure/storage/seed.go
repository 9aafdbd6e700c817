package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"gopkg.in/yaml.v2"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

type seedFile struct {
	Organizations []seedOrganization `yaml:"organizations"`
	Shelves       []seedShelf        `yaml:"shelves"`
	Products      []seedProduct      `yaml:"products"`
}

type seedOrganization struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
}

type seedShelf struct {
	Name         string         `yaml:"name"`
	Location     string         `yaml:"location"`
	Organization string         `yaml:"organization"`
	Positions    []seedPosition `yaml:"positions"`
}

type seedPosition struct {
	Row                      int `yaml:"row"`
	Column                   int `yaml:"column"`
	LowStockThresholdPercent int `yaml:"low_stock_threshold_percent"`
}

type seedProduct struct {
	Name         string `yaml:"name"`
	Price        int64  `yaml:"price"`
	Organization string `yaml:"organization"`
}

// Seed loads organizations, shelves and products from a yaml file into an
// empty or partially seeded database. Rows that already exist are left
// untouched, so running the seed on every start is safe.
func Seed(ctx context.Context, s *Storage, r io.Reader) error {
	log := logging.GetFromContext(ctx)

	b, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	seed := seedFile{}
	err = yaml.Unmarshal(b, &seed)
	if err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	orgIDs := map[string]int64{}

	for _, org := range seed.Organizations {
		created, err := s.AddOrganization(ctx, types.Organization{Name: org.Name, Active: org.Active})
		if err != nil {
			if !errors.Is(err, ErrAlreadyExist) {
				return fmt.Errorf("failed to seed organization %s: %w", org.Name, err)
			}
			existing, err := s.findOrganizationByName(ctx, org.Name)
			if err != nil {
				return fmt.Errorf("failed to look up seeded organization %s: %w", org.Name, err)
			}
			orgIDs[org.Name] = existing.ID
			continue
		}

		orgIDs[org.Name] = created.ID
		log.Info("seeded organization", "name", org.Name)
	}

	for _, shelf := range seed.Shelves {
		orgID, ok := orgIDs[shelf.Organization]
		if !ok && shelf.Organization != "" {
			return fmt.Errorf("shelf %s references unknown organization %s", shelf.Name, shelf.Organization)
		}

		err = s.seedShelf(ctx, shelf, orgID)
		if err != nil {
			return err
		}
	}

	for _, product := range seed.Products {
		orgID, ok := orgIDs[product.Organization]
		if !ok {
			return fmt.Errorf("product %s references unknown organization %s", product.Name, product.Organization)
		}

		_, err = s.AddProduct(ctx, types.Product{OrganizationID: orgID, Name: product.Name, Price: product.Price})
		if err != nil {
			if errors.Is(err, ErrAlreadyExist) {
				continue
			}
			return fmt.Errorf("failed to seed product %s: %w", product.Name, err)
		}

		log.Info("seeded product", "name", product.Name)
	}

	return nil
}

func (s *Storage) findOrganizationByName(ctx context.Context, name string) (types.Organization, error) {
	orgs, err := s.QueryOrganizations(ctx, WithSearch(name))
	if err != nil {
		return types.Organization{}, err
	}

	for _, org := range orgs.Data {
		if org.Name == name {
			return org, nil
		}
	}

	return types.Organization{}, ErrNoRows
}

func (s *Storage) seedShelf(ctx context.Context, seed seedShelf, orgID int64) error {
	log := logging.GetFromContext(ctx)

	conditions := []ConditionFunc{WithSearch(seed.Name)}
	if orgID != 0 {
		conditions = append(conditions, WithOrganization(orgID))
	}

	existing, err := s.QueryShelves(ctx, conditions...)
	if err != nil {
		return fmt.Errorf("failed to look up shelf %s: %w", seed.Name, err)
	}

	for _, shelf := range existing.Data {
		if shelf.Name == seed.Name {
			return nil
		}
	}

	shelf := types.Shelf{Name: seed.Name}
	if seed.Location != "" {
		shelf.Location = &seed.Location
	}
	if orgID != 0 {
		shelf.OrganizationID = &orgID
	}

	created, err := s.AddShelf(ctx, shelf)
	if err != nil {
		return fmt.Errorf("failed to seed shelf %s: %w", seed.Name, err)
	}

	for _, p := range seed.Positions {
		threshold := p.LowStockThresholdPercent
		if threshold <= 0 || threshold >= 100 {
			threshold = 20
		}

		_, err = s.AddPosition(ctx, types.ShelfPosition{
			ShelfID:                  created.ID,
			Row:                      p.Row,
			Column:                   p.Column,
			LowStockThresholdPercent: threshold,
		})
		if err != nil && !errors.Is(err, ErrAlreadyExist) {
			return fmt.Errorf("failed to seed position %d/%d on shelf %s: %w", p.Row, p.Column, seed.Name, err)
		}
	}

	log.Info("seeded shelf", "name", seed.Name, "positions", len(seed.Positions))

	return nil
}
