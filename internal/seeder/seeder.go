package seeder

import (
	"context"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Harihuynh2007/sales-app/internal/auth"
	"github.com/Harihuynh2007/sales-app/internal/config"
	"github.com/Harihuynh2007/sales-app/internal/database"
	"github.com/Harihuynh2007/sales-app/internal/entity"
)

// Module provides the seeder to the application graph.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db         *bun.DB
	bcryptCost int
	logger     *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, cfg config.Config, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, bcryptCost: cfg.Auth.BcryptCost, logger: logger}
}

// All runs every seeder in dependency order.
func (s *Seeder) All(ctx context.Context) error {
	if err := s.Offices(ctx); err != nil {
		return err
	}
	if err := s.Catalog(ctx); err != nil {
		return err
	}
	return s.AdminUser(ctx)
}

// Offices seeds the initial sales offices if they are missing.
func (s *Seeder) Offices(ctx context.Context) error {
	samples := []entity.Office{
		{Code: "1", City: "San Francisco", Phone: "+1 650 219 4782", AddressLine1: "100 Market Street", State: "CA", Country: "USA", PostalCode: "94080", Territory: "NA"},
		{Code: "4", City: "Paris", Phone: "+33 14 723 4404", AddressLine1: "43 Rue Jouffroy D'abbans", Country: "France", PostalCode: "75017", Territory: "EMEA"},
		{Code: "5", City: "Tokyo", Phone: "+81 33 224 5000", AddressLine1: "4-1 Kioicho", State: "Chiyoda-Ku", Country: "Japan", PostalCode: "102-8578", Territory: "Japan"},
	}

	for _, sample := range samples {
		office := sample
		exists, err := s.db.NewSelect().Model((*entity.Office)(nil)).Where("officeCode = ?", office.Code).Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.db.NewInsert().Model(&office).Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded offices", zap.Int("count", len(samples)))
	}
	return nil
}

// Catalog seeds product lines and a starter set of products.
func (s *Seeder) Catalog(ctx context.Context) error {
	lines := []entity.ProductLine{
		{Line: "Classic Cars", Description: "Attention car enthusiasts: scale replicas of the classics."},
		{Line: "Motorcycles", Description: "Official licensed motorcycle replicas."},
		{Line: "Planes", Description: "Model planes from the golden age of flight."},
	}
	for _, sample := range lines {
		line := sample
		exists, err := s.db.NewSelect().Model((*entity.ProductLine)(nil)).Where("productLine = ?", line.Line).Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.db.NewInsert().Model(&line).Exec(ctx); err != nil {
			return err
		}
	}

	products := []entity.Product{
		{Code: "S10_1678", Name: "1969 Harley Davidson Ultimate Chopper", Line: "Motorcycles", Scale: "1:10", Vendor: "Min Lin Diecast", Description: "Official Harley Davidson replica.", Stock: 7933, BuyPrice: 48.81, MSRP: 95.70},
		{Code: "S10_1949", Name: "1952 Alpine Renault 1300", Line: "Classic Cars", Scale: "1:10", Vendor: "Classic Metal Creations", Description: "Opening doors and detailed interior.", Stock: 7305, BuyPrice: 98.58, MSRP: 214.30},
		{Code: "S18_1662", Name: "1980s Black Hawk Helicopter", Line: "Planes", Scale: "1:18", Vendor: "Red Start Diecast", Description: "Spinning rotor and opening cargo door.", Stock: 5330, BuyPrice: 77.27, MSRP: 157.69},
	}
	for _, sample := range products {
		product := sample
		exists, err := s.db.NewSelect().Model((*entity.Product)(nil)).Where("productCode = ?", product.Code).Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := s.db.NewInsert().Model(&product).Exec(ctx); err != nil {
			return err
		}
	}

	if s.logger != nil {
		s.logger.Info("seeded catalog", zap.Int("lines", len(lines)), zap.Int("products", len(products)))
	}
	return nil
}

// AdminUser seeds the default administrator account. The password is stored
// hashed; nothing in the login path special-cases this account.
func (s *Seeder) AdminUser(ctx context.Context) error {
	const email = "admin@example.com"

	exists, err := s.db.NewSelect().Model((*entity.User)(nil)).Where("email = ?", email).Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword("123456", s.bcryptCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		FirstName:    "System",
		LastName:     "Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
		JobTitle:     "Administrator",
	}
	if _, err := s.db.NewInsert().Model(admin).Exec(ctx); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("seeded admin user", zap.String("email", email))
	}
	return nil
}
