// Seeds the database with reference data and demo users. Safe to run more
// than once: existing rows are left in place.
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/asset-ledger-api/internal/domain"
	"github.com/jhoicas/asset-ledger-api/internal/domain/entity"
	"github.com/jhoicas/asset-ledger-api/internal/domain/scope"
	"github.com/jhoicas/asset-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/asset-ledger-api/pkg/config"
	"github.com/jhoicas/asset-ledger-api/pkg/logger"
)

type seedUser struct {
	username string
	fullName string
	email    string
	password string
	role     string
	base     string // empty for admin
}

var bases = []entity.Base{
	{Name: "Fort Alpha", Location: "Northern Command"},
	{Name: "Fort Bravo", Location: "Eastern Command"},
	{Name: "Fort Charlie", Location: "Southern Command"},
}

var equipmentTypes = []entity.EquipmentType{
	{Name: "M4 Carbine", Category: entity.CategoryWeapon, UnitOfMeasure: "unit"},
	{Name: "9mm Pistol", Category: entity.CategoryWeapon, UnitOfMeasure: "unit"},
	{Name: "Humvee", Category: entity.CategoryVehicle, UnitOfMeasure: "unit"},
	{Name: "Transport Truck", Category: entity.CategoryVehicle, UnitOfMeasure: "unit"},
	{Name: "5.56mm Rounds", Category: entity.CategoryAmmo, UnitOfMeasure: "round"},
	{Name: "9mm Rounds", Category: entity.CategoryAmmo, UnitOfMeasure: "round"},
	{Name: "Night Vision Goggles", Category: entity.CategoryEquipment, UnitOfMeasure: "unit"},
	{Name: "Radio Set", Category: entity.CategoryEquipment, UnitOfMeasure: "unit"},
}

var users = []seedUser{
	{"admin", "System Administrator", "admin@assetledger.mil", "admin123", scope.RoleAdmin, ""},
	{"cmd.alpha", "Cmdr. J. Reyes", "cmd.alpha@assetledger.mil", "commander123", scope.RoleBaseCommander, "Fort Alpha"},
	{"cmd.bravo", "Cmdr. L. Osei", "cmd.bravo@assetledger.mil", "commander123", scope.RoleBaseCommander, "Fort Bravo"},
	{"log.alpha", "Lt. M. Tran", "log.alpha@assetledger.mil", "logistics123", scope.RoleLogisticsOfficer, "Fort Alpha"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	baseIDs := map[string]int64{}
	for _, b := range bases {
		var id int64
		err := pool.QueryRow(ctx, `
			INSERT INTO bases (name, location) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET location = EXCLUDED.location
			RETURNING id`,
			b.Name, b.Location).Scan(&id)
		if err != nil {
			log.Fatal().Err(err).Str("base", b.Name).Msg("seed base")
		}
		baseIDs[b.Name] = id
	}
	log.Info().Int("count", len(bases)).Msg("bases seeded")

	for _, e := range equipmentTypes {
		_, err := pool.Exec(ctx, `
			INSERT INTO equipment_types (name, category, unit_of_measure)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING`,
			e.Name, e.Category, e.UnitOfMeasure)
		if err != nil {
			log.Fatal().Err(err).Str("equipment", e.Name).Msg("seed equipment type")
		}
	}
	log.Info().Int("count", len(equipmentTypes)).Msg("equipment types seeded")

	userRepo := postgres.NewUserRepository(pool)
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		var baseID *int64
		if u.base != "" {
			id := baseIDs[u.base]
			baseID = &id
		}
		err = userRepo.Create(ctx, &entity.User{
			Username:     u.username,
			FullName:     u.fullName,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			BaseID:       baseID,
			IsActive:     true,
		})
		if errors.Is(err, domain.ErrDuplicate) {
			log.Info().Str("username", u.username).Msg("user already exists, skipping")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("username", u.username).Msg("seed user")
		}
		log.Info().Str("username", u.username).Str("role", u.role).Msg("user created")
	}

	log.Info().Msg("seed complete")
}
