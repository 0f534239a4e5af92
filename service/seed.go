package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"schooldir/config"
	"schooldir/consts"
	"schooldir/database"
	"schooldir/repository"
	"schooldir/utils"
)

var seedSchools = []database.TradeSchool{
	{
		Name:       "Lincoln Tech",
		Location:   "Multiple Locations",
		Programs:   []string{"Automotive Technology", "HVAC", "Electrical Technology", "Welding"},
		Website:    "https://www.lincolntech.edu",
		Accredited: true,
	},
	{
		Name:       "Universal Technical Institute",
		Location:   "Nationwide",
		Programs:   []string{"Automotive", "Diesel & Truck", "Motorcycle", "Marine", "CNC Machining"},
		Website:    "https://www.uti.edu",
		Accredited: true,
	},
	{
		Name:       "Tulsa Welding School",
		Location:   "Tulsa, Jacksonville, Houston",
		Programs:   []string{"Welding", "Pipefitting", "HVAC/R", "Electrical"},
		Website:    "https://www.tws.edu",
		Accredited: true,
	},
	{
		Name:       "Advanced Technology Institute",
		Location:   "Virginia Beach, VA",
		Programs:   []string{"Automotive", "HVAC", "Industrial Maintenance", "Medical"},
		Website:    "https://www.auto.edu",
		Accredited: true,
	},
	{
		Name:       "Midwest Technical Institute",
		Location:   "Illinois",
		Programs:   []string{"Automotive", "Diesel", "Collision Repair", "Industrial Maintenance"},
		Website:    "https://www.midwesttech.edu",
		Accredited: true,
	},
	{
		Name:       "Porter and Chester Institute",
		Location:   "Connecticut, Massachusetts",
		Programs:   []string{"Automotive", "HVAC/R", "Electrical", "Plumbing", "CAD"},
		Website:    "https://www.porterchester.edu",
		Accredited: true,
	},
	{
		Name:       "New England Tractor Trailer Training School",
		Location:   "Multiple Locations",
		Programs:   []string{"CDL Training", "Truck Driving"},
		Website:    "https://www.nettts.com",
		Accredited: false,
	},
}

// SeedDatabase inserts the canonical school fixtures and the admin user.
// Existing schools are left alone; seeding is only performed on an empty
// directory.
func SeedDatabase(ctx context.Context) error {
	total, err := repository.CountSchools(ctx, nil)
	if err != nil {
		return err
	}

	if total == 0 {
		for i := range seedSchools {
			if err := repository.CreateSchool(ctx, &seedSchools[i]); err != nil {
				return fmt.Errorf("failed to seed school %q: %w", seedSchools[i].Name, err)
			}
		}
		logrus.Infof("Seeded %d trade schools", len(seedSchools))
	} else {
		logrus.Infof("Schools already present (%d), skipping school seed", total)
	}

	username := config.GetString("seed.admin_username")
	password := config.GetString("seed.admin_password")
	if username == "" || password == "" {
		logrus.Warn("seed.admin_username/seed.admin_password not configured, skipping admin seed")
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	err = repository.CreateUser(ctx, &database.User{Username: username, Password: hashed})
	if err != nil {
		if errors.Is(err, consts.ErrAlreadyExists) {
			logrus.Infof("Admin user '%s' already exists", username)
			return nil
		}
		return err
	}

	logrus.Infof("Seeded admin user '%s'", username)
	return nil
}
