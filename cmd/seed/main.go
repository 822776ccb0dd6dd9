package main

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"usersadmin/internal/config"
	"usersadmin/internal/db"
	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/logging"
	"usersadmin/internal/model"
	"usersadmin/internal/repository"
)

var demoUsers = []model.User{
	{UserName: "johndoe", FirstName: "John", LastName: "Doe", Email: "johndoe@gmail.com", UserStatus: model.StatusActive, Department: "IT"},
	{UserName: "janedoe", FirstName: "Jane", LastName: "Doe", Email: "janedoe@gmail.com", UserStatus: model.StatusInactive, Department: "IT"},
}

func main() {
	cfg := config.Load()
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info("Starting seed script...")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo := repository.NewUserRepository(gormDB)
	seeded, skipped, err := seedUsers(context.Background(), repo, demoUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.WithFields(logrus.Fields{"created": seeded, "skipped": skipped}).Info("Seed completed")
}

// seedUsers creates the given users, skipping user names that already exist.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []model.User) (seeded int, skipped int, err error) {
	for _, u := range users {
		_, err := repo.FindByUserName(ctx, u.UserName)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			return seeded, skipped, err
		}
		user := u
		if err := repo.Create(ctx, &user); err != nil {
			return seeded, skipped, err
		}
		seeded++
	}
	return seeded, skipped, nil
}
