// Command createadmin creates a superuser account from the command line,
// for bootstrapping a fresh deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"taskboard/application/serviceimpl"
	"taskboard/infrastructure/postgres"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email address for the new superuser")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email <email> -password <password> [-name <name>]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.DefaultConfig()); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to database:", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		fmt.Fprintln(os.Stderr, "failed to migrate:", err)
		os.Exit(1)
	}

	users := serviceimpl.NewUserService(postgres.NewUserRepository(db))

	user, err := users.CreateSuperuser(context.Background(), *email, *name, *password, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create superuser:", err)
		os.Exit(1)
	}

	fmt.Printf("Superuser created: %s (%s)\n", user.Email, user.ID)
}
