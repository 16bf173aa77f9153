// Command create-admin bootstraps an admin account directly against
// the database, for deployments where the setup code flow is disabled.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"

	"github.com/intellcap/association-api/internal/config"
	"github.com/intellcap/association-api/internal/db"
	"github.com/intellcap/association-api/internal/domain"
	"github.com/intellcap/association-api/internal/repository"
	"github.com/intellcap/association-api/internal/repository/dao"
	"github.com/intellcap/association-api/internal/service"
)

func main() {
	name := flag.String("name", "Administrator", "admin display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	configPath := flag.String("config", "./cmd/app/config.yml", "path to the config file")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var postgresDB *gorm.DB
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		log.Fatalf("failed to migrate tables: %v", err)
	}

	repo := repository.NewUserRepository(dao.NewUserDAO(postgresDB))
	svc := service.NewUserService(repo)
	authSvc := service.NewAuthService(repo, conf.API.AdminSetupCode)

	user, err := authSvc.Signup(context.Background(), domain.User{
		Name:     *name,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("failed to create user: %v", err)
	}

	admin, err := svc.PromoteToAdmin(context.Background(), user.ID)
	if err != nil {
		log.Fatalf("failed to promote user: %v", err)
	}

	fmt.Printf("admin created: id=%d email=%s role=%s\n", admin.ID, admin.Email, admin.Role)
}
