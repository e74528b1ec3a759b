package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/config"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/user"
	appHTTP "github.com/admffolador/painel-gta-helipa-valley1/internal/handler/http"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/database"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/jwt"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/oauth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/sse"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/repository/postgresql"
	authService "github.com/admffolador/painel-gta-helipa-valley1/internal/service/auth"
	employeeService "github.com/admffolador/painel-gta-helipa-valley1/internal/service/employee"
	reportService "github.com/admffolador/painel-gta-helipa-valley1/internal/service/report"
	timeRecordService "github.com/admffolador/painel-gta-helipa-valley1/internal/service/timerecord"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)

	if cfg.App.AdminEmail != "" && cfg.App.AdminPassword != "" {
		if err := seedAdminUser(context.Background(), db, userRepo, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
			fmt.Println("Error seeding admin user:", err)
			return
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, employeeRepo, hub)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, timeRecordRepo, timeRecordSvc, hub)
	reportSvc := reportService.NewReportService(timeRecordRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeRecordHandler := appHTTP.NewTimeRecordHandler(timeRecordSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		timeRecordHandler,
		reportHandler,
		eventsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// seedAdminUser creates the bootstrap login if it does not exist yet. The
// check and insert run in one transaction so concurrent instances starting
// against the same database cannot both insert.
func seedAdminUser(ctx context.Context, db *database.DB, users user.Repository, email, password string) error {
	return postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := users.GetByEmail(txCtx, email)
		if err == nil {
			return nil
		}
		if !errors.Is(err, auth.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash := string(hash)

		_, err = users.Create(txCtx, user.User{
			Email:        email,
			PasswordHash: &passwordHash,
		})
		return err
	})
}
