package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bizgrid/bizgrid-backend-go/internal/config"
	appHTTP "github.com/bizgrid/bizgrid-backend-go/internal/handler/http"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/database"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/email"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/jwt"
	"github.com/bizgrid/bizgrid-backend-go/internal/pkg/oauth"
	"github.com/bizgrid/bizgrid-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/bizgrid/bizgrid-backend-go/internal/service/auth"
	serviceCompany "github.com/bizgrid/bizgrid-backend-go/internal/service/company"
	serviceEmployee "github.com/bizgrid/bizgrid-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	codeRepo := postgresql.NewCodeRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, codeRepo, JWTService, JWTRepository, emailService)
	companyService := serviceCompany.NewCompanyService(db, companyRepo, userRepo, roleRepo, employeeRepo)
	employeeService := serviceEmployee.NewEmployeeService(employeeRepo, userRepo, roleRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	companyHandler := appHTTP.NewCompanyHandler(companyService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeService)

	router := appHTTP.NewRouter(cfg, JWTService, authHandler, companyHandler, employeeHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
