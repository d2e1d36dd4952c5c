package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ponto-digital/ponto-backend-go/internal/config"
	appHTTP "github.com/ponto-digital/ponto-backend-go/internal/handler/http"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/cron"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/database"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/email"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/facematch"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/geocheck"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/jwt"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/storage"
	"github.com/ponto-digital/ponto-backend-go/internal/pkg/textgen"
	"github.com/ponto-digital/ponto-backend-go/internal/repository/postgresql"
	absenceService "github.com/ponto-digital/ponto-backend-go/internal/service/absence"
	adjustmentService "github.com/ponto-digital/ponto-backend-go/internal/service/adjustment"
	authService "github.com/ponto-digital/ponto-backend-go/internal/service/auth"
	companyService "github.com/ponto-digital/ponto-backend-go/internal/service/company"
	dashboardService "github.com/ponto-digital/ponto-backend-go/internal/service/dashboard"
	employeeService "github.com/ponto-digital/ponto-backend-go/internal/service/employee"
	ticketService "github.com/ponto-digital/ponto-backend-go/internal/service/ticket"
	timeRecordService "github.com/ponto-digital/ponto-backend-go/internal/service/timerecord"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	timeRecordRepo := postgresql.NewTimeRecordRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	faceMatcher := facematch.NewMatcher(cfg.FaceMatch)
	geoChecker := geocheck.NewChecker(cfg.GeoCheck.MaxDistanceMeters)
	textGenerator := textgen.NewGenerator(cfg.TextGen)

	authSvc := authService.NewAuthService(userRepo, companyRepo, jwtService, cfg.Security)
	timeRecordSvc := timeRecordService.NewTimeRecordService(timeRecordRepo, userRepo, companyRepo, faceMatcher, geoChecker)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo)
	ticketSvc := ticketService.NewTicketService(ticketRepo)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, textGenerator)
	companySvc := companyService.NewCompanyService(companyRepo, userRepo, cfg.Security)
	employeeSvc := employeeService.NewEmployeeService(userRepo, companyRepo, emailSvc, cfg.Security)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, timeRecordRepo, companyRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		TimeRecord: appHTTP.NewTimeRecordHandler(timeRecordSvc),
		Absence:    appHTTP.NewAbsenceHandler(absenceSvc, fileStorage),
		Ticket:     appHTTP.NewTicketHandler(ticketSvc),
		Adjustment: appHTTP.NewAdjustmentHandler(adjustmentSvc, fileStorage),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	scheduler := cron.NewScheduler()
	cron.NewTicketJobs(ticketRepo, cfg.Tickets).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
