package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-asset-guard/internal/config"
	myHTTP "github.com/MKhiriev/go-asset-guard/internal/handler/http"
	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/internal/server"
	"github.com/MKhiriev/go-asset-guard/internal/service"
	"github.com/MKhiriev/go-asset-guard/internal/store"
	"github.com/MKhiriev/go-asset-guard/internal/workers"
	"github.com/MKhiriev/go-asset-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("asset-guard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := connectDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	bootstrapCredentials(ctx, services, log)

	handler := myHTTP.NewHandler(services, log)
	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, services, cfg.Workers, log).Run()

	srv.RunServer()
}

func connectDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return store.NewConnectSQLite(ctx, cfg, log)
	case "pgx":
		return store.NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, errors.New("unsupported database driver: " + cfg.Driver)
	}
}

// bootstrapCredentials repairs unusable password hashes and makes sure the
// store holds at least one administrator. Neither step is fatal: an
// operator can still provision accounts through the API once someone with
// admin rights can log in.
func bootstrapCredentials(ctx context.Context, services *service.Services, log *logger.Logger) {
	repaired, err := services.AuthService.RepairCredentials(ctx)
	if err != nil {
		log.Err(err).Msg("credential repair failed")
	}
	for _, user := range repaired {
		services.AuditService.Record(models.AuditEntry{
			Action: models.AuditCredRepaired,
			User:   user.Username,
			Role:   string(user.Role),
			Result: models.AuditResultSuccess,
			Detail: "password hash reset to default, change required on next login",
		})
	}

	users, err := services.UserAdminService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed during bootstrap")
		return
	}
	if len(users) > 0 {
		return
	}

	if _, err := services.UserAdminService.ProvisionUser(ctx, "admin", "Administrator", models.RoleAdmin); err != nil {
		log.Err(err).Msg("seeding the administrator account failed")
		return
	}

	log.Warn().Msg("seeded default administrator account, password change required on first login")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
