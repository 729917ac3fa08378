package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/novabank/core-ledger/internal/adapter/http/controller"
	"github.com/novabank/core-ledger/internal/adapter/http/middleware"
	"github.com/novabank/core-ledger/internal/adapter/http/router"
	"github.com/novabank/core-ledger/internal/adapter/render/pdf"
	"github.com/novabank/core-ledger/internal/adapter/repository/memory"
	"github.com/novabank/core-ledger/internal/adapter/repository/postgres"
	"github.com/novabank/core-ledger/internal/config"
	"github.com/novabank/core-ledger/internal/domain"
	"github.com/novabank/core-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var clientRepo domain.ClientRepository
	var accountRepo domain.AccountRepository
	var movementRepo domain.MovementRepository

	if cfg.UseMemoryStore {
		store := memory.NewStore()
		clientRepo = memory.NewClientRepository(store)
		accountRepo = memory.NewAccountRepository(store)
		movementRepo = memory.NewMovementRepository(store)
		log.Println("running on the in-memory store")
	} else {
		db, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("open postgres connection: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("ping postgres: %v", err)
		}
		if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			cancel()
			log.Fatalf("run migrations: %v", err)
		}
		cancel()

		clientRepo = postgres.NewClientRepository(db)
		accountRepo = postgres.NewAccountRepository(db)
		movementRepo = postgres.NewMovementRepository(db)
	}

	clientService := services.NewClientService(clientRepo)
	accountService := services.NewAccountService(accountRepo, clientRepo, services.NewCryptoNumberGenerator())
	movementService := services.NewMovementService(movementRepo, accountRepo)
	reportService := services.NewReportService(accountRepo, movementRepo, clientRepo, pdf.NewRenderer())

	var authMiddleware func(http.Handler) http.Handler
	if cfg.AuthUser != "" && cfg.AuthKey != "" {
		authMiddleware = middleware.BasicAuth(cfg.AuthUser, cfg.AuthKey)
	}

	mux := router.New(
		authMiddleware,
		controller.NewClientController(clientService),
		controller.NewAccountController(accountService),
		controller.NewMovementController(movementService),
		controller.NewReportController(reportService),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	log.Printf("listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("serve http: %v", err)
	}
}
