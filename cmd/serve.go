package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"golang.org/x/crypto/bcrypt"
	"tunebox/internal/accounts"
	"tunebox/internal/auth"
	"tunebox/internal/catalog"
	"tunebox/internal/repositories"
	"tunebox/internal/server"
	"tunebox/internal/shared"
)

// Serve runs the HTTP API server until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	config := r.config
	if _, err := os.Stat(configPath); err == nil {
		if loaded, err := shared.LoadConfig(configPath); err == nil {
			config = loaded
		} else {
			r.logger.Warn("failed to load config, using defaults", "error", err)
		}
	}

	host := config.Server.Host
	if flagHost := cmd.String("host"); flagHost != "" {
		host = flagHost
	}
	port := config.Server.Port
	if flagPort := cmd.Int("port"); flagPort != 0 {
		port = int(flagPort)
	}

	if config.Auth.Secret == "" {
		return fmt.Errorf("%w: auth.secret must be set", shared.ErrInvalidConfig)
	}
	if config.Auth.Secret == "your_jwt_secret" {
		r.logger.Warn("auth.secret is the template default, tokens are forgeable")
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	cost := config.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	accountService := accounts.NewService(accounts.ServiceOpts{
		Users:  repositories.NewUserRepository(db),
		Tokens: auth.NewIssuer([]byte(config.Auth.Secret), config.Auth.TokenDuration()),
		Hasher: auth.NewHasher(cost),
		Logger: shared.WithLogger(r.logger, "component", "accounts"),
	})

	catalogService := catalog.NewDeezerService(catalog.DeezerOpts{
		BaseURL:    config.Catalog.BaseURL,
		PageSize:   config.Catalog.PageSize,
		MaxFetch:   config.Catalog.MaxFetch,
		RateLimit:  config.Catalog.RateLimit,
		HTTPClient: r.httpClient,
	})

	srv := server.NewServer(server.ServerOpts{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Accounts: accountService,
		Catalog:  catalogService,
		Logger:   shared.WithLogger(r.logger, "component", "server"),
	})

	serveCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.writePlain("tunebox API listening at http://%s:%d\n", host, port)
	return srv.Start(serveCtx)
}
