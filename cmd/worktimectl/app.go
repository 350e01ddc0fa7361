/**
 * CONTEXT:   Shared application wiring every subcommand builds from: config, path
 *            resolver, accessor factory, and the structured slog.Logger every
 *            background component already takes
 * INPUT:     The --config/--user-id/--username/--role persistent flags
 * OUTPUT:    An *app bundling everything a subcommand needs to act
 * CHANGE:    Initial implementation.
 * RISK:      Low - Pure wiring, no business logic
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/worktime-tracker/system/internal/accessor"
	"github.com/worktime-tracker/system/internal/backup"
	"github.com/worktime-tracker/system/internal/config"
	"github.com/worktime-tracker/system/internal/domain"
	"github.com/worktime-tracker/system/internal/netmonitor"
	"github.com/worktime-tracker/system/internal/pathresolver"
)

// app bundles the dependencies every subcommand needs.
type app struct {
	cfg      *config.Config
	resolver *pathresolver.Resolver
	factory  *accessor.Factory
	backup   *backup.Service
	monitor  *netmonitor.Monitor
	log      *slog.Logger
	caller   domain.UserIdentity
	role     domain.Role
}

// newApp loads configuration and wires every shared component, mirroring
// the teacher's own CLI initializeReporting/initializeDatabase wiring step.
func newApp() (*app, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	resolver := pathresolver.New(pathresolver.Config{
		LocalRoot:   cfg.LocalRoot,
		NetworkRoot: cfg.NetworkRoot,
	})

	role := domain.Role(flagRole)
	switch role {
	case domain.RoleUser, domain.RoleTeamLeader, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("unknown role %q", flagRole)
	}

	username := flagUser2
	if username == "" {
		username = os.Getenv("USER")
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseSlogLevel(cfg.LogLevel)}))

	return &app{
		cfg:      cfg,
		resolver: resolver,
		factory:  accessor.NewFactory(resolver, cfg.CacheSize, cfg.CacheTTL),
		backup:   backup.New(resolver, cfg.Backup),
		monitor:  netmonitor.New(cfg.NetMonitor, log),
		log:      log,
		caller:   domain.UserIdentity{Username: username, UserID: flagUser},
		role:     role,
	}, nil
}

// parseSlogLevel maps the config's string log level onto slog's level type.
func parseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// writeAccessor returns the caller's own-data write accessor, failing
// loudly if the selected strategy doesn't support writes (spec section 4.4:
// only the user-own and admin strategies ever do).
func (a *app) writeAccessor() (accessor.WriteAccessor, error) {
	acc := a.factory.For(a.role, true)
	wa, ok := acc.(accessor.WriteAccessor)
	if !ok {
		return nil, fmt.Errorf("accessor strategy does not support write")
	}
	return wa, nil
}
