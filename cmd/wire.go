package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/tamago/internal/adapters/authz"
	"github.com/bnema/tamago/internal/adapters/notify/archive"
	"github.com/bnema/tamago/internal/adapters/notify/fanout"
	"github.com/bnema/tamago/internal/adapters/notify/journal"
	"github.com/bnema/tamago/internal/adapters/notify/logsink"
	statusadapter "github.com/bnema/tamago/internal/adapters/render/status"
	tomlrepo "github.com/bnema/tamago/internal/adapters/repo/toml"
	"github.com/bnema/tamago/internal/application"
	"github.com/bnema/tamago/internal/config"
	"github.com/bnema/tamago/internal/domain"
	"github.com/bnema/tamago/internal/ports"
	"github.com/bnema/tamago/internal/random"
)

type walletLister interface {
	List(ctx context.Context) ([]domain.Wallet, error)
}

type app struct {
	assets         *application.AssetService
	pets           *application.PetService
	economy        *application.EconomyService
	minter         ports.TokenMinter
	wallets        walletLister
	journal        *journal.Journal
	archive        *archive.Writer
	caller         domain.AccountID
	logger         *slog.Logger
	statusRenderer func([]application.PetStatus, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

type wireOptions struct {
	configFile string
	caller     string
	stderr     io.Writer
}

func wireApp(opts wireOptions) (*app, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(opts.stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	repo, err := tomlrepo.NewRepository(cfg.Viper)
	if err != nil {
		return nil, fmt.Errorf("wire ledger repository: %w", err)
	}

	events, err := journal.Open(cfg.JournalPath)
	if err != nil {
		return nil, fmt.Errorf("wire event journal: %w", err)
	}
	events.WithLogger(logger)

	clock := ports.SystemClock{}
	archiveWriter := archive.NewWriter(cfg.ArchiveDir, clock).WithLogger(logger)
	notifier := fanout.NewNotifier(events, archiveWriter, logsink.NewNotifier(logger, slog.LevelDebug))

	roles := authz.FromViper(cfg.Viper)
	locks := application.NewLocks()

	caller := cfg.Caller
	if opts.caller != "" {
		caller = domain.AccountID(opts.caller)
	}

	return &app{
		assets: application.NewAssetService(
			repo.Assets(), repo.TokenAssets(), repo.Tokens(), roles, notifier, clock, locks,
		).WithLogger(logger),
		pets: application.NewPetService(
			repo.Pets(), repo.Wallets(), repo.Settings(), repo.Tokens(), roles,
			random.NewSource(repo.Salt()), clock, locks,
		).WithLogger(logger),
		economy:        application.NewEconomyService(repo.Wallets(), roles, clock, locks).WithLogger(logger),
		minter:         repo.Tokens(),
		wallets:        repo.Wallets(),
		journal:        events,
		archive:        archiveWriter,
		caller:         caller,
		logger:         logger,
		statusRenderer: statusadapter.Render,
		now:            clock.Now,
	}, nil
}

func (a *app) Close() error {
	if a == nil {
		return nil
	}

	var errs []error
	if a.journal != nil {
		errs = append(errs, a.journal.Close())
	}
	if a.archive != nil {
		errs = append(errs, a.archive.Close())
	}
	return errors.Join(errs...)
}
