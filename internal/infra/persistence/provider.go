// Package persistence selects the record store driver from configuration.
package persistence

import (
	"context"
	"log/slog"

	"locus/config"
	"locus/internal/domain/repository"
	"locus/internal/infra/persistence/firestore"
	"locus/internal/infra/persistence/memory"
	"locus/internal/infra/persistence/mongo"
	"locus/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the RecordStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewRecordStore creates the RecordStore selected by store.driver
func NewRecordStore(params StoreParams) (repository.RecordStore, error) {
	cfg := params.Config.Store
	logger := params.Logger

	var store repository.RecordStore

	switch cfg.Driver {
	case config.StoreDriverMemory:
		logger.Warn("Using in-memory record store, data is lost on restart")

		store = memory.NewStore()

	case config.StoreDriverFirestore:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase app is required for the firestore store driver")
		}
		logger.Info("Using Firestore record store")

		var err error
		store, err = firestore.NewStore(params.Ctx, params.FirebaseApp, logger)
		if err != nil {
			return nil, err
		}

	case config.StoreDriverPostgres:
		db, err := postgres.Open(params.Lc, params.Config, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL record store",
			slog.Duration("poll_interval", cfg.PollInterval),
		)

		store = postgres.NewDocumentStore(db, cfg.PollInterval, logger)

	case config.StoreDriverMongo:
		var err error
		store, err = mongo.Open(params.Ctx, params.Config.Mongo, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB record store")

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Driver)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RecordStore")

			return store.Close()
		},
	})

	return store, nil
}
