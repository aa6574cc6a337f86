// Package app assembles the service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/resumatch/candidate-search/internal/api"
	"github.com/resumatch/candidate-search/internal/core/access"
	"github.com/resumatch/candidate-search/internal/core/matching"
	"github.com/resumatch/candidate-search/internal/core/ports"
	"github.com/resumatch/candidate-search/internal/core/service"
	"github.com/resumatch/candidate-search/internal/infrastructure/config"
	mongostore "github.com/resumatch/candidate-search/internal/infrastructure/db/mongo"
	redisstore "github.com/resumatch/candidate-search/internal/infrastructure/db/redis"
	"github.com/resumatch/candidate-search/internal/infrastructure/memory"
	"github.com/resumatch/candidate-search/internal/infrastructure/remote"
	"github.com/resumatch/candidate-search/pkg/logger"
)

// App holds the wired services and the connections they own.
type App struct {
	Config     *config.Config
	Sessions   *service.SessionService
	Candidates *service.CandidateService
	Gate       *access.Gate

	mongo *mongo.Database
	redis *redis.Client
	log   zerolog.Logger
}

// Build connects the configured backends and wires the services. Call Close
// when done, also after an error.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, Gate: access.NewGate(access.DefaultRoutes()), log: log}

	accounts, err := memory.NewAccountDirectory(memory.DemoAccounts(), bcrypt.DefaultCost)
	if err != nil {
		return a, fmt.Errorf("account directory: %w", err)
	}

	kv, err := a.sessionKV(ctx)
	if err != nil {
		return a, err
	}
	a.Sessions = service.NewSessionService(accounts, kv, cfg.Secret(), cfg.SessionTTL,
		logger.Component(log, "sessions"))

	var client *remote.Client
	if cfg.Matcher == config.MatcherRemote || cfg.CandidateStore == config.StoreRemote {
		client = remote.NewClient(remote.Config{
			BaseURL: cfg.Remote.BaseURL,
			Timeout: cfg.Remote.Timeout,
			Token:   cfg.Remote.Token,
		})
	}

	repo, err := a.candidateRepository(ctx, client)
	if err != nil {
		return a, err
	}

	var matcher matching.Matcher = matching.NewLocalKeywordMatcher()
	if cfg.Matcher == config.MatcherRemote {
		matcher = remote.NewMatcher(client)
	}

	a.Candidates = service.NewCandidateService(repo, matcher, cfg.MaxUploadBytes,
		logger.Component(log, "candidates"))

	log.Info().
		Str("session_store", cfg.SessionStore).
		Str("candidate_store", cfg.CandidateStore).
		Str("matcher", cfg.Matcher).
		Msg("application wired")

	return a, nil
}

func (a *App) sessionKV(ctx context.Context) (ports.SessionKV, error) {
	if a.Config.SessionStore != config.StoreRedis {
		return memory.NewSessionKV(), nil
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: a.Config.Redis.Addr, DB: a.Config.Redis.DB})
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}
	a.redis = rdb
	return redisstore.NewSessionKV(rdb, a.Config.SessionTTL), nil
}

func (a *App) candidateRepository(ctx context.Context, client *remote.Client) (ports.CandidateRepository, error) {
	switch a.Config.CandidateStore {
	case config.StoreRemote:
		return remote.NewCandidateRepository(client), nil

	case config.StoreMongo:
		_, db, err := mongostore.Connect(ctx, mongostore.Config{URI: a.Config.Mongo.URI, Database: a.Config.Mongo.Database})
		if err != nil {
			return nil, fmt.Errorf("candidate store: %w", err)
		}
		a.mongo = db

		repo := mongostore.NewCandidateRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return nil, err
		}
		if a.Config.SeedMockData {
			if err := seedIfEmpty(ctx, repo); err != nil {
				return nil, err
			}
		}
		return repo, nil

	default:
		if a.Config.SeedMockData {
			return memory.NewCandidateRepository(memory.MockCandidates()...), nil
		}
		return memory.NewCandidateRepository(), nil
	}
}

func seedIfEmpty(ctx context.Context, repo *mongostore.MongoCandidateRepository) error {
	n, err := repo.Count(ctx)
	if err != nil || n > 0 {
		return err
	}
	for _, c := range memory.MockCandidates() {
		if _, err := repo.Add(ctx, c); err != nil {
			return fmt.Errorf("seed candidates: %w", err)
		}
	}
	return nil
}

// Dependencies returns what the HTTP router needs from the wired services.
func (a *App) Dependencies() api.Dependencies {
	return api.Dependencies{
		Sessions:   a.Sessions,
		Candidates: a.Candidates,
		Gate:       a.Gate,
		JWTSecret:  a.Config.Secret(),
		BodyLimit:  fmt.Sprintf("%dB", a.Config.MaxUploadBytes+(1<<20)),
		Mongo:      a.mongo,
		Redis:      a.redis,
		Log:        logger.Component(a.log, "http"),
	}
}

// Close releases the connections Build opened.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if a.mongo != nil {
		errs = append(errs, a.mongo.Client().Disconnect(ctx))
	}
	return errors.Join(errs...)
}
