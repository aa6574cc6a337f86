package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Backend selectors.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
	StoreRemote = "remote"

	MatcherLocal  = "local"
	MatcherRemote = "remote"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL     time.Duration `env:"SESSION_TTL,      default=24h"`
	SessionStore   string        `env:"SESSION_STORE,    default=memory"`
	CandidateStore string        `env:"CANDIDATE_STORE,  default=memory"`
	Matcher        string        `env:"MATCHER,          default=local"`
	SeedMockData   bool          `env:"SEED_MOCK_DATA,   default=true"`
	MaxUploadBytes int64         `env:"MAX_UPLOAD_BYTES, default=5242880"`

	Remote RemoteConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type RemoteConfig struct {
	BaseURL string        `env:"REMOTE_BASE_URL"`
	Timeout time.Duration `env:"REMOTE_TIMEOUT, default=10s"`
	Token   string        `env:"REMOTE_TOKEN"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resumatch"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads a .env file when one exists, then the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.SessionStore = strings.ToLower(strings.TrimSpace(c.SessionStore))
	c.CandidateStore = strings.ToLower(strings.TrimSpace(c.CandidateStore))
	c.Matcher = strings.ToLower(strings.TrimSpace(c.Matcher))
}

// Validate rejects unknown backends and incomplete combinations.
func (c *Config) Validate() error {
	var errs []error

	switch c.SessionStore {
	case StoreMemory, StoreRedis:
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be memory or redis, got %q", c.SessionStore))
	}
	switch c.CandidateStore {
	case StoreMemory, StoreMongo, StoreRemote:
	default:
		errs = append(errs, fmt.Errorf("CANDIDATE_STORE must be memory, mongo or remote, got %q", c.CandidateStore))
	}
	switch c.Matcher {
	case MatcherLocal, MatcherRemote:
	default:
		errs = append(errs, fmt.Errorf("MATCHER must be local or remote, got %q", c.Matcher))
	}

	if (c.Matcher == MatcherRemote || c.CandidateStore == StoreRemote) && c.Remote.BaseURL == "" {
		errs = append(errs, errors.New("REMOTE_BASE_URL is required for the remote backend"))
	}
	if c.IsProduction() && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Secret returns the signing secret, with a fixed development fallback
// outside production.
func (c *Config) Secret() string {
	if c.JWTSecret != "" {
		return c.JWTSecret
	}
	return "resumatch-dev-secret"
}
