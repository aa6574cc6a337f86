package app

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/resumatch/candidate-search/internal/infrastructure/config"
)

func memoryConfig(seed bool) *config.Config {
	return &config.Config{
		Env:            "test",
		SessionStore:   config.StoreMemory,
		CandidateStore: config.StoreMemory,
		Matcher:        config.MatcherLocal,
		SeedMockData:   seed,
		MaxUploadBytes: 1 << 20,
	}
}

func TestBuild_Memory(t *testing.T) {
	ctx := context.Background()
	a, err := Build(ctx, memoryConfig(true), zerolog.Nop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer a.Close(ctx)

	items, err := a.Candidates.List(ctx)
	if err != nil || len(items) != 7 {
		t.Fatalf("expected seeded collection, got %d items err=%v", len(items), err)
	}

	res, err := a.Sessions.Login(ctx, "recruiter", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Landing != "/search" {
		t.Fatalf("unexpected landing %s", res.Landing)
	}

	deps := a.Dependencies()
	if deps.Mongo != nil || deps.Redis != nil || deps.JWTSecret == "" || deps.BodyLimit == "" {
		t.Fatalf("unexpected dependencies: %+v", deps)
	}
}

func TestBuild_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	a, err := Build(ctx, memoryConfig(false), zerolog.Nop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer a.Close(ctx)

	results, err := a.Candidates.Search(ctx, "python")
	if err != nil || len(results) != 0 {
		t.Fatalf("expected no results over empty collection, got %d err=%v", len(results), err)
	}
}

func TestBuild_RemoteMatcher(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(false)
	cfg.Matcher = config.MatcherRemote
	cfg.Remote.BaseURL = "http://127.0.0.1:1"

	a, err := Build(ctx, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer a.Close(ctx)

	if _, err := a.Candidates.Search(ctx, "python"); err == nil {
		t.Fatalf("expected network error from unreachable backend")
	}
}
