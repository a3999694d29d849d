package app

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	"github.com/asketsystem/lifebook/internal/aiprovider"
	"github.com/asketsystem/lifebook/internal/auth"
	"github.com/asketsystem/lifebook/internal/content"
	"github.com/asketsystem/lifebook/internal/platform/logger"
	"github.com/asketsystem/lifebook/internal/repository"
)

type Clients struct {
	AI       aiprovider.Client
	Store    content.Store
	Verifier auth.TokenVerifier

	firestoreClient *firestore.Client
	Redis           *redis.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	var out Clients

	ai, err := aiprovider.NewClient(log, aiprovider.Config{
		BaseURL: cfg.ProviderBaseURL,
		APIKey:  cfg.ProviderAPIKey,
		Model:   cfg.ProviderModel,
		Timeout: cfg.ProviderTimeout,
	})
	if err != nil {
		return out, fmt.Errorf("init AI provider client: %w", err)
	}
	out.AI = ai

	verifier, err := auth.NewFirebaseVerifier(nil, cfg.FirebaseProjectID)
	if err != nil {
		return out, fmt.Errorf("init token verifier: %w", err)
	}
	out.Verifier = verifier

	switch cfg.StoreMode {
	case StoreModeMemory:
		out.Store = repository.NewMemoryStore()
	case StoreModeFirestore:
		// Credentials fall back to ADC when no service account file is set.
		var opts []option.ClientOption
		if cfg.FirebaseCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
		}
		fs, err := firestore.NewClient(ctx, cfg.FirebaseProjectID, opts...)
		if err != nil {
			return out, fmt.Errorf("init firestore client: %w", err)
		}
		out.firestoreClient = fs
		out.Store = repository.NewFirestoreStore(log, fs)
	default:
		return out, fmt.Errorf("unknown store mode %q", cfg.StoreMode)
	}

	if cfg.RedisAddr != "" {
		out.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	return out, nil
}

func (c Clients) Close() error {
	var firstErr error
	if c.firestoreClient != nil {
		if err := c.firestoreClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
