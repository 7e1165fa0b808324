package resolution

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/pkg/clock"
	redisclient "github.com/granblue-tools/hensei-transfer/internal/redis"
)

const (
	resolutionKeyPrefix = "resolution:"

	// DefaultTTL bounds how long a resolution is trusted without being
	// re-confirmed against the service.
	DefaultTTL = 30 * 24 * time.Hour
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis resolution cache.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL defaults to DefaultTTL.
	TTL time.Duration
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed resolution cache.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ttl:    ttl,
	}, nil
}

func storageKey(key Key) string {
	return fmt.Sprintf("%s%s:%s:%s", resolutionKeyPrefix, key.Kind, key.Locale, key.GranblueID)
}

func validateKey(key Key) error {
	vb := errors.NewValidationBuilder()
	if key.Kind == "" {
		vb.RequiredField("kind")
	}
	if key.GranblueID == "" {
		vb.RequiredField("granblue_id")
	}
	if key.Locale == "" {
		vb.RequiredField("locale")
	}
	return vb.Build()
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, storageKey(input.Key)).Result()
	if err == goredis.Nil {
		return nil, errors.NotFoundf("no cached resolution for %s %s",
			input.Key.Kind, input.Key.GranblueID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read resolution")
	}

	var entry Entry
	if err := json.Unmarshal([]byte(data), &entry); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal resolution")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}
	if input.ServiceID == "" {
		return nil, errors.InvalidArgument("service ID cannot be empty")
	}

	entry := &Entry{
		ServiceID:  input.ServiceID,
		ResolvedAt: r.clock.Now().Unix(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal resolution")
	}

	if err := r.client.Set(ctx, storageKey(input.Key), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store resolution")
	}

	return &PutOutput{Entry: entry}, nil
}
