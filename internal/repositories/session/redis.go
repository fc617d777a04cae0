package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/questline/internal/entities"
	"github.com/KirkDiggler/questline/internal/errors"
	"github.com/KirkDiggler/questline/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/questline/internal/redis"
)

const (
	// Key pattern: questline:session:{session_id}
	sessionKeyPrefix = "questline:session:"
	defaultTTL       = 7 * 24 * time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL is refreshed on every save; zero uses a week
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateNonNegative("TTL", int64(c.TTL), vb)
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for sessions
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Save stores the session JSON with the configured TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := marshal(input.Session)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, buildKey(input.Session.ID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session %s", input.Session.ID)
	}

	return &SaveOutput{ExpiresAt: r.clock.Now().Add(r.ttl)}, nil
}

// Get loads a session by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.SessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("session %s not found", input.SessionID)
		}
		return nil, errors.Wrapf(err, "failed to get session %s", input.SessionID)
	}

	s, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: s}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	n, err := r.client.Del(ctx, buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete session %s", input.SessionID)
	}
	if n == 0 {
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func marshal(s *entities.Session) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session %s", s.ID)
	}
	return data, nil
}

func unmarshal(data []byte) (*entities.Session, error) {
	var s entities.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	if s.Character == nil {
		return nil, errors.Internal("stored session has no character")
	}
	return &s, nil
}
