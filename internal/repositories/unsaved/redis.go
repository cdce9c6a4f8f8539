package unsaved

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	ledgerKeyPrefix = "unsaved:"
	replayKeyPrefix = "unsaved_replay:"
)

var (
	ErrEmptyEventID    = errors.New("event ID cannot be empty")
	ErrEmptyIdentifier = errors.New("identifier cannot be empty")
)

// beginReplayScript moves the live ledger onto the end of the replay list.
// KEYS[1] live ledger, KEYS[2] replay list.
const beginReplayScript = `
local live = redis.call('LRANGE', KEYS[1], 0, -1)
for i = 1, #live do
	redis.call('RPUSH', KEYS[2], live[i])
end
redis.call('DEL', KEYS[1])
return redis.call('LRANGE', KEYS[2], 0, -1)
`

// drainScript removes the replay list and the live ledger, in that order.
// KEYS[1] live ledger, KEYS[2] replay list.
const drainScript = `
local items = redis.call('LRANGE', KEYS[2], 0, -1)
local live = redis.call('LRANGE', KEYS[1], 0, -1)
for i = 1, #live do
	items[#items + 1] = live[i]
end
redis.call('DEL', KEYS[1], KEYS[2])
return items
`

// Config holds configuration for the Redis unsaved ledger
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis lists
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed unsaved ledger
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func ledgerKey(eventID string) string {
	return ledgerKeyPrefix + eventID
}

func replayKey(eventID string) string {
	return replayKeyPrefix + eventID
}

// Push appends an identifier to the ledger
func (r *redisRepository) Push(ctx context.Context, input *PushInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	if input.Identifier == "" {
		return ErrEmptyIdentifier
	}

	if err := r.client.RPush(ctx, ledgerKey(input.EventID), input.Identifier).Err(); err != nil {
		return fmt.Errorf("failed to push unsaved identifier: %w", err)
	}

	return nil
}

// List returns the replay in flight followed by the live ledger
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	pipe := r.client.Pipeline()
	replayCmd := pipe.LRange(ctx, replayKey(input.EventID), 0, -1)
	liveCmd := pipe.LRange(ctx, ledgerKey(input.EventID), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to list unsaved identifiers: %w", err)
	}

	identifiers := append(replayCmd.Val(), liveCmd.Val()...)

	return &ListOutput{
		Identifiers: identifiers,
	}, nil
}

// Count returns the size of the replay in flight plus the live ledger
func (r *redisRepository) Count(ctx context.Context, input *CountInput) (*CountOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	pipe := r.client.Pipeline()
	replayCmd := pipe.LLen(ctx, replayKey(input.EventID))
	liveCmd := pipe.LLen(ctx, ledgerKey(input.EventID))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to count unsaved identifiers: %w", err)
	}

	return &CountOutput{
		Count: int(replayCmd.Val() + liveCmd.Val()),
	}, nil
}

// BeginReplay moves the live ledger onto the replay list and returns the replay list
func (r *redisRepository) BeginReplay(ctx context.Context, input *BeginReplayInput) (*BeginReplayOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	keys := []string{ledgerKey(input.EventID), replayKey(input.EventID)}
	identifiers, err := r.eval(ctx, beginReplayScript, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to begin replay: %w", err)
	}

	return &BeginReplayOutput{
		Identifiers: identifiers,
	}, nil
}

// CommitReplay drops the replay list and prepends the remaining identifiers to the live ledger
func (r *redisRepository) CommitReplay(ctx context.Context, input *CommitReplayInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, replayKey(input.EventID))
		if len(input.Remaining) > 0 {
			pipe.LPush(ctx, ledgerKey(input.EventID), reversed(input.Remaining)...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to commit replay: %w", err)
	}

	return nil
}

// Drain removes and returns everything held for the event
func (r *redisRepository) Drain(ctx context.Context, input *DrainInput) (*DrainOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEmptyEventID
	}

	keys := []string{ledgerKey(input.EventID), replayKey(input.EventID)}
	identifiers, err := r.eval(ctx, drainScript, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to drain unsaved identifiers: %w", err)
	}

	return &DrainOutput{
		Identifiers: identifiers,
	}, nil
}

// Restore prepends identifiers to the live ledger
func (r *redisRepository) Restore(ctx context.Context, input *RestoreInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	if len(input.Identifiers) == 0 {
		return nil
	}

	if err := r.client.LPush(ctx, ledgerKey(input.EventID), reversed(input.Identifiers)...).Err(); err != nil {
		return fmt.Errorf("failed to restore unsaved identifiers: %w", err)
	}

	return nil
}

// Clear deletes the live ledger and any replay in flight
func (r *redisRepository) Clear(ctx context.Context, input *ClearInput) error {
	if input == nil || input.EventID == "" {
		return ErrEmptyEventID
	}

	if err := r.client.Del(ctx, ledgerKey(input.EventID), replayKey(input.EventID)).Err(); err != nil {
		return fmt.Errorf("failed to clear unsaved identifiers: %w", err)
	}

	return nil
}

func (r *redisRepository) eval(ctx context.Context, script string, keys []string) ([]string, error) {
	result, err := r.client.Eval(ctx, script, keys).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	items, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected script result %T", result)
	}

	identifiers := make([]string, 0, len(items))
	for _, item := range items {
		identifier, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected script item %T", item)
		}
		identifiers = append(identifiers, identifier)
	}

	return identifiers, nil
}

// reversed returns values in reverse order as LPUSH arguments
func reversed(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		args = append(args, values[i])
	}
	return args
}
