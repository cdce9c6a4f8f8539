package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/eventswipe/internal/common/uuid"
	"github.com/KirkDiggler/eventswipe/internal/models"
)

const (
	// Key prefixes for Redis
	checkInKeyPrefix           = "checkin:"
	eventCheckInsKeyPrefix     = "event_checkins:"
	identifierCheckInKeyPrefix = "identifier_checkins:"
)

// Config holds configuration for the Redis attendance repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator creates record IDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed attendance repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuid:   cfg.UUIDGenerator,
	}, nil
}

func identifierKey(eventID, identifier string) string {
	return fmt.Sprintf("%s%s:%s", identifierCheckInKeyPrefix, eventID, identifier)
}

// AddRecord stores a record and indexes it by event and identifier
func (r *redisRepository) AddRecord(ctx context.Context, input *AddRecordInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.ID == "" {
		return errors.New("check-in record ID cannot be empty")
	}

	if record.EventID == "" {
		return errors.New("check-in record event ID cannot be empty")
	}

	if record.Timestamp.IsZero() {
		return errors.New("check-in record timestamp cannot be empty")
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal check-in record: %w", err)
	}

	score := float64(record.Timestamp.UnixMilli())

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, checkInKeyPrefix+record.ID, recordJSON, 0)
	pipe.ZAdd(ctx, eventCheckInsKeyPrefix+record.EventID, redis.Z{
		Score:  score,
		Member: record.ID,
	})
	pipe.ZAdd(ctx, identifierKey(record.EventID, record.Identifier), redis.Z{
		Score:  score,
		Member: record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add check-in record: %w", err)
	}

	return nil
}

// CreateRecord builds a record from a booking and stores it
func (r *redisRepository) CreateRecord(ctx context.Context, input *CreateRecordInput) (*CreateRecordOutput, error) {
	if input == nil || input.Booking == nil {
		return nil, errors.New("input and booking cannot be nil")
	}

	b := input.Booking
	record := &models.CheckIn{
		ID:                r.uuid.NewUUID(),
		EventID:           input.EventID,
		Identifier:        b.Identifier,
		BookingID:         b.BookingID,
		Status:            b.Status,
		IsBooked:          b.IsBooked,
		IsAlreadyRecorded: b.IsAlreadyRecorded,
		IsOnWaitingList:   b.IsOnWaitingList,
		Online:            input.Online,
		Source:            input.Source,
		Timestamp:         input.Timestamp,
	}

	if err := r.AddRecord(ctx, &AddRecordInput{Record: record}); err != nil {
		return nil, err
	}

	return &CreateRecordOutput{
		Record: record,
	}, nil
}

// GetRecordsForEvent retrieves every record of an event
func (r *redisRepository) GetRecordsForEvent(ctx context.Context, input *GetRecordsForEventInput) (*GetRecordsForEventOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	records, err := r.recordsIn(ctx, eventCheckInsKeyPrefix+input.EventID)
	if err != nil {
		return nil, err
	}

	return &GetRecordsForEventOutput{
		Records: records,
	}, nil
}

// GetRecordsForIdentifier retrieves the records of one identifier at an event
func (r *redisRepository) GetRecordsForIdentifier(ctx context.Context, input *GetRecordsForIdentifierInput) (*GetRecordsForIdentifierOutput, error) {
	if input == nil || input.EventID == "" || input.Identifier == "" {
		return nil, errors.New("input, event ID and identifier cannot be empty")
	}

	records, err := r.recordsIn(ctx, identifierKey(input.EventID, input.Identifier))
	if err != nil {
		return nil, err
	}

	return &GetRecordsForIdentifierOutput{
		Records: records,
	}, nil
}

// recordsIn loads the records whose IDs are held in a sorted set, in score order
func (r *redisRepository) recordsIn(ctx context.Context, indexKey string) ([]*models.CheckIn, error) {
	recordIDs, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in IDs: %w", err)
	}

	if len(recordIDs) == 0 {
		return []*models.CheckIn{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(recordIDs))
	for i, recordID := range recordIDs {
		commands[i] = pipe.Get(ctx, checkInKeyPrefix+recordID)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get check-in records: %w", err)
	}

	records := make([]*models.CheckIn, 0, len(recordIDs))
	for i, cmd := range commands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record expired between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get check-in record %s: %w", recordIDs[i], err)
		}

		var record models.CheckIn
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal check-in record %s: %w", recordIDs[i], err)
		}

		records = append(records, &record)
	}

	return records, nil
}
