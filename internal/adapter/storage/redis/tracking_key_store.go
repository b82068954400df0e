package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stp-signer/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// TrackingKeyStore implements ports.TrackingKeyStore using Redis SET NX.
type TrackingKeyStore struct {
	client *goredis.Client
}

// NewTrackingKeyStore creates a new Redis-backed tracking key store.
func NewTrackingKeyStore(client *goredis.Client) *TrackingKeyStore {
	return &TrackingKeyStore{client: client}
}

// Reserve atomically claims a claveRastreo for empresa.
// Returns true if the key was free, false if it was already reserved.
func (s *TrackingKeyStore) Reserve(ctx context.Context, empresa string, claveRastreo string, ttl time.Duration) (bool, error) {
	key := domain.BuildTrackingKeyReservation(empresa, claveRastreo)
	result, err := s.client.SetArgs(ctx, key, time.Now().Unix(), goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis tracking key reserve: %w", err)
	}
	return result == "OK", nil
}

// Release frees a reservation.
func (s *TrackingKeyStore) Release(ctx context.Context, empresa string, claveRastreo string) error {
	key := domain.BuildTrackingKeyReservation(empresa, claveRastreo)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis tracking key release: %w", err)
	}
	return nil
}

// Name identifies the store in health reports.
func (s *TrackingKeyStore) Name() string {
	return "redis"
}

// Ping reports whether reservations can be made. Orders fail closed while it
// errors.
func (s *TrackingKeyStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
