package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hotels-server/db"
	"hotels-server/models"
)

const DESTINATION_HOTELS_KEY_FORMAT_V1 = "destination_hotels_v1:%s"

// RedisHotelDAO caches static hotel metadata in Redis. The metadata is
// immutable per destination over the cache TTL, so a hit skips one upstream
// call per search. Callers must treat every error as a cache miss.
type RedisHotelDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisHotelDAO initializes a RedisHotelDAO with the Redis client.
func NewRedisHotelDAO(client db.RedisClient, ttl time.Duration) *RedisHotelDAO {
	return &RedisHotelDAO{client: client, ttl: ttl}
}

// SetDestinationHotels stores the hotel list for a destination.
func (dao *RedisHotelDAO) SetDestinationHotels(destinationID string, hotels []models.Hotel) error {
	key := fmt.Sprintf(DESTINATION_HOTELS_KEY_FORMAT_V1, destinationID)
	data, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("failed to marshal hotels for destination %s: %w", destinationID, err)
	}
	if err := dao.client.SetWithTTL(key, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set destination hotels in redis: %w", err)
	}
	return nil
}

// GetDestinationHotels retrieves the cached hotel list for a destination.
func (dao *RedisHotelDAO) GetDestinationHotels(destinationID string) ([]models.Hotel, error) {
	key := fmt.Sprintf(DESTINATION_HOTELS_KEY_FORMAT_V1, destinationID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get destination hotels from redis: %w", err)
	}
	var hotels []models.Hotel
	if err := json.Unmarshal([]byte(str), &hotels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal destination hotels JSON: %w", err)
	}
	return hotels, nil
}

// DeleteDestinationHotels drops the cached hotel list for a destination.
func (dao *RedisHotelDAO) DeleteDestinationHotels(destinationID string) error {
	key := fmt.Sprintf(DESTINATION_HOTELS_KEY_FORMAT_V1, destinationID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete destination hotels key %s: %w", key, err)
	}
	log.Printf("[RedisHotelDAO] Deleted cached hotels for destination %s", destinationID)
	return nil
}
