package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"cinema_rooms/domain"
	"cinema_rooms/model"
)

const roomCacheTTL = 30 * time.Second

// cachedRoomRepository is a read-through cache in front of the gorm
// repository. Persisted records round-trip through JSON, so the cache
// stores the record and hydrates the aggregate on every hit; domain values
// themselves never touch the wire. Every write invalidates the room's key.
type cachedRoomRepository struct {
	RoomRepository
	redis *redis.Client
}

// NewCachedRoomRepository wraps the repository with a Redis read cache.
// A nil client disables caching and returns the inner repository as-is.
func NewCachedRoomRepository(inner RoomRepository, client *redis.Client) RoomRepository {
	if client == nil {
		return inner
	}
	return &cachedRoomRepository{RoomRepository: inner, redis: client}
}

func roomKey(number int) string {
	return fmt.Sprintf("room:%d", number)
}

func (r *cachedRoomRepository) FindById(ctx context.Context, number int) (domain.Room, error) {
	if raw, err := r.redis.Get(ctx, roomKey(number)).Bytes(); err == nil {
		var rec model.Room
		if err := json.Unmarshal(raw, &rec); err == nil {
			return Hydrate(rec), nil
		}
	}

	rec, err := r.RoomRepository.RecordForNumber(ctx, number)
	if err != nil {
		return domain.Room{}, err
	}
	if raw, err := json.Marshal(rec); err == nil {
		if err := r.redis.Set(ctx, roomKey(number), raw, roomCacheTTL).Err(); err != nil {
			log.Printf("room cache set failed for room %d: %v", number, err)
		}
	}
	return Hydrate(rec), nil
}

func (r *cachedRoomRepository) invalidate(ctx context.Context, number int) {
	if err := r.redis.Del(ctx, roomKey(number)).Err(); err != nil {
		log.Printf("room cache invalidation failed for room %d: %v", number, err)
	}
}

func (r *cachedRoomRepository) Create(ctx context.Context, room domain.Room, name, slug string) error {
	err := r.RoomRepository.Create(ctx, room, name, slug)
	if err == nil {
		r.invalidate(ctx, room.Identifier())
	}
	return err
}

func (r *cachedRoomRepository) UpdateStatus(ctx context.Context, room domain.Room) error {
	err := r.RoomRepository.UpdateStatus(ctx, room)
	if err == nil {
		r.invalidate(ctx, room.Identifier())
	}
	return err
}

func (r *cachedRoomRepository) Delete(ctx context.Context, number int) error {
	err := r.RoomRepository.Delete(ctx, number)
	if err == nil {
		r.invalidate(ctx, number)
	}
	return err
}

func (r *cachedRoomRepository) AddBookings(ctx context.Context, number int, slots ...domain.BookingSlot) error {
	err := r.RoomRepository.AddBookings(ctx, number, slots...)
	if err == nil {
		r.invalidate(ctx, number)
	}
	return err
}

func (r *cachedRoomRepository) DeleteBooking(ctx context.Context, number int, bookingUID string) error {
	err := r.RoomRepository.DeleteBooking(ctx, number, bookingUID)
	if err == nil {
		r.invalidate(ctx, number)
	}
	return err
}

func (r *cachedRoomRepository) DeleteScreeningBookings(ctx context.Context, number int, screeningUID string) error {
	err := r.RoomRepository.DeleteScreeningBookings(ctx, number, screeningUID)
	if err == nil {
		r.invalidate(ctx, number)
	}
	return err
}
