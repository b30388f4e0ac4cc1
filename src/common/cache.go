package common

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"panditseva/src/config"
	"panditseva/src/lib"
	"panditseva/src/models"
)

func recentBookingsKey(userID uint) string {
	return fmt.Sprintf("user:%d:recent-bookings", userID)
}

// CacheCreatedBooking stores a freshly created booking under the client's
// correlation id so list reads can show it before the store catches up.
// The entry expires on its own; a failed write here never fails creation.
func CacheCreatedBooking(userID uint, requestID string, booking *models.Booking) {
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return
	}
	ctx := context.Background()
	key := recentBookingsKey(userID)
	entries := readEntries(ctx, key)
	if requestID == "" {
		requestID = fmt.Sprint(booking.ID)
	}
	entries[requestID] = booking
	raw, err := json.Marshal(entries)
	if err != nil {
		log.Printf("[cache] Could not serialize bookings for user %d: %s\n", userID, err.Error())
		return
	}
	if err := rdb.Set(ctx, key, raw, config.BOOKING_CACHE_TTL*time.Second).Err(); err != nil {
		log.Printf("[cache] Could not store booking for user %d: %s\n", userID, err.Error())
	}
}

// MergeCachedBookings prepends optimistic entries that the authoritative
// read has not returned yet, and drops entries it has confirmed.
func MergeCachedBookings(userID uint, authoritative []models.Booking) []models.Booking {
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return authoritative
	}
	ctx := context.Background()
	key := recentBookingsKey(userID)
	entries := readEntries(ctx, key)
	if len(entries) == 0 {
		return authoritative
	}
	seen := make(map[uint]bool, len(authoritative))
	for _, b := range authoritative {
		seen[b.ID] = true
	}
	merged := authoritative
	confirmed := false
	for rid, b := range entries {
		if b == nil || seen[b.ID] {
			delete(entries, rid)
			confirmed = true
			continue
		}
		merged = append([]models.Booking{*b}, merged...)
	}
	if confirmed {
		if len(entries) == 0 {
			rdb.Del(ctx, key)
		} else if raw, err := json.Marshal(entries); err == nil {
			rdb.Set(ctx, key, raw, config.BOOKING_CACHE_TTL*time.Second)
		}
	}
	return merged
}

func readEntries(ctx context.Context, key string) map[string]*models.Booking {
	entries := map[string]*models.Booking{}
	rdb := lib.GetRedisClient()
	if rdb == nil {
		return entries
	}
	raw, err := rdb.Get(ctx, key).Result()
	if err != nil {
		return entries
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[cache] Could not decode cached bookings: %s\n", err.Error())
		return map[string]*models.Booking{}
	}
	return entries
}
