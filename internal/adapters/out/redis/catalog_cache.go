// Package redis provides a read-through cache in front of the catalog
// reader. Catalog rows change rarely relative to how often orders read
// them, so a short TTL takes most lookups off the database.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
)

const cacheTTL = 5 * time.Minute

// NewClient connects to the given Redis address.
func NewClient(addr string, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

// CachedCatalogReader decorates a CatalogReader with a Redis cache.
// Redis failures are logged and fall through to the inner reader: the
// cache can be down without taking order placement down with it.
type CachedCatalogReader struct {
	inner  ports.CatalogReader
	client *redis.Client
	logger *logrus.Logger
}

// NewCachedCatalogReader wraps a catalog reader with a Redis cache.
func NewCachedCatalogReader(inner ports.CatalogReader, client *redis.Client, logger *logrus.Logger) *CachedCatalogReader {
	return &CachedCatalogReader{
		inner:  inner,
		client: client,
		logger: logger,
	}
}

type userEntry struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type restaurantEntry struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
}

type addressEntry struct {
	ID     string  `json:"id"`
	UserID *string `json:"user_id"`
}

type menuItemEntry struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	Price        int    `json:"price"`
	Available    bool   `json:"available"`
}

// GetUser retrieves a user, consulting the cache first.
func (r *CachedCatalogReader) GetUser(ctx context.Context, id kernel.UUID) (*catalog.User, error) {
	key := fmt.Sprintf("catalog:user:%s", id)

	var entry userEntry
	if r.lookup(ctx, key, &entry) {
		userID, err := kernel.UUIDFromString(entry.ID)
		if err == nil {
			role, roleErr := account.RoleFromString(entry.Role)
			if roleErr == nil {
				return catalog.NewUser(userID, role)
			}
		}
	}

	user, err := r.inner.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, userEntry{ID: user.ID().String(), Role: user.Role().String()})
	return user, nil
}

// GetRestaurant retrieves a restaurant, consulting the cache first.
func (r *CachedCatalogReader) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	key := fmt.Sprintf("catalog:restaurant:%s", id)

	var entry restaurantEntry
	if r.lookup(ctx, key, &entry) {
		restaurantID, err := kernel.UUIDFromString(entry.ID)
		if err == nil {
			ownerID, ownerErr := kernel.UUIDFromString(entry.OwnerID)
			if ownerErr == nil {
				return catalog.NewRestaurant(restaurantID, ownerID)
			}
		}
	}

	restaurant, err := r.inner.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, restaurantEntry{
		ID:      restaurant.ID().String(),
		OwnerID: restaurant.OwnerID().String(),
	})
	return restaurant, nil
}

// GetAddress retrieves a delivery address, consulting the cache first.
func (r *CachedCatalogReader) GetAddress(ctx context.Context, id kernel.UUID) (*catalog.Address, error) {
	key := fmt.Sprintf("catalog:address:%s", id)

	var entry addressEntry
	if r.lookup(ctx, key, &entry) {
		addressID, err := kernel.UUIDFromString(entry.ID)
		if err == nil {
			var userID *kernel.UUID
			if entry.UserID != nil {
				uID, userErr := kernel.UUIDFromString(*entry.UserID)
				if userErr != nil {
					err = userErr
				} else {
					userID = &uID
				}
			}
			if err == nil {
				return catalog.NewAddress(addressID, userID)
			}
		}
	}

	address, err := r.inner.GetAddress(ctx, id)
	if err != nil {
		return nil, err
	}

	entry = addressEntry{ID: address.ID().String()}
	if userID := address.UserID(); userID != nil {
		raw := userID.String()
		entry.UserID = &raw
	}
	r.store(ctx, key, entry)
	return address, nil
}

// GetMenuItem retrieves a menu item, consulting the cache first.
func (r *CachedCatalogReader) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	key := fmt.Sprintf("catalog:menuitem:%s", id)

	var entry menuItemEntry
	if r.lookup(ctx, key, &entry) {
		itemID, err := kernel.UUIDFromString(entry.ID)
		if err == nil {
			restaurantID, restErr := kernel.UUIDFromString(entry.RestaurantID)
			if restErr == nil {
				return catalog.NewMenuItem(itemID, restaurantID, entry.Price, entry.Available)
			}
		}
	}

	item, err := r.inner.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, menuItemEntry{
		ID:           item.ID().String(),
		RestaurantID: item.RestaurantID().String(),
		Price:        item.Price(),
		Available:    item.IsAvailable(),
	})
	return item, nil
}

func (r *CachedCatalogReader) lookup(ctx context.Context, key string, dest any) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("Catalog cache read failed")
		}
		return false
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Catalog cache entry corrupt")
		return false
	}
	return true
}

func (r *CachedCatalogReader) store(ctx context.Context, key string, entry any) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if err = r.client.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("Catalog cache write failed")
	}
}
