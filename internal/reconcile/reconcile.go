// Package reconcile produces the authoritative current view of products and
// recipes by layering three sources: the immutable catalog, user override
// records, and deletion markers. It owns all reads and writes of the
// persisted override and marker lists; no other component touches them.
//
// Provenance is computed, not stored: an override record whose id matches a
// catalog entry is that entry as modified by the user, any other id is a
// wholly user-created item. Created ids are always freshly generated, so they
// cannot collide with catalog ids.
package reconcile

import (
	"encoding/json"
	"time"

	"calorie-service/pkg/kvstore"
	"calorie-service/prometheus"

	"go.uber.org/zap"
)

// Storage keys, one per logical list
const (
	keyUserProducts    = "user_products"
	keyUserRecipes     = "user_recipes"
	keyDeletedProducts = "deleted_system_products"
	keyDeletedRecipes  = "deleted_system_recipes"
	keyMigrationReport = "migration_report"
)

// readIDList loads a deletion-marker id list, treating absent or corrupt
// values as empty
func readIDList(store kvstore.Store, key string, log *zap.Logger) []string {
	defer prometheus.TrackStoreOperation("read")(time.Now())

	data, ok := store.Read(key)
	if !ok {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Warn("Corrupt id list in storage, treating as empty",
			zap.String("key", key),
			zap.Error(err))
		return nil
	}
	return ids
}

// writeJSON marshals value and commits it under key
func writeJSON(store kvstore.Store, key string, value interface{}) error {
	defer prometheus.TrackStoreOperation("write")(time.Now())

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Write(key, data)
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	filtered := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
