package idempotency

import (
	"time"

	"encore.dev/storage/cache"

	"encore.app/billing/model"
)

var Cluster = cache.NewCluster("billing-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// Entries keeps one entry per endpoint and client key for a day.
var Entries = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	Cluster,
	cache.KeyspaceConfig{
		KeyPattern:    "idempotency/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(24 * time.Hour),
	},
)
