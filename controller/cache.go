package controller

import "github.com/gin-contrib/cache/persistence"

// flush drops every cached page after a write, cached reads are few and cheap to rebuild.
func flush(store persistence.CacheStore) {
	if store != nil {
		_ = store.Flush()
	}
}
