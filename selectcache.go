package bikeflow

import (
	"strconv"
	"strings"

	"github.com/bluele/gcache"

	"github.com/w5felix/bikeflow/stats"
)

const selectionCacheSize = 256

// selectionCache memoizes Select results per control tuple. Selections are
// pure functions of the immutable cache, so entries never go stale within
// one dataset load.
type selectionCache struct {
	cache *stats.Cache
	lru   gcache.Cache
}

func newSelectionCache(c *stats.Cache) *selectionCache {
	return &selectionCache{
		cache: c,
		lru:   gcache.New(selectionCacheSize).LRU().Build(),
	}
}

func memoKey(p stats.Params) string {
	parts := []string{
		p.Member.String(),
		p.Month.String(),
		strconv.Itoa(p.Cap),
		strconv.Itoa(p.TopK),
		strconv.Itoa(p.Percentile),
		strconv.FormatBool(p.HideIsolated),
		p.DetailStation,
	}
	return strings.Join(parts, "|")
}

func (sc *selectionCache) Get(p stats.Params) *stats.Selection {
	key := memoKey(p)
	if v, err := sc.lru.Get(key); err == nil {
		return v.(*stats.Selection)
	}
	sel := stats.Select(sc.cache, p)
	_ = sc.lru.Set(key, sel)
	return sel
}
