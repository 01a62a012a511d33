package pickvalue

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoizes pick-value tables for the duration of a negotiation
// session. Building a table touches every upcoming draft class, and a
// multi-round negotiation re-values the same picks dozens of times.
type Cache struct {
	c *gocache.Cache
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

// Get returns the cached table for a league season, if present.
func (c *Cache) Get(season int) (*Table, bool) {
	v, ok := c.c.Get(key(season))
	if !ok {
		return nil, false
	}
	return v.(*Table), true
}

// Set stores the table for a league season.
func (c *Cache) Set(season int, t *Table) {
	c.c.Set(key(season), t, gocache.DefaultExpiration)
}

// Invalidate drops the table for a league season. Call it after any
// committed trade; pick ownership shifts change nothing in the table
// itself, but roster moves shift the team ranks behind it.
func (c *Cache) Invalidate(season int) {
	c.c.Delete(key(season))
}

func key(season int) string {
	return "pickvalues:" + strconv.Itoa(season)
}
