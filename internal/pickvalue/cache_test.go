package pickvalue

import (
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	cache := NewCache(time.Minute)

	if _, ok := cache.Get(2026); ok {
		t.Error("empty cache returned a table")
	}

	table := &Table{Default: defaultCurve(60)}
	cache.Set(2026, table)

	got, ok := cache.Get(2026)
	if !ok || got != table {
		t.Errorf("Get = %v, %v; want the stored table", got, ok)
	}
	if _, ok := cache.Get(2027); ok {
		t.Error("seasons must not share entries")
	}

	cache.Invalidate(2026)
	if _, ok := cache.Get(2026); ok {
		t.Error("table survived invalidation")
	}
}
