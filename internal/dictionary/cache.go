package dictionary

import (
	"context"
	"time"

	"thesaurusrex/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedLookuper keeps recent successful lookups in memory.
// Failures are never cached.
type CachedLookuper struct {
	next  Lookuper
	cache *expirable.LRU[string, *domain.DictionaryEntry]
}

// NewCachedLookuper wraps next with an LRU of size entries expiring after ttl
func NewCachedLookuper(next Lookuper, size int, ttl time.Duration) *CachedLookuper {
	return &CachedLookuper{
		next:  next,
		cache: expirable.NewLRU[string, *domain.DictionaryEntry](size, nil, ttl),
	}
}

// Lookup serves word from the cache or delegates to the wrapped lookuper
func (c *CachedLookuper) Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	if entry, ok := c.cache.Get(word); ok {
		return entry, nil
	}

	entry, err := c.next.Lookup(ctx, word)
	if err != nil {
		return nil, err
	}

	c.cache.Add(word, entry)
	return entry, nil
}

// Len returns the number of cached entries
func (c *CachedLookuper) Len() int {
	return c.cache.Len()
}
