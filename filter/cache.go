package filter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// programCache keeps the most recently used compiled filters by expression
type programCache struct {
	cache *lru.Cache[string, CompiledFilter]
}

func newProgramCache(size int) (*programCache, error) {
	cache, err := lru.New[string, CompiledFilter](size)
	if err != nil {
		return nil, err
	}
	return &programCache{cache: cache}, nil
}

func (c *programCache) Get(expression string) (CompiledFilter, bool) {
	return c.cache.Get(expression)
}

func (c *programCache) Put(expression string, filter CompiledFilter) {
	c.cache.Add(expression, filter)
}

func (c *programCache) Clear() {
	c.cache.Purge()
}

func (c *programCache) Size() int {
	return c.cache.Len()
}
