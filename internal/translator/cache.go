package translator

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheCapacity is the number of language-pair models kept in memory.
const DefaultCacheCapacity = 10

// LoaderFunc produces a translation model for a language pair.
type LoaderFunc func(source, target string) (Model, error)

// ModelCache keeps per-pair translation models with least-recently-used
// eviction, loading a missing pair on demand.
type ModelCache struct {
	models *lru.Cache[string, Model]
	loader LoaderFunc
}

// NewModelCache creates a cache of the given capacity around loader.
func NewModelCache(capacity int, loader LoaderFunc) (*ModelCache, error) {
	models, err := lru.New[string, Model](capacity)
	if err != nil {
		return nil, fmt.Errorf("lru.New > %w", err)
	}
	return &ModelCache{models: models, loader: loader}, nil
}

// Get returns the model for a language pair, loading it on a cache miss.
func (c *ModelCache) Get(source, target string) (Model, error) {
	key := modelKey(source, target)
	if model, ok := c.models.Get(key); ok {
		return model, nil
	}

	model, err := c.loader(source, target)
	if err != nil {
		return nil, fmt.Errorf("loader > %w", err)
	}
	c.models.Add(key, model)
	return model, nil
}

// Len returns the number of cached models.
func (c *ModelCache) Len() int {
	return c.models.Len()
}

func modelKey(source, target string) string {
	return source + "_" + target
}
