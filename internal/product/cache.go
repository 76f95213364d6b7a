package product

import (
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/claimprobe/claimprobe/internal/model"
)

// Loader resolves product IDs to validated specs, parsing each product
// file at most once per TTL.
type Loader struct {
	dir   string
	cache *gocache.Cache
}

// NewLoader creates a loader over a products directory. A zero TTL
// disables caching.
func NewLoader(dir string, ttl time.Duration) *Loader {
	var c *gocache.Cache
	if ttl > 0 {
		c = gocache.New(ttl, 2*ttl)
	}

	return &Loader{
		dir:   dir,
		cache: c,
	}
}

// Get loads the spec for a product ID, from cache when possible
func (l *Loader) Get(productID string) (*model.ProductSpec, error) {
	if l.cache != nil {
		if cached, found := l.cache.Get(productID); found {
			return cached.(*model.ProductSpec), nil
		}
	}

	spec, err := Load(filepath.Join(l.dir, productID+".yaml"))
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(productID, spec, gocache.DefaultExpiration)
	}

	return spec, nil
}
