package memory

import (
	"time"

	"notecraft-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// IdentityCache keeps resolved identities for a short while so the auth
// middleware does not hit the users table on every request.
type IdentityCache struct {
	cache *cache.Cache
}

func NewIdentityCache(ttl time.Duration) *IdentityCache {
	return &IdentityCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *IdentityCache) Save(identity *entity.Identity) {
	r.cache.Set(identity.Id.String(), identity, cache.DefaultExpiration)
}

func (r *IdentityCache) Get(userId uuid.UUID) (*entity.Identity, bool) {
	if x, found := r.cache.Get(userId.String()); found {
		return x.(*entity.Identity), true
	}
	return nil, false
}

func (r *IdentityCache) Delete(userId uuid.UUID) {
	r.cache.Delete(userId.String())
}
