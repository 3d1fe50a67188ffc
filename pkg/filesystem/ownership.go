package filesystem

import (
	"os/user"
	"strconv"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultOwnershipCacheSize is the default number of user and group names
// cached by an OwnershipResolver.
const DefaultOwnershipCacheSize = 64

// OwnershipResolver maps numeric user and group IDs (as found in Metadata) to
// names, caching lookups on an LRU basis. IDs that can't be resolved are
// rendered in decimal (and cached as such). It is safe for concurrent usage.
type OwnershipResolver struct {
	// lock serializes access to the caches.
	lock sync.Mutex
	// users caches user names by ID.
	users *lru.Cache
	// groups caches group names by ID.
	groups *lru.Cache
	// lookupUser resolves user IDs.
	lookupUser func(string) (string, error)
	// lookupGroup resolves group IDs.
	lookupGroup func(string) (string, error)
}

// NewOwnershipResolver creates a new resolver caching up to capacity entries
// each for users and groups. A non-positive capacity selects
// DefaultOwnershipCacheSize.
func NewOwnershipResolver(capacity int) *OwnershipResolver {
	if capacity <= 0 {
		capacity = DefaultOwnershipCacheSize
	}
	return &OwnershipResolver{
		users:  lru.New(capacity),
		groups: lru.New(capacity),
		lookupUser: func(id string) (string, error) {
			u, err := user.LookupId(id)
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		lookupGroup: func(id string) (string, error) {
			g, err := user.LookupGroupId(id)
			if err != nil {
				return "", err
			}
			return g.Name, nil
		},
	}
}

// resolve performs a cached lookup.
func (r *OwnershipResolver) resolve(cache *lru.Cache, lookup func(string) (string, error), id uint32) string {
	// Check the cache.
	r.lock.Lock()
	defer r.lock.Unlock()
	if name, ok := cache.Get(id); ok {
		return name.(string)
	}

	// Perform the lookup, falling back to the numeric representation.
	identifier := strconv.FormatUint(uint64(id), 10)
	name, err := lookup(identifier)
	if err != nil || name == "" {
		name = identifier
	}

	// Cache the result.
	cache.Add(id, name)
	return name
}

// UserName returns the name of the user with the specified ID.
func (r *OwnershipResolver) UserName(id uint32) string {
	return r.resolve(r.users, r.lookupUser, id)
}

// GroupName returns the name of the group with the specified ID.
func (r *OwnershipResolver) GroupName(id uint32) string {
	return r.resolve(r.groups, r.lookupGroup, id)
}
