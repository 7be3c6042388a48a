package api

import (
	"time"

	"github.com/patrickmn/go-cache"

	"wanderly.app/trip-planner/internal/core"
	"wanderly.app/trip-planner/internal/utils"
)

// SessionRegistry keeps live planning sessions in memory. Sessions expire
// after ttl without access.
type SessionRegistry struct {
	cache   *cache.Cache
	newFunc func() *core.PlannerService
}

func NewSessionRegistry(ttl time.Duration, newFunc func() *core.PlannerService) *SessionRegistry {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRegistry{
		cache:   cache.New(ttl, 10*time.Minute),
		newFunc: newFunc,
	}
}

func (r *SessionRegistry) Create() (string, *core.PlannerService) {
	id := utils.NewID(utils.PrefixSession)
	planner := r.newFunc()
	r.cache.Set(id, planner, cache.DefaultExpiration)
	return id, planner
}

// Get returns the session and refreshes its expiry.
func (r *SessionRegistry) Get(id string) (*core.PlannerService, bool) {
	if x, found := r.cache.Get(id); found {
		planner := x.(*core.PlannerService)
		r.cache.Set(id, planner, cache.DefaultExpiration)
		return planner, true
	}
	return nil, false
}

func (r *SessionRegistry) Delete(id string) {
	r.cache.Delete(id)
}

func (r *SessionRegistry) Count() int {
	return r.cache.ItemCount()
}
