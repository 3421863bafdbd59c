package memory

import (
	"context"
	"sync"
	"time"

	"microdose-web/internal/domain/profile"
)

type profileRepo struct {
	mu      sync.RWMutex
	dosing  profile.DosingProfile
	hasDose bool
	now     func() time.Time
}

// NewProfileRepo es el repo de dev sin backend.
func NewProfileRepo() profile.Repository {
	return &profileRepo{now: time.Now}
}

func (r *profileRepo) GetDosingProfile(ctx context.Context) (profile.DosingProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasDose {
		return profile.DosingProfile{}, nil
	}
	return r.dosing, nil
}

func (r *profileRepo) SaveDosingProfile(ctx context.Context, p profile.DosingProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.UpdatedAt = r.now()
	r.dosing = p
	r.hasDose = true
	return nil
}

func (r *profileRepo) ListActivities(ctx context.Context) ([]profile.Activity, error) {
	return nil, nil
}
