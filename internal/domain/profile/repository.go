package profile

import "context"

type Repository interface {
	GetDosingProfile(ctx context.Context) (DosingProfile, error)
	SaveDosingProfile(ctx context.Context, p DosingProfile) error
	ListActivities(ctx context.Context) ([]Activity, error)
}
