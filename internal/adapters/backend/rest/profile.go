package rest

import (
	"context"
	"net/http"

	"microdose-web/internal/domain/profile"
)

type ProfileRepo struct {
	c *Client
}

func NewProfileRepo(c *Client) *ProfileRepo {
	return &ProfileRepo{c: c}
}

type dosingProfileDTO struct {
	Substance   string  `json:"substance"`
	BodyWeight  float64 `json:"body_weight"`
	Sensitivity string  `json:"sensitivity"`
	Dose        float64 `json:"dose"`
	DoseUnit    string  `json:"dose_unit"`
	UpdatedAt   string  `json:"updated_at"`
}

type activityDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	OccurredAt  string `json:"occurred_at"`
}

func (r *ProfileRepo) GetDosingProfile(ctx context.Context) (profile.DosingProfile, error) {
	var out dosingProfileDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/profile/dosing", nil, authHeaders(ctx), nil, &out)
	if err != nil {
		return profile.DosingProfile{}, err
	}

	p := profile.DosingProfile{
		Substance:   out.Substance,
		BodyWeight:  out.BodyWeight,
		Sensitivity: out.Sensitivity,
		Dose:        out.Dose,
		DoseUnit:    out.DoseUnit,
	}
	if t, ok := parseAPIDate(out.UpdatedAt); ok {
		p.UpdatedAt = t
	}
	return p, nil
}

func (r *ProfileRepo) SaveDosingProfile(ctx context.Context, p profile.DosingProfile) error {
	req := dosingProfileDTO{
		Substance:   p.Substance,
		BodyWeight:  p.BodyWeight,
		Sensitivity: p.Sensitivity,
		Dose:        p.Dose,
		DoseUnit:    p.DoseUnit,
	}
	return r.c.http.DoJSON(ctx, http.MethodPut, "/profile/dosing", nil, authHeaders(ctx), req, nil)
}

func (r *ProfileRepo) ListActivities(ctx context.Context) ([]profile.Activity, error) {
	var out []activityDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/activities", nil, authHeaders(ctx), nil, &out)
	if err != nil {
		return nil, err
	}

	as := make([]profile.Activity, 0, len(out))
	for _, d := range out {
		a := profile.Activity{
			ID:          d.ID,
			Kind:        d.Kind,
			Description: d.Description,
		}
		if t, ok := parseAPIDate(d.OccurredAt); ok {
			a.OccurredAt = t
		}
		as = append(as, a)
	}
	return as, nil
}
