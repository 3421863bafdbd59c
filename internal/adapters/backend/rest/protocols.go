package rest

import (
	"context"
	"fmt"
	"net/http"

	"microdose-web/internal/domain/protocols"
	"microdose-web/internal/platform/httpclient"
)

type ProtocolsRepo struct {
	c *Client
}

func NewProtocolsRepo(c *Client) *ProtocolsRepo {
	return &ProtocolsRepo{c: c}
}

type protocolDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CycleLength   int    `json:"cycle_length"`
	NotifyEnabled bool   `json:"notify_enabled"`
	CreatedAt     string `json:"created_at"`
}

type eventDTO struct {
	ID         string  `json:"id"`
	ProtocolID string  `json:"protocol_id"`
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Substance  string  `json:"substance"`
	Dose       float64 `json:"dose"`
	DoseUnit   string  `json:"dose_unit"`
}

type createProtocolRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	StartDate     string  `json:"start_date"`
	CycleLength   int     `json:"cycle_length"`
	Substance     string  `json:"substance,omitempty"`
	Dose          float64 `json:"dose,omitempty"`
	DoseUnit      string  `json:"dose_unit,omitempty"`
	NotifyEnabled bool    `json:"notify_enabled"`
}

func (r *ProtocolsRepo) List(ctx context.Context) ([]protocols.Protocol, error) {
	var out []protocolDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/protocols", nil, authHeaders(ctx), nil, &out)
	if err != nil {
		return nil, err
	}

	ps := make([]protocols.Protocol, 0, len(out))
	for _, d := range out {
		ps = append(ps, toProtocol(d))
	}
	return ps, nil
}

func (r *ProtocolsRepo) GetByID(ctx context.Context, id string) (protocols.Protocol, error) {
	var out protocolDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/protocols/"+id, nil, authHeaders(ctx), nil, &out)
	if httpclient.IsNotFound(err) {
		return protocols.Protocol{}, protocols.ErrNotFound
	}
	if err != nil {
		return protocols.Protocol{}, err
	}
	return toProtocol(out), nil
}

func (r *ProtocolsRepo) Create(ctx context.Context, in protocols.CreateInput) (protocols.Protocol, error) {
	req := createProtocolRequest{
		Name:          in.Name,
		Type:          string(in.Type),
		StartDate:     in.StartDate,
		CycleLength:   in.CycleLength,
		Substance:     in.Substance,
		Dose:          in.Dose,
		DoseUnit:      in.DoseUnit,
		NotifyEnabled: in.NotifyEnabled,
	}

	var out protocolDTO
	err := r.c.http.DoJSON(ctx, http.MethodPost, "/protocols", nil, authHeaders(ctx), req, &out)
	if err != nil {
		return protocols.Protocol{}, err
	}
	return toProtocol(out), nil
}

func (r *ProtocolsRepo) Delete(ctx context.Context, id string) error {
	err := r.c.http.DoJSON(ctx, http.MethodDelete, "/protocols/"+id, nil, authHeaders(ctx), nil, nil)
	if httpclient.IsNotFound(err) {
		return protocols.ErrNotFound
	}
	return err
}

func (r *ProtocolsRepo) ListEvents(ctx context.Context, protocolID string) ([]protocols.Event, error) {
	path := fmt.Sprintf("/protocols/%s/events", protocolID)

	var out []eventDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, path, nil, authHeaders(ctx), nil, &out)
	if httpclient.IsNotFound(err) {
		return nil, protocols.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	evs := make([]protocols.Event, 0, len(out))
	for _, d := range out {
		e := protocols.Event{
			ID:         d.ID,
			ProtocolID: d.ProtocolID,
			Type:       protocols.EventType(d.Type),
			Status:     protocols.EventStatus(d.Status),
			Substance:  d.Substance,
			Dose:       d.Dose,
			DoseUnit:   d.DoseUnit,
		}
		if t, ok := parseAPIDate(d.Date); ok {
			e.Date = t
		}
		evs = append(evs, e)
	}
	return evs, nil
}

func toProtocol(d protocolDTO) protocols.Protocol {
	p := protocols.Protocol{
		ID:            d.ID,
		Name:          d.Name,
		Type:          protocols.Type(d.Type),
		Status:        protocols.Status(d.Status),
		CycleLength:   d.CycleLength,
		NotifyEnabled: d.NotifyEnabled,
	}
	if t, ok := parseAPIDate(d.StartDate); ok {
		p.StartDate = t
	}
	if t, ok := parseAPIDate(d.EndDate); ok {
		p.EndDate = t
	}
	if t, ok := parseAPIDate(d.CreatedAt); ok {
		p.CreatedAt = t
	}
	return p
}
