package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"microdose-web/internal/domain/analytics"
)

type AnalyticsRepo struct {
	c *Client
}

func NewAnalyticsRepo(c *Client) *AnalyticsRepo {
	return &AnalyticsRepo{c: c}
}

type journalStatsDTO struct {
	Entries   int     `json:"entries"`
	AvgMood   float64 `json:"avg_mood"`
	AvgEnergy float64 `json:"avg_energy"`
	AvgFocus  float64 `json:"avg_focus"`
	Daily     []struct {
		Date    string  `json:"date"`
		Entries int     `json:"entries"`
		Mood    float64 `json:"mood"`
	} `json:"daily"`
}

type adherenceDTO struct {
	Scheduled int     `json:"scheduled"`
	Completed int     `json:"completed"`
	Missed    int     `json:"missed"`
	Skipped   int     `json:"skipped"`
	Rate      float64 `json:"rate"`
}

func (r *AnalyticsRepo) Journal(ctx context.Context, days int) (analytics.JournalStats, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var out journalStatsDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/analytics/journal", q, authHeaders(ctx), nil, &out)
	if err != nil {
		return analytics.JournalStats{}, err
	}

	stats := analytics.JournalStats{
		Days:      days,
		Entries:   out.Entries,
		AvgMood:   out.AvgMood,
		AvgEnergy: out.AvgEnergy,
		AvgFocus:  out.AvgFocus,
	}
	for _, d := range out.Daily {
		stats.Daily = append(stats.Daily, analytics.JournalDay{
			Date:    d.Date,
			Entries: d.Entries,
			Mood:    d.Mood,
		})
	}
	return stats, nil
}

func (r *AnalyticsRepo) Adherence(ctx context.Context, days int) (analytics.AdherenceStats, error) {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))

	var out adherenceDTO
	err := r.c.http.DoJSON(ctx, http.MethodGet, "/analytics/adherence", q, authHeaders(ctx), nil, &out)
	if err != nil {
		return analytics.AdherenceStats{}, err
	}

	return analytics.AdherenceStats{
		Days:      days,
		Scheduled: out.Scheduled,
		Completed: out.Completed,
		Missed:    out.Missed,
		Skipped:   out.Skipped,
		Rate:      out.Rate,
	}, nil
}
