package service

import (
	"context"
	"errors"

	"qrlinx/internal/model"

	"github.com/rs/zerolog/log"
)

// ErrAnalyticsUnavailable is returned when analytics for a link cannot be shown
var ErrAnalyticsUnavailable = errors.New("analytics unavailable")

// AnalyticsService loads and aggregates the analytics of one link
type AnalyticsService struct {
	client AnalyticsClient
	opts   AggregateOptions
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(client AnalyticsClient, opts AggregateOptions) *AnalyticsService {
	return &AnalyticsService{
		client: client,
		opts:   opts,
	}
}

// Load fetches the click snapshot of link and derives its view.
// Every failure, including a malformed breakdown, wraps ErrAnalyticsUnavailable.
func (as *AnalyticsService) Load(ctx context.Context, link model.Link) (*model.AnalyticsView, error) {
	payload, err := as.client.Analytics(ctx, link.ShortHash)
	if err != nil {
		log.Error().Err(err).Str("short_hash", link.ShortHash).Msg("Failed to fetch analytics")
		return nil, errors.Join(ErrAnalyticsUnavailable, err)
	}

	reported, err := payload.DecodeBreakdowns()
	if err != nil {
		log.Error().Err(err).Str("short_hash", link.ShortHash).Msg("Failed to decode breakdowns")
		return nil, errors.Join(ErrAnalyticsUnavailable, err)
	}

	events := payload.Events()
	if n := sumCounts(reported.Device); n != len(events) {
		log.Debug().
			Str("short_hash", link.ShortHash).
			Int("reported", n).
			Int("events", len(events)).
			Msg("Reported breakdown differs from click list")
	}

	view := Aggregate(events, payload.Totals(), as.opts)
	view.LinkID = link.ID
	view.ShortHash = link.ShortHash
	return view, nil
}

func sumCounts(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
