// Package services holds the query, grouping, export, and view-state logic
// sitting between the repositories and the HTTP delivery layer.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/metrics"
)

// QueryService derives the page of events to render from the current view
// parameters. Filtering happens in two stages: status and place are pushed
// to the store and shape Total and pagination; free-text search runs only
// over the fetched page and never changes Total. A search can therefore
// thin out a page without changing the page count. That asymmetry is part
// of the view contract, not an accident.
type QueryService struct {
	repo domain.EventRepository
}

func NewQueryService(repo domain.EventRepository) *QueryService {
	return &QueryService{repo: repo}
}

// List fetches the page described by params and applies the client-side
// search and grouping passes.
func (s *QueryService) List(ctx context.Context, params domain.ViewParams) (domain.ViewResult, error) {
	page, err := s.Fetch(ctx, params)
	if err != nil {
		return domain.ViewResult{}, err
	}
	return deriveResult(page, params), nil
}

// Fetch runs the store-side stage only: filter, sort, paginate. The
// returned page is pre-search; callers re-derive the rendered rows from it
// when only client-side parameters change.
func (s *QueryService) Fetch(ctx context.Context, params domain.ViewParams) (domain.EventPage, error) {
	start := time.Now()
	metrics.QueriesTotal.Inc()

	page, err := s.repo.Query(ctx, params.Page, params.PageSize, params.Sort(), params.Filter())
	if err != nil {
		return domain.EventPage{}, fmt.Errorf("query events: %w", err)
	}
	metrics.QueryDuration.Observe(time.Since(start).Seconds())
	return page, nil
}

// deriveResult applies the search pass to a fetched page and assembles the
// rendered snapshot. Pure; also used to re-render a cached page when only
// the search term changed.
func deriveResult(page domain.EventPage, params domain.ViewParams) domain.ViewResult {
	visible := FilterBySearch(page.Data, params.Search)
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = (page.Total + params.PageSize - 1) / params.PageSize
	}
	return domain.ViewResult{
		Events:     visible,
		Groups:     GroupEvents(visible, params.GroupBy),
		Total:      page.Total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: totalPages,
	}
}

// FilterBySearch keeps the events whose place, status, or rendered
// DD.MM.YYYY date contains term, case-insensitively. An empty term keeps
// everything.
func FilterBySearch(events []domain.Event, term string) []domain.Event {
	if term == "" {
		return events
	}
	needle := strings.ToLower(term)
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Place), needle) ||
			strings.Contains(strings.ToLower(string(e.Status)), needle) ||
			strings.Contains(FormatDate(e.Date), needle) {
			out = append(out, e)
		}
	}
	return out
}
