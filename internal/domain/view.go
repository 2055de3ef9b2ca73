package domain

import (
	"context"
	"time"
)

// DefaultPageSize is the fixed page size of the events view.
const DefaultPageSize = 25

// ViewParams is the full set of user-adjustable view controls.
//
// FilterFrom and FilterTo are declared for the date-range inputs but are
// not applied to the store predicate; they are accepted and carried only.
type ViewParams struct {
	FilterPlace  string      `json:"filter_place"`
	FilterStatus EventStatus `json:"filter_status"`
	FilterFrom   *time.Time  `json:"filter_from,omitempty"`
	FilterTo     *time.Time  `json:"filter_to,omitempty"`
	GroupBy      GroupKey    `json:"group_by"`
	Search       string      `json:"search"`
	SortField    SortField   `json:"sort_field"`
	SortDir      SortDir     `json:"sort_dir"`
	Page         int         `json:"page"`
	PageSize     int         `json:"page_size"`
}

// DefaultViewParams returns the initial view state.
func DefaultViewParams() ViewParams {
	return ViewParams{
		SortField: SortByDate,
		SortDir:   SortAsc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// Filter derives the store-side filter from the current parameters.
// Search is deliberately absent: it is applied client-side to the
// fetched page and never affects Total or pagination.
func (p ViewParams) Filter() *EventFilter {
	if p.FilterStatus == "" && p.FilterPlace == "" {
		return nil
	}
	return &EventFilter{Status: p.FilterStatus, Place: p.FilterPlace}
}

// Sort derives the store-side sort from the current parameters.
func (p ViewParams) Sort() *EventSort {
	return &EventSort{Field: p.SortField, Dir: p.SortDir}
}

// ViewResult is a rendered snapshot of the events view: the visible rows
// after the client-side search pass, optional groups, and pagination state.
type ViewResult struct {
	Events     []Event      `json:"events"`
	Groups     []EventGroup `json:"groups"`
	Total      int          `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
}

// Preferences is the persisted subset of the view parameters.
type Preferences struct {
	SortField    SortField   `json:"sort_field"`
	SortDir      SortDir     `json:"sort_dir"`
	FilterStatus EventStatus `json:"filter_status"`
	GroupBy      GroupKey    `json:"group_by"`
}

// DefaultPreferences returns the documented defaults used when no prior
// save exists or the stored record is unusable.
func DefaultPreferences() Preferences {
	return Preferences{
		SortField: SortByDate,
		SortDir:   SortAsc,
	}
}

// Normalize replaces unrecognized values with their defaults, so a corrupt
// record behaves exactly like a missing one, field by field.
func (p Preferences) Normalize() Preferences {
	def := DefaultPreferences()
	if !p.SortField.Valid() {
		p.SortField = def.SortField
	}
	if !p.SortDir.Valid() {
		p.SortDir = def.SortDir
	}
	if p.FilterStatus != "" && !p.FilterStatus.Valid() {
		p.FilterStatus = def.FilterStatus
	}
	if !p.GroupBy.Valid() {
		p.GroupBy = def.GroupBy
	}
	return p
}

// PreferenceRepository persists view preferences across restarts.
// Load returns defaults (not an error) when no record exists for profile.
type PreferenceRepository interface {
	Load(ctx context.Context, profile string) (Preferences, error)
	Save(ctx context.Context, profile string, prefs Preferences) error
}
