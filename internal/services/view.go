package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventboard/internal/domain"
	"eventboard/internal/metrics"
)

// DefaultDebounce is how long parameter changes are coalesced before a
// query is issued.
const DefaultDebounce = 300 * time.Millisecond

// ViewControllerOptions configures a ViewController.
type ViewControllerOptions struct {
	// Debounce overrides DefaultDebounce; tests use a short window.
	Debounce time.Duration
	// Profile names the preference record to load and save.
	Profile string
	// OnResult, if set, is called with every new rendered snapshot.
	OnResult func(domain.ViewResult)
}

// ViewController owns the user-adjustable view parameters and keeps the
// rendered result in sync with them.
//
// Filter, sort, page, and size changes are debounced and then issued as a
// single query. Queries follow switch-latest semantics: each debounce fire
// bumps a generation counter, and a response carrying a stale generation is
// discarded on arrival rather than aborted mid-flight. Only the newest
// query's result ever reaches the rendered snapshot.
//
// Search and grouping are client-side: changing them re-derives the
// rendered rows from the last fetched page without touching the store.
type ViewController struct {
	querier *QueryService
	prefs   domain.PreferenceRepository
	logger  *slog.Logger

	debounce time.Duration
	profile  string
	onResult func(domain.ViewResult)

	mu          sync.Mutex
	ctx         context.Context
	params      domain.ViewParams
	timer       *time.Timer
	gen         uint64
	queryNeeded bool
	prefsDirty  bool
	raw         domain.EventPage
	result      domain.ViewResult
}

// NewViewController wires the controller. Call Start before mutating
// parameters.
func NewViewController(querier *QueryService, prefs domain.PreferenceRepository, logger *slog.Logger, opts ViewControllerOptions) *ViewController {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Profile == "" {
		opts.Profile = "default"
	}
	return &ViewController{
		querier:  querier,
		prefs:    prefs,
		logger:   logger,
		debounce: opts.Debounce,
		profile:  opts.Profile,
		onResult: opts.OnResult,
		params:   domain.DefaultViewParams(),
	}
}

// Start restores the persisted preferences (defaults when absent or
// unreadable) and schedules the initial query. The initial load goes
// through the same debounce window as any other parameter change.
func (c *ViewController) Start(ctx context.Context) {
	prefs, err := c.prefs.Load(ctx, c.profile)
	if err != nil {
		c.logger.Warn("load preferences, using defaults", "err", err)
		prefs = domain.DefaultPreferences()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctx = ctx
	c.params.SortField = prefs.SortField
	c.params.SortDir = prefs.SortDir
	c.params.FilterStatus = prefs.FilterStatus
	c.params.GroupBy = prefs.GroupBy
	c.queryNeeded = true
	c.scheduleLocked()
}

// Stop cancels any pending debounce timer. In-flight queries finish on
// their own and are discarded by the generation check if superseded.
func (c *ViewController) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Params returns a snapshot of the current view parameters.
func (c *ViewController) Params() domain.ViewParams {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.params
}

// Result returns the most recent rendered snapshot.
func (c *ViewController) Result() domain.ViewResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// SetFilterPlace updates the place filter. Resets to page 1.
func (c *ViewController) SetFilterPlace(place string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params.FilterPlace == place {
		return
	}
	c.params.FilterPlace = place
	c.params.Page = 1
	c.queryNeeded = true
	c.scheduleLocked()
}

// SetFilterStatus updates the status filter. Resets to page 1 and marks
// the preferences for persistence.
func (c *ViewController) SetFilterStatus(status domain.EventStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params.FilterStatus == status {
		return
	}
	c.params.FilterStatus = status
	c.params.Page = 1
	c.queryNeeded = true
	c.prefsDirty = true
	c.scheduleLocked()
}

// SetFilterRange updates the date-range bounds. They are carried on the
// parameters but not applied to the store predicate; the change still
// resets the page and re-queries like any other filter edit.
func (c *ViewController) SetFilterRange(from, to *time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params.FilterFrom = from
	c.params.FilterTo = to
	c.params.Page = 1
	c.queryNeeded = true
	c.scheduleLocked()
}

// SetSearch updates the free-text search and re-renders from the cached
// page. No store round-trip: search never affects Total or pagination.
func (c *ViewController) SetSearch(term string) {
	c.mu.Lock()
	if c.params.Search == term {
		c.mu.Unlock()
		return
	}
	c.params.Search = term
	res := c.rerenderLocked()
	c.mu.Unlock()
	c.notify(res)
}

// SetGroupBy updates the grouping key, re-renders the cached page, and
// marks the preferences for persistence.
func (c *ViewController) SetGroupBy(key domain.GroupKey) {
	c.mu.Lock()
	if c.params.GroupBy == key {
		c.mu.Unlock()
		return
	}
	c.params.GroupBy = key
	res := c.rerenderLocked()
	c.prefsDirty = true
	c.scheduleLocked()
	c.mu.Unlock()
	c.notify(res)
}

// Sort applies a header click: clicking the current field flips the
// direction, a new field sorts ascending. Resets to page 1 and marks the
// preferences for persistence.
func (c *ViewController) Sort(field domain.SortField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.params.SortField == field {
		if c.params.SortDir == domain.SortAsc {
			c.params.SortDir = domain.SortDesc
		} else {
			c.params.SortDir = domain.SortAsc
		}
	} else {
		c.params.SortField = field
		c.params.SortDir = domain.SortAsc
	}
	c.params.Page = 1
	c.queryNeeded = true
	c.prefsDirty = true
	c.scheduleLocked()
}

// NextPage advances one page, clamped to the last known page count.
func (c *ViewController) NextPage() {
	c.setPage(func(page, totalPages int) int { return page + 1 })
}

// PrevPage goes back one page, clamped to 1.
func (c *ViewController) PrevPage() {
	c.setPage(func(page, totalPages int) int { return page - 1 })
}

func (c *ViewController) setPage(next func(page, totalPages int) int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	upper := c.result.TotalPages
	if upper < 1 {
		upper = 1
	}
	page := next(c.params.Page, upper)
	if page < 1 {
		page = 1
	}
	if page > upper {
		page = upper
	}
	if page == c.params.Page {
		return
	}
	c.params.Page = page
	c.queryNeeded = true
	c.scheduleLocked()
}

// SetPageSize changes the page size. Values below 1 are ignored.
func (c *ViewController) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size < 1 || size == c.params.PageSize {
		return
	}
	c.params.PageSize = size
	c.queryNeeded = true
	c.scheduleLocked()
}

// Invalidate forces a re-query of the current page, e.g. after a mutation
// through the store. Resets to page 1 like the original add/update flows.
func (c *ViewController) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.params.Page = 1
	c.queryNeeded = true
	c.scheduleLocked()
}

// rerenderLocked re-derives the rendered snapshot from the cached raw page
// and returns it. Callers notify after releasing the lock.
func (c *ViewController) rerenderLocked() domain.ViewResult {
	c.result = deriveResult(c.raw, c.params)
	return c.result
}

// scheduleLocked restarts the debounce timer; rapid successive edits
// collapse into a single fire.
func (c *ViewController) scheduleLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.fire)
}

// fire runs once the debounce window settles: persists dirty preferences,
// then issues the query for the current parameters under a fresh
// generation.
func (c *ViewController) fire() {
	c.mu.Lock()
	ctx := c.ctx
	params := c.params
	dirty := c.prefsDirty
	needed := c.queryNeeded
	c.prefsDirty = false
	c.queryNeeded = false
	var gen uint64
	if needed {
		c.gen++
		gen = c.gen
	}
	c.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}

	if dirty {
		prefs := domain.Preferences{
			SortField:    params.SortField,
			SortDir:      params.SortDir,
			FilterStatus: params.FilterStatus,
			GroupBy:      params.GroupBy,
		}
		if err := c.prefs.Save(ctx, c.profile, prefs); err != nil {
			c.logger.Warn("save preferences", "err", err)
		}
	}

	if !needed {
		return
	}

	page, err := c.querier.Fetch(ctx, params)
	if err != nil {
		c.logger.Error("view query failed", "err", err)
		return
	}

	c.mu.Lock()
	if gen != c.gen {
		// A newer query was issued while this one was in flight; its
		// result must not overwrite the newer one's.
		metrics.StaleResultsDiscarded.Inc()
		c.mu.Unlock()
		return
	}
	c.raw = page
	c.result = deriveResult(page, c.params)
	res := c.result
	c.mu.Unlock()
	c.notify(res)
}

func (c *ViewController) notify(res domain.ViewResult) {
	if c.onResult != nil {
		c.onResult(res)
	}
}
