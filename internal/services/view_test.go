package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 20 * time.Millisecond

// recordedQuery captures one Query call against the fake repo.
type recordedQuery struct {
	Page     int
	PageSize int
	Sort     *domain.EventSort
	Filter   *domain.EventFilter
}

// fakeEventRepo is a scriptable EventRepository: respond decides, per
// call index, what page comes back and how long the call takes.
type fakeEventRepo struct {
	mu      sync.Mutex
	queries []recordedQuery
	respond func(call int) (domain.EventPage, time.Duration)
}

func (f *fakeEventRepo) Query(ctx context.Context, page, pageSize int, sort *domain.EventSort, filter *domain.EventFilter) (domain.EventPage, error) {
	f.mu.Lock()
	call := len(f.queries)
	f.queries = append(f.queries, recordedQuery{Page: page, PageSize: pageSize, Sort: sort, Filter: filter})
	f.mu.Unlock()

	res, delay := f.respond(call)
	if delay > 0 {
		select {
		case <-ctx.Done():
			return domain.EventPage{}, ctx.Err()
		case <-time.After(delay):
		}
	}
	return res, nil
}

func (f *fakeEventRepo) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func (f *fakeEventRepo) lastQuery() recordedQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

func (f *fakeEventRepo) GetParticipants(ctx context.Context, eventID int) ([]domain.Participant, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) AddEvent(ctx context.Context, draft domain.EventDraft) (domain.Event, error) {
	return domain.Event{}, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, eventID int, update domain.EventUpdate) (domain.Event, error) {
	return domain.Event{}, domain.ErrNotFound
}

func (f *fakeEventRepo) AddParticipant(ctx context.Context, eventID int, p domain.Participant) (domain.Participant, error) {
	return domain.Participant{}, domain.ErrNotFound
}

func (f *fakeEventRepo) DeleteParticipant(ctx context.Context, eventID int, index int) error {
	return domain.ErrNotFound
}

// fakePrefRepo is an in-memory PreferenceRepository recording saves.
type fakePrefRepo struct {
	mu     sync.Mutex
	stored domain.Preferences
	has    bool
	saves  []domain.Preferences
}

func (f *fakePrefRepo) Load(ctx context.Context, profile string) (domain.Preferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.has {
		return domain.DefaultPreferences(), nil
	}
	return f.stored.Normalize(), nil
}

func (f *fakePrefRepo) Save(ctx context.Context, profile string, prefs domain.Preferences) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = prefs
	f.has = true
	f.saves = append(f.saves, prefs)
	return nil
}

func (f *fakePrefRepo) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestView wires a controller with a short debounce and a result
// channel, starts it, and waits for the initial load to settle.
func newTestView(t *testing.T, repo *fakeEventRepo, prefs *fakePrefRepo) (*ViewController, chan domain.ViewResult) {
	t.Helper()
	results := make(chan domain.ViewResult, 32)
	vc := NewViewController(NewQueryService(repo), prefs, testLogger(), ViewControllerOptions{
		Debounce: testDebounce,
		OnResult: func(res domain.ViewResult) { results <- res },
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	t.Cleanup(vc.Stop)
	vc.Start(ctx)
	awaitResult(t, results)
	return vc, results
}

func awaitResult(t *testing.T, results chan domain.ViewResult) domain.ViewResult {
	t.Helper()
	select {
	case res := <-results:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a rendered result")
		return domain.ViewResult{}
	}
}

func assertNoResult(t *testing.T, results chan domain.ViewResult, within time.Duration) {
	t.Helper()
	select {
	case res := <-results:
		t.Fatalf("unexpected result: %+v", res)
	case <-time.After(within):
	}
}

func pageOf(total int, events ...domain.Event) domain.EventPage {
	return domain.EventPage{Data: events, Total: total}
}

func TestViewController_StartAppliesPersistedPreferences(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(0), 0
	}}
	prefs := &fakePrefRepo{
		has: true,
		stored: domain.Preferences{
			SortField:    domain.SortByPlace,
			SortDir:      domain.SortDesc,
			FilterStatus: domain.StatusCompleted,
			GroupBy:      domain.GroupByStatus,
		},
	}

	vc, _ := newTestView(t, repo, prefs)

	params := vc.Params()
	assert.Equal(t, domain.SortByPlace, params.SortField)
	assert.Equal(t, domain.SortDesc, params.SortDir)
	assert.Equal(t, domain.StatusCompleted, params.FilterStatus)
	assert.Equal(t, domain.GroupByStatus, params.GroupBy)

	q := repo.lastQuery()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, domain.DefaultPageSize, q.PageSize)
	require.NotNil(t, q.Sort)
	assert.Equal(t, domain.SortByPlace, q.Sort.Field)
	require.NotNil(t, q.Filter)
	assert.Equal(t, domain.StatusCompleted, q.Filter.Status)
}

func TestViewController_DebounceCoalescesRapidEdits(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(0), 0
	}}
	vc, results := newTestView(t, repo, &fakePrefRepo{})
	before := repo.queryCount()

	// Typing "Ber" one keystroke at a time, well inside the window.
	vc.SetFilterPlace("B")
	vc.SetFilterPlace("Be")
	vc.SetFilterPlace("Ber")
	awaitResult(t, results)

	assert.Equal(t, before+1, repo.queryCount(), "rapid edits collapse into one query")
	q := repo.lastQuery()
	require.NotNil(t, q.Filter)
	assert.Equal(t, "Ber", q.Filter.Place)
}

func TestViewController_SwitchLatestDiscardsStaleResponse(t *testing.T) {
	repo := &fakeEventRepo{}
	repo.respond = func(call int) (domain.EventPage, time.Duration) {
		switch call {
		case 1: // superseded query: slow, distinctive total
			return pageOf(111), 300 * time.Millisecond
		case 2: // newest query: fast
			return pageOf(222), 0
		default:
			return pageOf(0), 0
		}
	}
	vc, results := newTestView(t, repo, &fakePrefRepo{})

	vc.SetFilterPlace("X")
	time.Sleep(2 * testDebounce) // let the slow query launch
	vc.SetFilterPlace("XY")

	res := awaitResult(t, results)
	assert.Equal(t, 222, res.Total)

	// The slow response lands well after this point and must be dropped.
	assertNoResult(t, results, 400*time.Millisecond)
	assert.Equal(t, 222, vc.Result().Total)
}

func TestViewController_SortTogglesAndResets(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(100), 0
	}}
	vc, results := newTestView(t, repo, &fakePrefRepo{})

	vc.NextPage()
	awaitResult(t, results)
	require.Equal(t, 2, vc.Params().Page)

	vc.Sort(domain.SortByPlace)
	awaitResult(t, results)
	params := vc.Params()
	assert.Equal(t, domain.SortByPlace, params.SortField)
	assert.Equal(t, domain.SortAsc, params.SortDir, "new field sorts ascending")
	assert.Equal(t, 1, params.Page, "sorting restarts from page 1")

	vc.Sort(domain.SortByPlace)
	awaitResult(t, results)
	assert.Equal(t, domain.SortDesc, vc.Params().SortDir, "same field flips direction")

	vc.Sort(domain.SortByDate)
	awaitResult(t, results)
	params = vc.Params()
	assert.Equal(t, domain.SortByDate, params.SortField)
	assert.Equal(t, domain.SortAsc, params.SortDir)
}

func TestViewController_FilterChangeResetsPage(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(100), 0
	}}
	vc, results := newTestView(t, repo, &fakePrefRepo{})

	vc.NextPage()
	awaitResult(t, results)
	require.Equal(t, 2, vc.Params().Page)

	vc.SetFilterPlace("Berlin")
	awaitResult(t, results)
	assert.Equal(t, 1, vc.Params().Page)
}

func TestViewController_PageNavigationClamps(t *testing.T) {
	// 30 events at page size 25: exactly two pages.
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(30), 0
	}}
	vc, results := newTestView(t, repo, &fakePrefRepo{})

	vc.PrevPage()
	assert.Equal(t, 1, vc.Params().Page, "already at the lower bound")

	vc.NextPage()
	awaitResult(t, results)
	assert.Equal(t, 2, vc.Params().Page)

	vc.NextPage()
	assert.Equal(t, 2, vc.Params().Page, "clamped at ceil(total/pageSize)")

	vc.PrevPage()
	awaitResult(t, results)
	assert.Equal(t, 1, vc.Params().Page)
}

func TestViewController_PersistsSettledPreferenceChanges(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(0), 0
	}}
	prefs := &fakePrefRepo{}
	vc, results := newTestView(t, repo, prefs)
	require.Equal(t, 0, prefs.saveCount(), "startup does not write preferences")

	vc.Sort(domain.SortByPlace)
	awaitResult(t, results)
	require.Eventually(t, func() bool { return prefs.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.SortByPlace, prefs.stored.SortField)
	assert.Equal(t, domain.SortAsc, prefs.stored.SortDir)

	vc.SetFilterStatus(domain.StatusCanceled)
	awaitResult(t, results)
	require.Eventually(t, func() bool { return prefs.saveCount() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.StatusCanceled, prefs.stored.FilterStatus)

	// Place filter is session-scoped: it re-queries but never persists.
	vc.SetFilterPlace("Berlin")
	awaitResult(t, results)
	time.Sleep(2 * testDebounce)
	assert.Equal(t, 2, prefs.saveCount())
}

func TestViewController_SearchRerendersWithoutQuery(t *testing.T) {
	events := fixtureEvents()
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(3, events...), 0
	}}
	vc, results := newTestView(t, repo, &fakePrefRepo{})
	before := repo.queryCount()

	vc.SetSearch("hamburg")
	res := awaitResult(t, results)
	assert.Equal(t, []int{3}, eventIDs(res.Events))
	assert.Equal(t, 3, res.Total, "search never changes the filtered total")
	assert.Equal(t, before, repo.queryCount(), "search is client-side")

	vc.SetSearch("")
	res = awaitResult(t, results)
	assert.Len(t, res.Events, 3)
	assert.Equal(t, before, repo.queryCount())
}

func TestViewController_GroupByRerendersAndPersists(t *testing.T) {
	events := fixtureEvents()
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(3, events...), 0
	}}
	prefs := &fakePrefRepo{}
	vc, results := newTestView(t, repo, prefs)
	before := repo.queryCount()

	vc.SetGroupBy(domain.GroupByPlace)
	res := awaitResult(t, results)
	require.Len(t, res.Groups, 2)
	assert.Equal(t, "Berlin", res.Groups[0].Key)
	assert.Equal(t, 2, res.Groups[0].Sum)
	assert.Equal(t, "Hamburg", res.Groups[1].Key)
	assert.Equal(t, 5, res.Groups[1].Sum)

	require.Eventually(t, func() bool { return prefs.saveCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, domain.GroupByPlace, prefs.stored.GroupBy)
	assert.Equal(t, before, repo.queryCount(), "grouping is client-side")
}

func TestViewController_PreferenceRoundTripAcrossRestart(t *testing.T) {
	repo := &fakeEventRepo{respond: func(int) (domain.EventPage, time.Duration) {
		return pageOf(0), 0
	}}
	prefs := &fakePrefRepo{}

	vc, results := newTestView(t, repo, prefs)
	vc.Sort(domain.SortByPlace)
	awaitResult(t, results)
	vc.SetGroupBy(domain.GroupByStatus)
	awaitResult(t, results)
	require.Eventually(t, func() bool { return prefs.saveCount() >= 2 }, time.Second, 5*time.Millisecond)
	vc.Stop()

	// A fresh controller over the same preference store resumes the view.
	vc2, _ := newTestView(t, repo, prefs)
	params := vc2.Params()
	assert.Equal(t, domain.SortByPlace, params.SortField)
	assert.Equal(t, domain.SortAsc, params.SortDir)
	assert.Equal(t, domain.GroupByStatus, params.GroupBy)
}
