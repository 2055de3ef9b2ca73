package memory

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// threeEvents is the fixture used across query tests: two Berlin events and
// one Hamburg event with differing dates, statuses, and participant counts.
func threeEvents() []domain.Event {
	return []domain.Event{
		{ID: 1, Date: date(2024, time.January, 10), Place: "Berlin", Status: domain.StatusPlanned,
			Participants: []domain.Participant{
				{Name: "Ada", Email: "ada@example.com", Role: domain.RoleSpeaker},
				{Name: "Ben", Email: "ben@example.com", Role: domain.RoleAttendee},
			}},
		{ID: 2, Date: date(2024, time.February, 5), Place: "Berlin", Status: domain.StatusCompleted,
			Participants: []domain.Participant{}},
		{ID: 3, Date: date(2024, time.January, 1), Place: "Hamburg", Status: domain.StatusPlanned,
			Participants: []domain.Participant{
				{Name: "Cleo", Email: "cleo@example.com", Role: domain.RoleOrganizer},
				{Name: "Dan", Email: "dan@example.com", Role: domain.RoleAttendee},
				{Name: "Eva", Email: "eva@example.com", Role: domain.RoleAttendee},
				{Name: "Finn", Email: "finn@example.com", Role: domain.RoleAttendee},
				{Name: "Gus", Email: "gus@example.com", Role: domain.RoleAttendee},
			}},
	}
}

func newTestRepo(events []domain.Event) *EventRepository {
	repo := NewEventRepository(Options{}) // zero latency
	repo.Seed(events)
	return repo
}

func ids(events []domain.Event) []int {
	out := make([]int, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestEventRepository_Query(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		page      int
		pageSize  int
		sort      *domain.EventSort
		filter    *domain.EventFilter
		wantIDs   []int
		wantTotal int
	}{
		{
			name:     "place filter with date ascending",
			page:     1,
			pageSize: 10,
			sort:     &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc},
			filter:   &domain.EventFilter{Place: "Berlin"},
			// Hamburg filtered out; remaining ordered by date.
			wantIDs:   []int{1, 2},
			wantTotal: 2,
		},
		{
			name:      "status filter",
			page:      1,
			pageSize:  10,
			sort:      &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc},
			filter:    &domain.EventFilter{Status: domain.StatusPlanned},
			wantIDs:   []int{3, 1},
			wantTotal: 2,
		},
		{
			name:      "status and place combined",
			page:      1,
			pageSize:  10,
			sort:      &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc},
			filter:    &domain.EventFilter{Status: domain.StatusPlanned, Place: "Berlin"},
			wantIDs:   []int{1},
			wantTotal: 1,
		},
		{
			name:      "place substring is case-sensitive",
			page:      1,
			pageSize:  10,
			filter:    &domain.EventFilter{Place: "berlin"},
			wantIDs:   []int{},
			wantTotal: 0,
		},
		{
			name:      "date descending",
			page:      1,
			pageSize:  10,
			sort:      &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortDesc},
			wantIDs:   []int{2, 1, 3},
			wantTotal: 3,
		},
		{
			name:      "place ascending",
			page:      1,
			pageSize:  10,
			sort:      &domain.EventSort{Field: domain.SortByPlace, Dir: domain.SortAsc},
			wantIDs:   []int{1, 2, 3},
			wantTotal: 3,
		},
		{
			name:     "second page slice",
			page:     2,
			pageSize: 2,
			sort:     &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc},
			wantIDs:  []int{2},
			// Total counts matches before pagination.
			wantTotal: 3,
		},
		{
			name:      "page past the end is empty",
			page:      5,
			pageSize:  10,
			sort:      &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc},
			wantIDs:   []int{},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(threeEvents())
			got, err := repo.Query(ctx, tt.page, tt.pageSize, tt.sort, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, tt.wantIDs, ids(got.Data))
		})
	}
}

func TestEventRepository_Query_DescReversesAsc(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(threeEvents())

	asc, err := repo.Query(ctx, 1, 10, &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc}, nil)
	require.NoError(t, err)
	desc, err := repo.Query(ctx, 1, 10, &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortDesc}, nil)
	require.NoError(t, err)

	reversed := ids(desc.Data)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	assert.Equal(t, ids(asc.Data), reversed)
}

func TestEventRepository_Query_PagesReconstructFilteredSet(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewPCG(7, 7))
	repo := NewEventRepository(Options{})
	repo.Seed(GenerateEvents(rng, 57))

	sortBy := &domain.EventSort{Field: domain.SortByDate, Dir: domain.SortAsc}
	filter := &domain.EventFilter{Place: "Berlin"}

	full, err := repo.Query(ctx, 1, 1000, sortBy, filter)
	require.NoError(t, err)

	const pageSize = 10
	var collected []int
	totalPages := (full.Total + pageSize - 1) / pageSize
	for page := 1; page <= totalPages; page++ {
		res, err := repo.Query(ctx, page, pageSize, sortBy, filter)
		require.NoError(t, err)
		require.Equal(t, full.Total, res.Total, "total must be invariant to page")
		require.LessOrEqual(t, len(res.Data), pageSize)
		collected = append(collected, ids(res.Data)...)
	}
	assert.Equal(t, ids(full.Data), collected)
}

func TestEventRepository_AddEvent(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(threeEvents())

	created, err := repo.AddEvent(ctx, domain.EventDraft{
		Date:   date(2024, time.March, 1),
		Place:  "Köln",
		Status: domain.StatusPlanned,
	})
	require.NoError(t, err)
	// Ids are count-based: three events present, so the new one gets 4.
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "Köln", created.Place)
	assert.Empty(t, created.Participants)

	res, err := repo.Query(ctx, 1, 10, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Total)
}

func TestEventRepository_UpdateEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("partial merge", func(t *testing.T) {
		repo := newTestRepo(threeEvents())
		newStatus := domain.StatusCanceled
		updated, err := repo.UpdateEvent(ctx, 1, domain.EventUpdate{Status: &newStatus})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, updated.Status)
		// Untouched fields survive the merge.
		assert.Equal(t, "Berlin", updated.Place)
		assert.Equal(t, date(2024, time.January, 10), updated.Date)
		assert.Len(t, updated.Participants, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := newTestRepo(threeEvents())
		newPlace := "Bonn"
		_, err := repo.UpdateEvent(ctx, 99, domain.EventUpdate{Place: &newPlace})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventRepository_GetParticipants(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(threeEvents())

	ps, err := repo.GetParticipants(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, ps, 5)

	_, err = repo.GetParticipants(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_AddParticipant(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(threeEvents())

	p := domain.Participant{Name: "Hana", Email: "hana@example.com", Role: domain.RoleSpeaker}
	got, err := repo.AddParticipant(ctx, 2, p)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	ps, err := repo.GetParticipants(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, p, ps[0])

	_, err = repo.AddParticipant(ctx, 42, p)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEventRepository_DeleteParticipant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		eventID int
		index   int
		wantErr error
		wantLen int
	}{
		{name: "removes at index", eventID: 1, index: 0, wantLen: 1},
		{name: "unknown event", eventID: 42, index: 0, wantErr: domain.ErrNotFound},
		{name: "index out of range", eventID: 1, index: 5, wantErr: domain.ErrNotFound},
		{name: "negative index", eventID: 1, index: -1, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(threeEvents())
			err := repo.DeleteParticipant(ctx, tt.eventID, tt.index)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			ps, err := repo.GetParticipants(ctx, tt.eventID)
			require.NoError(t, err)
			assert.Len(t, ps, tt.wantLen)
			// Remaining participant shifted into the removed slot.
			assert.Equal(t, "Ben", ps[0].Name)
		})
	}
}

func TestEventRepository_QueryHonorsContext(t *testing.T) {
	repo := NewEventRepository(Options{ReadLatencyMin: 50 * time.Millisecond, ReadLatencyMax: 60 * time.Millisecond})
	repo.Seed(threeEvents())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := repo.Query(ctx, 1, 10, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerateEvents(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	events := GenerateEvents(rng, 100)
	require.Len(t, events, 100)
	for i, e := range events {
		assert.Equal(t, i+1, e.ID)
		assert.Contains(t, seedPlaces, e.Place)
		assert.True(t, e.Status.Valid())
		assert.GreaterOrEqual(t, len(e.Participants), 3)
		assert.LessOrEqual(t, len(e.Participants), 10)
		assert.Equal(t, 2024, e.Date.Year())
	}
}
