// Package memory provides the in-memory event store backing the events
// view. It simulates network latency on every operation so callers are
// forced through a real async boundary, like they would be against a
// remote backend.
package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"eventboard/internal/domain"
)

// Options tunes the simulated latency. Zero durations disable the delay,
// which is what tests use.
type Options struct {
	ReadLatencyMin time.Duration
	ReadLatencyMax time.Duration
	WriteLatency   time.Duration
	Rand           *rand.Rand
}

// DefaultOptions matches the mock backend contract: reads take a random
// 100-300ms, writes a fixed 200ms.
func DefaultOptions() Options {
	return Options{
		ReadLatencyMin: 100 * time.Millisecond,
		ReadLatencyMax: 300 * time.Millisecond,
		WriteLatency:   200 * time.Millisecond,
	}
}

type EventRepository struct {
	mu     sync.RWMutex
	events []domain.Event
	opts   Options
}

var _ domain.EventRepository = (*EventRepository)(nil)

// NewEventRepository returns an empty store with the given latency options.
func NewEventRepository(opts Options) *EventRepository {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &EventRepository{opts: opts}
}

// readDelay waits a random duration in [ReadLatencyMin, ReadLatencyMax],
// honoring context cancellation.
func (r *EventRepository) readDelay(ctx context.Context) error {
	d := r.opts.ReadLatencyMin
	if span := r.opts.ReadLatencyMax - r.opts.ReadLatencyMin; span > 0 {
		d += time.Duration(r.opts.Rand.Int64N(int64(span)))
	}
	return wait(ctx, d)
}

func (r *EventRepository) writeDelay(ctx context.Context) error {
	return wait(ctx, r.opts.WriteLatency)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (r *EventRepository) Query(ctx context.Context, page, pageSize int, sortBy *domain.EventSort, filter *domain.EventFilter) (domain.EventPage, error) {
	if err := r.readDelay(ctx); err != nil {
		return domain.EventPage{}, err
	}

	r.mu.RLock()
	matched := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if filter != nil {
			if filter.Status != "" && e.Status != filter.Status {
				continue
			}
			if filter.Place != "" && !strings.Contains(e.Place, filter.Place) {
				continue
			}
		}
		matched = append(matched, cloneEvent(e))
	}
	r.mu.RUnlock()

	if sortBy != nil {
		sortEvents(matched, *sortBy)
	}

	total := len(matched)
	start := (page - 1) * pageSize
	end := page * pageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return domain.EventPage{Data: matched[start:end], Total: total}, nil
}

// sortEvents orders events by the requested field: dates by instant,
// places lexicographically. Descending reverses the comparison.
func sortEvents(events []domain.Event, by domain.EventSort) {
	less := func(a, b domain.Event) bool { return a.Date.Before(b.Date) }
	if by.Field == domain.SortByPlace {
		less = func(a, b domain.Event) bool { return a.Place < b.Place }
	}
	sort.SliceStable(events, func(i, j int) bool {
		if by.Dir == domain.SortDesc {
			return less(events[j], events[i])
		}
		return less(events[i], events[j])
	})
}

func (r *EventRepository) GetParticipants(ctx context.Context, eventID int) ([]domain.Participant, error) {
	if err := r.readDelay(ctx); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.events {
		if e.ID == eventID {
			out := make([]domain.Participant, len(e.Participants))
			copy(out, e.Participants)
			return out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *EventRepository) AddEvent(ctx context.Context, draft domain.EventDraft) (domain.Event, error) {
	if err := r.writeDelay(ctx); err != nil {
		return domain.Event{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	// Count-based id assignment, kept as-is. Collides with existing ids if
	// event deletion is ever introduced; switching to max(id)+1 is a product
	// decision, not a drive-by fix.
	e := domain.Event{
		ID:           len(r.events) + 1,
		Date:         draft.Date,
		Place:        draft.Place,
		Status:       draft.Status,
		Participants: []domain.Participant{},
	}
	r.events = append(r.events, e)
	return cloneEvent(e), nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, eventID int, update domain.EventUpdate) (domain.Event, error) {
	if err := r.writeDelay(ctx); err != nil {
		return domain.Event{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID != eventID {
			continue
		}
		if update.Date != nil {
			r.events[i].Date = *update.Date
		}
		if update.Place != nil {
			r.events[i].Place = *update.Place
		}
		if update.Status != nil {
			r.events[i].Status = *update.Status
		}
		return cloneEvent(r.events[i]), nil
	}
	return domain.Event{}, domain.ErrNotFound
}

func (r *EventRepository) AddParticipant(ctx context.Context, eventID int, p domain.Participant) (domain.Participant, error) {
	if err := r.writeDelay(ctx); err != nil {
		return domain.Participant{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == eventID {
			r.events[i].Participants = append(r.events[i].Participants, p)
			return p, nil
		}
	}
	return domain.Participant{}, domain.ErrNotFound
}

func (r *EventRepository) DeleteParticipant(ctx context.Context, eventID int, index int) error {
	if err := r.writeDelay(ctx); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID != eventID {
			continue
		}
		ps := r.events[i].Participants
		if index < 0 || index >= len(ps) {
			return domain.ErrNotFound
		}
		r.events[i].Participants = append(ps[:index], ps[index+1:]...)
		return nil
	}
	return domain.ErrNotFound
}

// cloneEvent copies an event including its participant slice, so callers
// never share backing storage with the store.
func cloneEvent(e domain.Event) domain.Event {
	out := e
	out.Participants = make([]domain.Participant, len(e.Participants))
	copy(out.Participants, e.Participants)
	return out
}
