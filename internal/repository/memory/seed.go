package memory

import (
	"fmt"
	"math/rand/v2"
	"time"

	"eventboard/internal/domain"
)

var (
	seedPlaces   = []string{"Berlin", "München", "Hamburg", "Köln"}
	seedStatuses = []domain.EventStatus{domain.StatusPlanned, domain.StatusCanceled, domain.StatusCompleted}
	seedRoles    = []domain.ParticipantRole{domain.RoleAttendee, domain.RoleSpeaker, domain.RoleOrganizer}
)

const seedSuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Seed replaces the store contents with events. Intended for startup and
// tests; it is not part of the EventRepository contract.
func (r *EventRepository) Seed(events []domain.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = make([]domain.Event, 0, len(events))
	for _, e := range events {
		r.events = append(r.events, cloneEvent(e))
	}
}

// GenerateEvents produces n random demo events: 2024 dates, one of four
// places, a random status, and 3-10 participants each.
func GenerateEvents(rng *rand.Rand, n int) []domain.Event {
	events := make([]domain.Event, n)
	for i := range events {
		participants := make([]domain.Participant, rng.IntN(8)+3)
		for j := range participants {
			suffix := randomSuffix(rng, 5)
			participants[j] = domain.Participant{
				Name:  fmt.Sprintf("Participant %s", suffix),
				Email: fmt.Sprintf("email%s@example.com", suffix),
				Role:  seedRoles[rng.IntN(len(seedRoles))],
			}
		}
		events[i] = domain.Event{
			ID:           i + 1,
			Date:         time.Date(2024, time.Month(rng.IntN(12)+1), rng.IntN(28)+1, 0, 0, 0, 0, time.UTC),
			Place:        seedPlaces[rng.IntN(len(seedPlaces))],
			Status:       seedStatuses[rng.IntN(len(seedStatuses))],
			Participants: participants,
		}
	}
	return events
}

func randomSuffix(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = seedSuffixAlphabet[rng.IntN(len(seedSuffixAlphabet))]
	}
	return string(b)
}
