package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusPlanned   EventStatus = "planned"
	StatusCanceled  EventStatus = "canceled"
	StatusCompleted EventStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// ParticipantRole is the role a participant plays in an event.
type ParticipantRole string

const (
	RoleAttendee  ParticipantRole = "attendee"
	RoleSpeaker   ParticipantRole = "speaker"
	RoleOrganizer ParticipantRole = "organizer"
)

// Valid reports whether r is one of the known roles.
func (r ParticipantRole) Valid() bool {
	switch r {
	case RoleAttendee, RoleSpeaker, RoleOrganizer:
		return true
	}
	return false
}

// Participant is a member of exactly one event. It has no identity of its
// own beyond its position within the owning event's participant list.
type Participant struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  ParticipantRole `json:"role"`
}

// Event is a dated, located, status-tagged record owning its participants.
type Event struct {
	ID           int           `json:"id"`
	Date         time.Time     `json:"date"`
	Place        string        `json:"place"`
	Status       EventStatus   `json:"status"`
	Participants []Participant `json:"participants"`
}

// EventDraft carries the caller-supplied fields for a new event.
// ID and participants are assigned by the store.
type EventDraft struct {
	Date   time.Time
	Place  string
	Status EventStatus
}

// EventUpdate is a partial update; nil fields are left unchanged.
type EventUpdate struct {
	Date   *time.Time
	Place  *string
	Status *EventStatus
}

// EventRepository is the single owner of event data. All reads and
// mutations go through it.
type EventRepository interface {
	Query(ctx context.Context, page, pageSize int, sort *EventSort, filter *EventFilter) (EventPage, error)
	GetParticipants(ctx context.Context, eventID int) ([]Participant, error)
	AddEvent(ctx context.Context, draft EventDraft) (Event, error)
	UpdateEvent(ctx context.Context, eventID int, update EventUpdate) (Event, error)
	AddParticipant(ctx context.Context, eventID int, p Participant) (Participant, error)
	DeleteParticipant(ctx context.Context, eventID int, index int) error
}
