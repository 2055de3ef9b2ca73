// Package controllers holds the HTTP handlers for the events API.
package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/services"
)

// EventController serves the events list, export, and mutation endpoints.
type EventController struct {
	Logger *slog.Logger
	Repo   domain.EventRepository
	Query  *services.QueryService
}

func NewEventController(logger *slog.Logger, repo domain.EventRepository, query *services.QueryService) *EventController {
	return &EventController{
		Logger: logger,
		Repo:   repo,
		Query:  query,
	}
}

// viewParamsFromRequest assembles the view parameters for a stateless list
// or export request. Unknown sort/group/status values fall back to the
// documented defaults rather than erroring.
func viewParamsFromRequest(r *http.Request) domain.ViewParams {
	params := domain.DefaultViewParams()
	pag := helpers.ParsePagination(r)
	params.Page = pag.Page
	params.PageSize = pag.PageSize

	q := r.URL.Query()
	if f := domain.SortField(q.Get("sort")); f.Valid() {
		params.SortField = f
	}
	if d := domain.SortDir(q.Get("dir")); d.Valid() {
		params.SortDir = d
	}
	if s := domain.EventStatus(q.Get("status")); s.Valid() {
		params.FilterStatus = s
	}
	params.FilterPlace = q.Get("place")
	params.Search = q.Get("search")
	if g := domain.GroupKey(q.Get("group_by")); g.Valid() {
		params.GroupBy = g
	}
	return params
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events []domain.Event         `json:"events"`
	Groups []domain.EventGroup    `json:"groups"`
	Meta   helpers.PaginationMeta `json:"meta"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns one page of events. Status and place filters are applied store-side and shape total/pagination; search filters the returned page only and leaves total untouched. Groups are computed over the visible rows when group_by is set.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 25, max 100)"
// @Param sort query string false "Sort field: date or place" Enums(date, place)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param status query string false "Exact status filter" Enums(planned, canceled, completed)
// @Param place query string false "Place substring filter (case-sensitive)"
// @Param search query string false "Free-text search over the page (place, status, DD.MM.YYYY date)"
// @Param group_by query string false "Group visible rows by field" Enums(status, place)
// @Success 200 {object} helpers.APIResponse "data contains events, groups, and pagination meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := viewParamsFromRequest(r)
	res, err := c.Query.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Events: res.Events,
		Groups: res.Groups,
		Meta:   helpers.NewPaginationMeta(res.Page, res.PageSize, res.Total),
	})
}

// ExportCSV godoc
// @Summary Export the visible page as CSV
// @Description Renders the same page GET /events would return as "DD.MM.YYYY,place,status,participantCount" lines without a header row.
// @Tags events
// @Produce text/csv
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 25, max 100)"
// @Param sort query string false "Sort field: date or place" Enums(date, place)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param status query string false "Exact status filter" Enums(planned, canceled, completed)
// @Param place query string false "Place substring filter (case-sensitive)"
// @Param search query string false "Free-text search over the page"
// @Success 200 {string} string "CSV lines"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/export.csv [get]
func (c *EventController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	params := viewParamsFromRequest(r)
	res, err := c.Query.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(services.EventsCSV(res.Events)))
}

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	Date   *time.Time         `json:"date"`
	Place  string             `json:"place"`
	Status domain.EventStatus `json:"status"`
}

// Validate implements Validator. Dates are checked here at the API
// boundary; the store never validates dates itself.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Place == "" {
		errs = append(errs, "place is required")
	}
	if !c.Status.Valid() {
		errs = append(errs, "status must be planned, canceled, or completed")
	}
	if c.Date == nil {
		errs = append(errs, "date is required")
	} else if !c.Date.After(time.Now()) {
		errs = append(errs, "date must be in the future")
	}
	return errs
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with no participants. The id is assigned by the store. The date must lie in the future.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Repo.AddEvent(r.Context(), domain.EventDraft{
		Date:   *req.Date,
		Place:  req.Place,
		Status: req.Status,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}.
// All fields optional; omitted fields are unchanged.
type UpdateEventRequest struct {
	Date   *time.Time          `json:"date"`
	Place  *string             `json:"place"`
	Status *domain.EventStatus `json:"status"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Place != nil && *u.Place == "" {
		errs = append(errs, "place must not be empty")
	}
	if u.Status != nil && !u.Status.Valid() {
		errs = append(errs, "status must be planned, canceled, or completed")
	}
	return errs
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the provided fields into the event; omitted fields are left unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Repo.UpdateEvent(r.Context(), eventID, domain.EventUpdate{
		Date:   req.Date,
		Place:  req.Place,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetParticipants godoc
// @Summary List an event's participants
// @Tags participants
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the participant list"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [get]
func (c *EventController) GetParticipants(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	participants, err := c.Repo.GetParticipants(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participants)
}

// AddParticipantRequest is the request body for POST /events/{eventID}/participants.
type AddParticipantRequest struct {
	Name  string                 `json:"name"`
	Email string                 `json:"email"`
	Role  domain.ParticipantRole `json:"role"`
}

// Validate implements Validator.
func (a AddParticipantRequest) Validate() []string {
	var errs []string
	if a.Name == "" {
		errs = append(errs, "name is required")
	}
	if a.Email == "" {
		errs = append(errs, "email is required")
	}
	if !a.Role.Valid() {
		errs = append(errs, "role must be attendee, speaker, or organizer")
	}
	return errs
}

// AddParticipant godoc
// @Summary Add a participant to an event
// @Tags participants
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param participant body AddParticipantRequest true "Participant data"
// @Success 201 {object} helpers.APIResponse "data contains the added participant"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants [post]
func (c *EventController) AddParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req AddParticipantRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	p, err := c.Repo.AddParticipant(r.Context(), eventID, domain.Participant{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, p)
}

// DeleteParticipant godoc
// @Summary Remove a participant by position
// @Description Removes the participant at the given zero-based index in the event's participant list.
// @Tags participants
// @Produce json
// @Param eventID path int true "Event ID"
// @Param index path int true "Zero-based participant index"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/participants/{index} [delete]
func (c *EventController) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "index must be a non-negative integer")
		return
	}
	if err := c.Repo.DeleteParticipant(r.Context(), eventID, index); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event or participant not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}

// pathID parses an integer path value, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id < 1 {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
