package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
	"eventboard/internal/services"
)

// ViewControllerFactory builds a view controller for a preference profile.
// Injected so the HTTP layer stays ignorant of debounce and store wiring.
type ViewControllerFactory func(profile string) *services.ViewController

// ViewSessionController manages uuid-keyed view sessions. Each session
// wraps one ViewController; parameter edits are debounced and queried
// asynchronously, so GET returns the most recently settled snapshot.
type ViewSessionController struct {
	Logger  *slog.Logger
	factory ViewControllerFactory
	baseCtx context.Context

	mu       sync.Mutex
	sessions map[string]*services.ViewController
}

func NewViewSessionController(logger *slog.Logger, baseCtx context.Context, factory ViewControllerFactory) *ViewSessionController {
	return &ViewSessionController{
		Logger:   logger,
		factory:  factory,
		baseCtx:  baseCtx,
		sessions: make(map[string]*services.ViewController),
	}
}

func (c *ViewSessionController) lookup(id string) (*services.ViewController, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	vc, ok := c.sessions[id]
	return vc, ok
}

// ViewSessionResponse is the session snapshot returned by the view endpoints.
type ViewSessionResponse struct {
	ViewID string            `json:"view_id"`
	Params domain.ViewParams `json:"params"`
	Result domain.ViewResult `json:"result"`
}

func sessionResponse(id string, vc *services.ViewController) ViewSessionResponse {
	return ViewSessionResponse{ViewID: id, Params: vc.Params(), Result: vc.Result()}
}

// CreateViewRequest is the request body for POST /views.
type CreateViewRequest struct {
	Profile string `json:"profile"`
}

// CreateView godoc
// @Summary Open a view session
// @Description Creates a view session restoring the profile's persisted sort/filter/grouping preferences and schedules the initial query. The result settles asynchronously; poll GET /views/{viewID}.
// @Tags views
// @Accept json
// @Produce json
// @Param view body CreateViewRequest false "Session options (profile defaults to \"default\")"
// @Success 201 {object} helpers.APIResponse "data contains the session snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /views [post]
func (c *ViewSessionController) CreateView(w http.ResponseWriter, r *http.Request) {
	var req CreateViewRequest
	if r.ContentLength > 0 {
		if !helpers.DecodeAndValidate(w, r, &req) {
			return
		}
	}
	if req.Profile == "" {
		req.Profile = "default"
	}

	id := uuid.NewString()
	vc := c.factory(req.Profile)
	vc.Start(c.baseCtx)

	c.mu.Lock()
	c.sessions[id] = vc
	c.mu.Unlock()

	c.Logger.Info("view session opened", "view_id", id, "profile", req.Profile)
	helpers.WriteJSONSuccess(w, http.StatusCreated, sessionResponse(id, vc))
}

// GetView godoc
// @Summary Read a view session's current snapshot
// @Tags views
// @Produce json
// @Param viewID path string true "View session ID"
// @Success 200 {object} helpers.APIResponse "data contains the session snapshot"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [get]
func (c *ViewSessionController) GetView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("viewID")
	vc, ok := c.lookup(id)
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view session not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessionResponse(id, vc))
}

// UpdateViewRequest is the request body for PATCH /views/{viewID}.
// Only the provided fields are applied.
type UpdateViewRequest struct {
	FilterPlace  *string    `json:"filter_place"`
	FilterStatus *string    `json:"filter_status"`
	FilterFrom   *time.Time `json:"filter_from"`
	FilterTo     *time.Time `json:"filter_to"`
	Search       *string    `json:"search"`
	GroupBy      *string    `json:"group_by"`
	PageSize     *int       `json:"page_size"`
}

// Validate implements Validator.
func (u UpdateViewRequest) Validate() []string {
	var errs []string
	if u.FilterStatus != nil && *u.FilterStatus != "" && !domain.EventStatus(*u.FilterStatus).Valid() {
		errs = append(errs, "filter_status must be planned, canceled, completed, or empty")
	}
	if u.GroupBy != nil && !domain.GroupKey(*u.GroupBy).Valid() {
		errs = append(errs, "group_by must be status, place, or empty")
	}
	if u.PageSize != nil && *u.PageSize < 1 {
		errs = append(errs, "page_size must be positive")
	}
	return errs
}

// UpdateView godoc
// @Summary Change a view session's parameters
// @Description Applies the provided parameter changes. Filter and size edits are debounced into a single re-query; search and grouping re-render the current page immediately. The response carries the parameters as applied; the result settles asynchronously.
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "View session ID"
// @Param params body UpdateViewRequest true "Parameter changes"
// @Success 200 {object} helpers.APIResponse "data contains the session snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [patch]
func (c *ViewSessionController) UpdateView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("viewID")
	vc, ok := c.lookup(id)
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view session not found")
		return
	}
	var req UpdateViewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if req.FilterPlace != nil {
		vc.SetFilterPlace(*req.FilterPlace)
	}
	if req.FilterStatus != nil {
		vc.SetFilterStatus(domain.EventStatus(*req.FilterStatus))
	}
	if req.FilterFrom != nil || req.FilterTo != nil {
		vc.SetFilterRange(req.FilterFrom, req.FilterTo)
	}
	if req.Search != nil {
		vc.SetSearch(*req.Search)
	}
	if req.GroupBy != nil {
		vc.SetGroupBy(domain.GroupKey(*req.GroupBy))
	}
	if req.PageSize != nil {
		vc.SetPageSize(*req.PageSize)
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessionResponse(id, vc))
}

// SortView godoc
// @Summary Sort a view session by a field
// @Description Clicking the current sort field flips the direction; a new field sorts ascending. Resets to page 1.
// @Tags views
// @Produce json
// @Param viewID path string true "View session ID"
// @Param field path string true "Sort field" Enums(date, place)
// @Success 200 {object} helpers.APIResponse "data contains the session snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID}/sort/{field} [post]
func (c *ViewSessionController) SortView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("viewID")
	vc, ok := c.lookup(id)
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view session not found")
		return
	}
	field := domain.SortField(r.PathValue("field"))
	if !field.Valid() {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "sort field must be date or place")
		return
	}
	vc.Sort(field)
	helpers.WriteJSONSuccess(w, http.StatusOK, sessionResponse(id, vc))
}

// TurnPage godoc
// @Summary Navigate a view session one page forward or back
// @Description Clamped to [1, ceil(total/page_size)]; other parameters are untouched.
// @Tags views
// @Produce json
// @Param viewID path string true "View session ID"
// @Param direction path string true "Navigation direction" Enums(next, prev)
// @Success 200 {object} helpers.APIResponse "data contains the session snapshot"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID}/page/{direction} [post]
func (c *ViewSessionController) TurnPage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("viewID")
	vc, ok := c.lookup(id)
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view session not found")
		return
	}
	switch r.PathValue("direction") {
	case "next":
		vc.NextPage()
	case "prev":
		vc.PrevPage()
	default:
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "direction must be next or prev")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sessionResponse(id, vc))
}

// CloseView godoc
// @Summary Close a view session
// @Tags views
// @Produce json
// @Param viewID path string true "View session ID"
// @Success 200 {object} helpers.APIResponse "data is null"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /views/{viewID} [delete]
func (c *ViewSessionController) CloseView(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("viewID")

	c.mu.Lock()
	vc, ok := c.sessions[id]
	if ok {
		delete(c.sessions, id)
	}
	c.mu.Unlock()

	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "view session not found")
		return
	}
	vc.Stop()
	c.Logger.Info("view session closed", "view_id", id)
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
