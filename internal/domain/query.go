package domain

// SortField selects the column events are ordered by.
type SortField string

const (
	SortByDate  SortField = "date"
	SortByPlace SortField = "place"
)

// Valid reports whether f is a sortable field.
func (f SortField) Valid() bool {
	return f == SortByDate || f == SortByPlace
}

// SortDir is the sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Valid reports whether d is a known direction.
func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// EventSort describes the requested ordering of a query.
type EventSort struct {
	Field SortField `json:"field"`
	Dir   SortDir   `json:"dir"`
}

// EventFilter narrows a query. Status matches exactly; Place is a
// case-sensitive substring match. Empty values mean "no filter".
type EventFilter struct {
	Status EventStatus `json:"status,omitempty"`
	Place  string      `json:"place,omitempty"`
}

// EventPage is one page of query results. Total counts all events
// matching the filter, before pagination.
type EventPage struct {
	Data  []Event `json:"data"`
	Total int     `json:"total"`
}

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// GroupKey selects the field events are grouped by. Empty means no grouping.
type GroupKey string

const (
	GroupByNone   GroupKey = ""
	GroupByStatus GroupKey = "status"
	GroupByPlace  GroupKey = "place"
)

// Valid reports whether k is a known grouping key (including none).
func (k GroupKey) Valid() bool {
	return k == GroupByNone || k == GroupByStatus || k == GroupByPlace
}

// EventGroup is one partition of a grouped result set. Sum is the total
// participant count across the group's events.
type EventGroup struct {
	Key    string  `json:"key"`
	Events []Event `json:"events"`
	Sum    int     `json:"sum"`
}
