package pagination

const (
	DefaultRecordsPerPage = 10
	MaxRecordsPerPage     = 50
)

// PageRequest describes which slice of an ordered result set to return.
type PageRequest struct {
	Page           int `json:"page" form:"page"`
	RecordsPerPage int `json:"recordsPerPage" form:"recordsPerPage"`
}

// Normalize clamps the request into valid bounds: page >= 1 and
// recordsPerPage within [1, MaxRecordsPerPage]. Zero values take defaults.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.RecordsPerPage == 0 {
		p.RecordsPerPage = DefaultRecordsPerPage
	}
	if p.RecordsPerPage < 1 {
		p.RecordsPerPage = 1
	}
	if p.RecordsPerPage > MaxRecordsPerPage {
		p.RecordsPerPage = MaxRecordsPerPage
	}
	return p
}

// Offset returns the number of records to skip for this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.RecordsPerPage
}

// PagedResult carries one page of records plus total-count metadata taken
// before paging was applied.
type PagedResult[T any] struct {
	Data           []T   `json:"data"`
	TotalRecords   int64 `json:"totalRecords"`
	Page           int   `json:"page"`
	RecordsPerPage int   `json:"recordsPerPage"`
	TotalPages     int   `json:"totalPages"`
}

// NewPagedResult builds the envelope, echoing the effective page request.
// An empty page is valid: zero records means zero total pages.
func NewPagedResult[T any](data []T, totalRecords int64, p PageRequest) PagedResult[T] {
	if data == nil {
		data = []T{}
	}
	return PagedResult[T]{
		Data:           data,
		TotalRecords:   totalRecords,
		Page:           p.Page,
		RecordsPerPage: p.RecordsPerPage,
		TotalPages:     totalPages(totalRecords, p.RecordsPerPage),
	}
}

func totalPages(totalRecords int64, recordsPerPage int) int {
	if recordsPerPage <= 0 {
		return 0
	}
	return int((totalRecords + int64(recordsPerPage) - 1) / int64(recordsPerPage))
}
