package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// ListEnvelope is the pagination envelope shared by every list endpoint.
type ListEnvelope[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// NewListEnvelope builds the envelope from a page of items. page is
// skip/limit + 1 and total_pages is ceil(total/limit), zero when the result
// set is empty.
func NewListEnvelope[T any](items []T, total int64, skip, limit int) ListEnvelope[T] {
	env := ListEnvelope[T]{
		Items:   items,
		Total:   total,
		PerPage: limit,
	}
	if env.Items == nil {
		env.Items = []T{}
	}
	if limit > 0 {
		env.Page = skip/limit + 1
		if total > 0 {
			env.TotalPages = int((total + int64(limit) - 1) / int64(limit))
		}
	}
	return env
}
