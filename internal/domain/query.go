package domain

import "strings"

// Order is one ORDER BY term on an API field name.
type Order struct {
	Field string
	Desc  bool
}

// ListQuery carries the filters of find, count and ids. Criteria and Order
// use API (JSON) field names; repositories map them to columns and reject
// unknown ones with ErrInvalidQuery.
type ListQuery struct {
	Criteria map[string]any `json:"criteria,omitempty"`
	OrderBy  []Order        `json:"orderBy,omitempty"`
	Limit    int            `json:"limit,omitempty"`
	Offset   int            `json:"offset,omitempty"`
	Search   string         `json:"search,omitempty"`
}

// ScopedTo returns a copy of q whose criteria force userId.
func (q ListQuery) ScopedTo(userID string) ListQuery {
	criteria := make(map[string]any, len(q.Criteria)+1)
	for k, v := range q.Criteria {
		criteria[k] = v
	}
	criteria["userId"] = userID
	q.Criteria = criteria
	q.Search = strings.TrimSpace(q.Search)
	return q
}
