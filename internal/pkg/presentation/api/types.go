package api

import (
	"encoding/json"
	"net/http"

	"github.com/shelfware/shelf-mgmt/pkg/types"
)

// Meta describes the page of a collection response.
type Meta struct {
	Limit                uint64 `json:"limit"`
	Page                 uint64 `json:"page"`
	CurrentOffset        uint64 `json:"current_offset"`
	HasNextPage          bool   `json:"has_next_page"`
	TotalResults         uint64 `json:"total_results"`
	FilteredTotalResults uint64 `json:"filtered_total_results"`
}

type CollectionResponse[T any] struct {
	Meta  Meta `json:"metadata"`
	Items []T  `json:"items"`
}

func newCollectionResponse[T any](c types.Collection[T]) CollectionResponse[T] {
	page := uint64(1)
	if c.Limit > 0 {
		page = c.Offset/c.Limit + 1
	}

	items := c.Data
	if items == nil {
		items = make([]T, 0)
	}

	return CollectionResponse[T]{
		Meta: Meta{
			Limit:                c.Limit,
			Page:                 page,
			CurrentOffset:        c.Offset,
			HasNextPage:          c.Offset+c.Count < c.FilteredCount,
			TotalResults:         c.TotalCount,
			FilteredTotalResults: c.FilteredCount,
		},
		Items: items,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func writeCollection[T any](w http.ResponseWriter, c types.Collection[T]) {
	writeJSON(w, http.StatusOK, newCollectionResponse(c))
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": err.Error(),
		},
	})
}
