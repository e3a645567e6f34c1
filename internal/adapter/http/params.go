package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"campaign-hub/internal/core/domain"
)

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidInput.WithDetails(map[string]string{"id": "must be a valid uuid"})
	}
	return id, nil
}

// caller returns the authenticated user. Only routes behind authMiddleware
// call it, so a missing identity is reported as unauthorized.
func caller(r *http.Request) (uuid.UUID, error) {
	id, ok := identityFromContext(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return id.UserID, nil
}

// pageParams reads page and limit. Absent values stay zero and are
// defaulted by the use case.
func pageParams(r *http.Request) (domain.PageRequest, error) {
	var (
		page    domain.PageRequest
		details = map[string]string{}
	)
	q := r.URL.Query()
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			details["page"] = "must be a positive integer"
		}
		page.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			details["limit"] = "must be a positive integer"
		}
		page.Limit = n
	}
	if len(details) > 0 {
		return domain.PageRequest{}, domain.ErrInvalidInput.WithDetails(details)
	}
	return page, nil
}
