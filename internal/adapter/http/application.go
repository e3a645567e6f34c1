package httpadapter

import (
	"net/http"
	"strings"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	influencer, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.Apply(r.Context(), influencer, domain.ApplicationInput{
		CampaignID: req.CampaignID,
		Motivation: req.Motivation,
		VisitDate:  req.VisitDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.RecordApplication()
	writeData(w, http.StatusCreated, toApplicationResponse(a))
}

func (h *Handler) handleListMyApplications(w http.ResponseWriter, r *http.Request) {
	influencer, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	filter := port.ApplicationFilter{SortBy: q.Get("sortBy"), Page: page}
	switch strings.ToLower(q.Get("sortOrder")) {
	case "", "desc":
	case "asc":
		filter.Ascending = true
	default:
		h.writeError(w, r, domain.ErrInvalidInput.WithDetails(map[string]string{"sortOrder": "must be asc or desc"}))
		return
	}
	if v := q.Get("status"); v != "" {
		s := domain.ApplicationStatus(v)
		filter.Status = &s
	}
	res, err := h.svc.ListMyApplications(r.Context(), influencer, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toApplicationPage(res))
}
