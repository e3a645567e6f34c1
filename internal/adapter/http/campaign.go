package httpadapter

import (
	"net/http"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), owner, req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, toCampaignResponse(c))
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req campaignRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), owner, id, req.input())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteCampaign(r.Context(), owner, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleTransitionStatus(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.TransitionStatus(r.Context(), owner, id, port.StatusChange{
		Target: domain.CampaignStatus(req.Status),
		Reason: req.Reason,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var status *domain.CampaignStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.CampaignStatus(v)
		status = &s
	}
	res, err := h.svc.ListCampaigns(r.Context(), status, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignPage(res))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignResponse(c))
}

func (h *Handler) handleListAdvertiserCampaigns(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.ListAdvertiserCampaigns(r.Context(), owner, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignPage(res))
}

func (h *Handler) handleGetAdvertiserCampaign(w http.ResponseWriter, r *http.Request) {
	owner, err := caller(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.GetAdvertiserCampaign(r.Context(), owner, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toCampaignResponse(c))
}
