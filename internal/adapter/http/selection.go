package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"campaign-hub/internal/core/port"
)

type decideFunc func(ctx context.Context, ownerID, campaignID uuid.UUID, influencerIDs []uuid.UUID) (port.DecisionResult, error)

func (h *Handler) handleSelection(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, "selected", h.svc.SelectInfluencers)
}

func (h *Handler) handleRejection(w http.ResponseWriter, r *http.Request) {
	h.handleDecision(w, r, "rejected", h.svc.RejectInfluencers)
}

func (h *Handler) handleDecision(w http.ResponseWriter, r *http.Request, decision string, decide decideFunc) {
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
	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := decide(r.Context(), owner, id, req.InfluencerIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.metrics.RecordDecision(decision, res.Updated)
	writeData(w, http.StatusOK, decisionResponse{
		Updated:        res.Updated,
		CampaignStatus: string(res.CampaignStatus),
	})
}

func (h *Handler) handleApplicantBoard(w http.ResponseWriter, r *http.Request) {
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
	board, err := h.svc.ApplicantBoard(r.Context(), owner, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toBoardResponse(board))
}
