package handler

import (
	"net/http"

	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
	"github.com/itchan-dev/punchcards/shared/utils"
)

// CreatePunch answers 400 for a full card, a missing card or puncher, and
// storage failures alike.
func (h *Handler) CreatePunch(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePunchRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	punch, err := h.punch.Create(r.Context(), domain.PunchCreationData{
		CardId:    body.CardId,
		PuncherId: body.PuncherId,
		Date:      body.Date,
		Reason:    body.Reason,
	})
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, punch)
}
