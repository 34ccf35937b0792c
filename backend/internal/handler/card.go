package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
	"github.com/itchan-dev/punchcards/shared/utils"
)

func (h *Handler) GetCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.card.ListFull(r.Context())
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cards)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	card, err := h.card.Create(r.Context(), domain.CardCreationData{Title: body.Title, Capacity: body.Capacity})
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, card)
}

// DeleteCard answers 404 for every failure, including a malformed id.
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(chi.URLParam(r, "id"), "card id")
	if err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}

	if err := h.card.Delete(r.Context(), id); err != nil {
		fail(w, r, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
