package handler

import (
	"net/http"

	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
	"github.com/itchan-dev/punchcards/shared/utils"
)

func (h *Handler) GetPersons(w http.ResponseWriter, r *http.Request) {
	people, err := h.person.List(r.Context())
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, people)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePersonRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	person, err := h.person.Create(r.Context(), domain.PersonCreationData{
		Name:        body.Name,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
	})
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, person)
}
