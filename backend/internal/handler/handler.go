package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/punchcards/backend/internal/service"
	"github.com/itchan-dev/punchcards/shared/logger"
	"github.com/itchan-dev/punchcards/shared/utils"
)

// HealthChecker reports whether the database can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	card   service.CardService
	person service.PersonService
	punch  service.PunchService
	health HealthChecker
}

func New(card service.CardService, person service.PersonService, punch service.PunchService, health HealthChecker) *Handler {
	return &Handler{card: card, person: person, punch: punch, health: health}
}

// fail logs err with everything known about it and answers with the bare
// status. Clients only learn that the request failed.
func fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	utils.WriteStatus(w, status)
}
