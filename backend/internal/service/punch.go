package service

import (
	"context"
	"errors"
	"time"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/backend/internal/service/utils"
	"github.com/itchan-dev/punchcards/shared/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var punchAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "punchcards_punch_attempts_total",
		Help: "Punch attempts by outcome",
	},
	[]string{"result"},
)

type PunchService interface {
	Create(ctx context.Context, data domain.PunchCreationData) (domain.Punch, error)
}

type Punch struct {
	storage   PunchStorage
	validator PunchValidator
	now       func() time.Time
}

// PunchStorage must enforce card capacity atomically with the insert.
type PunchStorage interface {
	CreatePunch(ctx context.Context, data domain.PunchCreationData) (domain.Punch, error)
}

type PunchValidator interface {
	Reason(reason string) error
}

func NewPunch(storage PunchStorage, validator PunchValidator) PunchService {
	return &Punch{storage: storage, validator: validator, now: time.Now}
}

// Create punches a card. A missing date means now; dates are kept in UTC.
func (p *Punch) Create(ctx context.Context, data domain.PunchCreationData) (domain.Punch, error) {
	data.Reason = utils.SanitizeText(data.Reason)
	if err := p.validator.Reason(data.Reason); err != nil {
		punchAttempts.WithLabelValues("invalid").Inc()
		return domain.Punch{}, err
	}
	if data.Date.IsZero() {
		data.Date = p.now()
	}
	data.Date = data.Date.UTC()

	punch, err := p.storage.CreatePunch(ctx, data)
	punchAttempts.WithLabelValues(punchResult(err)).Inc()
	if err != nil {
		return domain.Punch{}, err
	}
	return punch, nil
}

func punchResult(err error) string {
	switch {
	case err == nil:
		return "created"
	case errors.Is(err, internal_errors.CapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, internal_errors.NotFound):
		return "not_found"
	default:
		return "error"
	}
}
