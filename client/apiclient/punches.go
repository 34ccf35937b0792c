package apiclient

import (
	"context"
	"net/http"

	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// CreatePunch fails with status 400 for a full card as well as for an
// unknown card or puncher; the server does not tell them apart.
func (c *APIClient) CreatePunch(ctx context.Context, data api.CreatePunchRequest) (domain.Punch, error) {
	var punch domain.Punch
	resp, err := c.do(ctx, http.MethodPost, "/punch", data)
	if err != nil {
		return punch, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return punch, statusError(resp, "punch card")
	}
	err = decode(resp, &punch)
	return punch, err
}
