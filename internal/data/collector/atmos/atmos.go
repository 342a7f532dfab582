package atmos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/songzhibin97/cosmoboard/internal/models"
	"github.com/songzhibin97/cosmoboard/internal/utils/request"
)

// ErrUnsuccessful is returned when the API answers with a falsy success flag.
var ErrUnsuccessful = errors.New("atmos stats request unsuccessful")

type AtmosDataSource struct {
	statsURL   string
	httpClient *resty.Client
}

func NewAtmosDataSource(statsURL string) *AtmosDataSource {
	return &AtmosDataSource{
		statsURL:   statsURL,
		httpClient: request.Request,
	}
}

func (a *AtmosDataSource) Name() string {
	return "atmos"
}

// CollectOverallStats fetches the overall-stats endpoint and returns its data field.
func (a *AtmosDataSource) CollectOverallStats(ctx context.Context) (*models.OverallStats, error) {
	resp, err := a.httpClient.R().SetContext(ctx).Get(a.statsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var result struct {
		Success json.RawMessage      `json:"success"`
		Data    *models.OverallStats `json:"data"`
	}

	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !truthy(result.Success) {
		return nil, ErrUnsuccessful
	}

	if result.Data == nil {
		return nil, fmt.Errorf("response has no data")
	}

	if result.Data.Breakdown == nil {
		return nil, fmt.Errorf("response has no volume breakdown")
	}

	return result.Data, nil
}

// truthy treats the success flag loosely: false, 0, "", null and absent are
// falsy, anything else counts as success.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch flag := v.(type) {
	case nil:
		return false
	case bool:
		return flag
	case float64:
		return flag != 0
	case string:
		return flag != ""
	default:
		return true
	}
}
