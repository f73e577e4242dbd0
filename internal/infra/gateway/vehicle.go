package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"vehicle-booking/internal/pkg/config"
	"vehicle-booking/internal/pkg/errs"
	"vehicle-booking/internal/usecase/commands"
)

// VehicleClient talks to the external vehicle inventory service over plain
// HTTP. Responses outside the documented contract and every transport fault
// collapse into errs.ErrUpstreamUnavailable; only a clean 404 becomes
// errs.ErrVehicleNotFound.
type VehicleClient struct {
	baseURL string
	client  *http.Client
}

func NewVehicleClient(cfg config.VehicleAPIConfig) *VehicleClient {
	return &VehicleClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

type vehiclePayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type vehicleStatusPayload struct {
	Status string `json:"status"`
}

func (c *VehicleClient) GetVehicle(ctx context.Context, vehicleID int64) (*commands.VehicleSnapshot, error) {
	url := fmt.Sprintf("%s/vehicles/%d", c.baseURL, vehicleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to build vehicle request"), errs.ErrUpstreamUnavailable)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "vehicle service unreachable"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var payload vehiclePayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "malformed vehicle response"), errs.ErrUpstreamUnavailable)
		}
		return &commands.VehicleSnapshot{ID: payload.ID, Status: payload.Status}, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Mark(errs.Newf("vehicle %d not found upstream", vehicleID), errs.ErrVehicleNotFound)
	default:
		return nil, errs.Mark(errs.Newf("vehicle service returned status %d", resp.StatusCode), errs.ErrUpstreamUnavailable)
	}
}

func (c *VehicleClient) SetVehicleStatus(ctx context.Context, vehicleID int64, status string) error {
	url := fmt.Sprintf("%s/vehicles/%d/status", c.baseURL, vehicleID)

	body, err := json.Marshal(vehicleStatusPayload{Status: status})
	if err != nil {
		return errs.Wrap(err, "failed to encode vehicle status")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to build vehicle status request"), errs.ErrUpstreamUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "vehicle service unreachable"), errs.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return errs.Mark(errs.Newf("vehicle %d not found upstream", vehicleID), errs.ErrVehicleNotFound)
	default:
		return errs.Mark(errs.Newf("vehicle service returned status %d", resp.StatusCode), errs.ErrUpstreamUnavailable)
	}
}
