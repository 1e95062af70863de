package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"booking-service/internal/domain"
	"booking-service/internal/utils"
)

// TimeslotClient flips a provider timeslot between booked and available on
// the timeslot service.
type TimeslotClient struct {
	BaseURL string
	hc      *http.Client
}

func NewTimeslotClient(baseURL string, timeout time.Duration) *TimeslotClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TimeslotClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

type timeslotUpdate struct {
	Status    string  `json:"status"`
	ServiceID *string `json:"serviceId"`
}

// Envelope is the {success,message,data} shape shared by the services.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// SetTimeslotStatus PUTs {status, serviceId} to
// /api/timeslots/{providerUserSub}/{timeslotId}. A nil associatedID clears
// the association. Every failure is a domain.RemoteCallError.
func (c *TimeslotClient) SetTimeslotStatus(ctx context.Context, providerUserSub, timeslotID, status string, associatedID *string) error {
	endpoint := fmt.Sprintf("%s/api/timeslots/%s/%s", c.BaseURL, url.PathEscape(providerUserSub), url.PathEscape(timeslotID))

	body, err := json.Marshal(timeslotUpdate{Status: status, ServiceID: associatedID})
	if err != nil {
		return domain.RemoteCallError{Msg: "Error calling timeslot service", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.RemoteCallError{Msg: "Error calling timeslot service", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rc := domain.FromContext(ctx)
	if rc.RequestID != "" {
		req.Header.Set("X-Request-ID", rc.RequestID)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		utils.LogCtxError(ctx, "timeslot", "set_status", "transport failure timeslot="+timeslotID, err)
		return domain.RemoteCallError{Msg: "Error calling timeslot service", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.RemoteCallError{Msg: "Error calling timeslot service", Err: err}
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		utils.LogCtxError(ctx, "timeslot", "set_status",
			fmt.Sprintf("malformed response status=%d timeslot=%s", resp.StatusCode, timeslotID), err)
		return domain.RemoteCallError{Msg: "Error calling timeslot service", Err: err}
	}
	if resp.StatusCode >= 300 || !env.Success {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = "Failed to update timeslot"
		}
		utils.LogCtx(ctx, "timeslot", "set_status",
			fmt.Sprintf("rejected status=%d timeslot=%s message=%s", resp.StatusCode, timeslotID, msg))
		return domain.RemoteCallError{Msg: msg}
	}
	return nil
}
