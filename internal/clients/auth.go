package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"booking-service/internal/domain"
)

// AuthClient delegates bearer token checks to the authentication service.
type AuthClient struct {
	BaseURL string
	hc      *http.Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AuthClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// VerifyToken calls GET /verify-token. A nil error means the token is valid.
// Failures are domain.UnauthorizedError with a message naming the cause.
func (c *AuthClient) VerifyToken(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/verify-token", nil)
	if err != nil {
		return domain.UnauthorizedError{Msg: "Error occurred during authentication", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return domain.UnauthorizedError{Msg: "Error occurred during authentication", Err: err}
		}
		return domain.UnauthorizedError{Msg: "No response received from authentication server", Err: err}
	}
	defer resp.Body.Close()

	var env Envelope
	raw, decodeErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if decodeErr == nil {
		decodeErr = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= 300 {
		msg := strings.TrimSpace(env.Message)
		if decodeErr != nil || msg == "" {
			msg = "Token verification failed"
		}
		return domain.UnauthorizedError{Msg: msg}
	}
	if decodeErr != nil {
		return domain.UnauthorizedError{Msg: "Error occurred during authentication", Err: decodeErr}
	}
	if !env.Success {
		return domain.UnauthorizedError{Msg: "Invalid token"}
	}
	return nil
}
