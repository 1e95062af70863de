package utils

import (
	"context"
	"log"
	"strings"

	"booking-service/internal/domain"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogError is LogEvent with the error text attached.
func LogError(requestID, module, action, message string, err error) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s error=%q", strings.ToUpper(module), action, req, message, errText(err))
}

// LogCtx resolves the request id stored on ctx before logging.
func LogCtx(ctx context.Context, module, action, message string) {
	LogEvent(domain.FromContext(ctx).RequestID, module, action, message)
}

func LogCtxError(ctx context.Context, module, action, message string, err error) {
	LogError(domain.FromContext(ctx).RequestID, module, action, message, err)
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
