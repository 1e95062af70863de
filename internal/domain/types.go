package domain

import "context"

// Status represents a lightweight state value.
type Status string

type ctxKey int

const (
	requestIDKey ctxKey = iota
	subjectKey
)

// RequestContext carries the caller identity once the bearer token is accepted.
type RequestContext struct {
	RequestID string `json:"requestId"`
	Subject   string `json:"sub"`
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// WithSubject records the sub claim of an accepted bearer token.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// FromContext collects whatever identity values the middleware stored on ctx.
func FromContext(ctx context.Context) RequestContext {
	var rc RequestContext
	if ctx == nil {
		return rc
	}
	rc.RequestID, _ = ctx.Value(requestIDKey).(string)
	rc.Subject, _ = ctx.Value(subjectKey).(string)
	return rc
}
