package httpx

import "context"

type ctxKey string

const ctxKeySubject ctxKey = "subject"

// WithSubject stores the authenticated user id on ctx.
func WithSubject(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeySubject, userID)
}

// SubjectFromContext returns the authenticated user id, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeySubject).(string)
	return id, ok && id != ""
}
