package auth

import "context"

type ctxKey int

const subjectKey ctxKey = iota

// WithSubject stores the authenticated token subject on the context.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// SubjectFromContext returns the subject set by RequireAccess, or "".
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(subjectKey).(string)
	return s
}
