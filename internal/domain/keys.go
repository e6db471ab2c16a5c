package domain

import "context"

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserName  CtxKey = "UserName"
	KeyRequestID CtxKey = "RequestID"
)

// WithUser stores the authenticated user on ctx.
func WithUser(ctx context.Context, userID, name string) context.Context {
	ctx = context.WithValue(ctx, KeyUserID, userID)
	return context.WithValue(ctx, KeyUserName, name)
}

// UserIDFromContext returns the authenticated user id, or "" when the
// request is anonymous.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyUserID).(string)
	return id
}

func UserNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(KeyUserName).(string)
	return name
}
