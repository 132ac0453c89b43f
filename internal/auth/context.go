package auth

import "context"

type userIDCtxKey struct{}

// ContextWithUserID stashes the session's user id so that handlers
// down the chain can tell whose ledger a request belongs to.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDCtxKey{}, userID)
}

func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDCtxKey{}).(string)
	return userID
}
