package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserIDHeader = "X-User-Id"
)

type ctxKey string

const userIDKey ctxKey = "userID"

var ErrNoActor = errors.New("actor id is missing")

func SetActorContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ActorID returns the acting user's id put into the context by the
// gateway-header middleware.
func ActorID(ctx context.Context) (string, error) {
	id, ok := ctx.Value(userIDKey).(string)
	if !ok || id == "" {
		return "", ErrNoActor
	}
	return id, nil
}
