package userctx

import "context"

// Actor identifies the authenticated staff member behind a request.
// The audit log writer copies these fields into every record it appends.
type Actor struct {
	LoginID  string
	FullName string
	HostIP   string
}

// Context key type
type contextKey string

const actorKey contextKey = "actor"

// WithActor adds the authenticated actor to the request context
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFrom retrieves the authenticated actor from the request context
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}
