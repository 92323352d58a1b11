package ports

import "context"

// Notifier is a minimal capability to post a user-visible status line for a
// guild. It is not a chat-client dependency; callers may pass a no-op.
type Notifier interface {
	Notify(ctx context.Context, guildID string, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, guildID string, message string)

func (f NotifierFunc) Notify(ctx context.Context, guildID string, message string) {
	f(ctx, guildID, message)
}
