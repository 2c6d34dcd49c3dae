package session

import "context"

// Sink receives the bytes of a saved asset. Implementations decide where
// they go (a file, an upload, an archive entry).
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
}
