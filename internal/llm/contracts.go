// Package llm is the boundary to the text/vision inference service. The core
// treats the service as a black box that accepts a prompt plus an optional
// image payload and returns a single JSON object, or fails.
package llm

import (
	"context"
	"encoding/json"
)

// Request is one inference call.
type Request struct {
	System   string
	User     string
	ImagePNG []byte // optional; when set the call goes through the vision path
}

// Client is the interface the extraction strategies depend on. Implementations
// are constructed explicitly and passed in; there is no process-wide client.
// Timeouts are the client's responsibility; the core surfaces a timeout as a
// strategy failure.
type Client interface {
	Complete(ctx context.Context, req Request) (json.RawMessage, error)
}
