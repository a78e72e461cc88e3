package upload

import (
	"context"
	"io"
)

// Provider represents an image upload provider implementation
type Provider interface {
	MaxBytes() int64
	Upload(ctx context.Context, body io.Reader, ext string, mime string) (string, error)
}
