package facerec

import (
	"context"
	"errors"
)

// ErrNoFace means the image decoded fine but no usable face was found.
// Callers surface this as an input-quality problem, never as an
// authentication failure.
var ErrNoFace = errors.New("no face detected in image")

// Provider produces a fixed-length unit-normalized feature vector from
// raw image bytes. The detection and embedding pipeline behind it is a
// black box; the core only compares and stores the result.
type Provider interface {
	Extract(ctx context.Context, image []byte) ([]float32, error)
}
