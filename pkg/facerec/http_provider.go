package facerec

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
)

// HTTPProvider implements Provider against a face inference sidecar
// (MTCNN + facenet behind a small HTTP API).
type HTTPProvider struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string) Provider {
	if baseURL == "" {
		baseURL = "http://localhost:7000"
	}
	return &HTTPProvider{
		BaseURL: baseURL,
		client:  http.DefaultClient,
	}
}

type extractRequest struct {
	Image string `json:"image"` // base64-encoded image bytes
}

type extractResponse struct {
	Embedding []float64 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

func (p *HTTPProvider) Extract(ctx context.Context, image []byte) ([]float32, error) {
	reqBody := extractRequest{
		Image: base64.StdEncoding.EncodeToString(image),
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/api/embed", p.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// The sidecar answers 422 when it decoded the image but found no
	// face. Everything else non-200 is a transport problem.
	if resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, ErrNoFace
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("face embedding error: %s", string(bodyBytes))
	}

	var extractResp extractResponse
	if err := json.Unmarshal(bodyBytes, &extractResp); err != nil {
		return nil, err
	}
	if len(extractResp.Embedding) == 0 {
		return nil, ErrNoFace
	}

	values := make([]float32, len(extractResp.Embedding))
	for i, v := range extractResp.Embedding {
		values[i] = float32(v)
	}

	// The sidecar normalizes already, but cosine matching depends on
	// unit vectors, so normalize again here.
	return Normalize(values), nil
}

// Normalize scales a vector to unit length. Zero vectors are returned
// unchanged.
func Normalize(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
