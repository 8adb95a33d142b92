package facerec

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPProviderExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"embedding": [3, 4]}`))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL)
	vec, err := provider.Extract(context.Background(), []byte("fake-image"))
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}

	// Response must be re-normalized to unit length.
	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if math.Abs(norm-1.0) > 1e-6 {
		t.Errorf("Extract() returned non-unit vector, |v|^2 = %v", norm)
	}
}

func TestHTTPProviderNoFace(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error": "no face detected"}`))
	}))
	defer srv.Close()

	provider := NewHTTPProvider(srv.URL)
	_, err := provider.Extract(context.Background(), []byte("fake-image"))
	if !errors.Is(err, ErrNoFace) {
		t.Errorf("Extract() error = %v, want ErrNoFace", err)
	}
}
