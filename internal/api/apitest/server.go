// Package apitest provides a fake backend for tests that exercise the HTTP client.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
)

// Backend holds one handler per endpoint. Nil handlers answer 404.
type Backend struct {
	APOD           http.HandlerFunc
	EPIC           http.HandlerFunc
	Launches       http.HandlerFunc
	Rockets        http.HandlerFunc
	CompareRockets http.HandlerFunc
	NASAImages     http.HandlerFunc

	mu       sync.Mutex
	requests []*http.Request
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []*http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*http.Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Count returns how many requests hit path.
func (b *Backend) Count(path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.URL.Path == path {
			n++
		}
	}
	return n
}

// NewServer starts an httptest server routing to b. The server is closed
// when the test ends.
func NewServer(t testing.TB, b *Backend) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.requests = append(b.requests, req.Clone(req.Context()))
			b.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/apod", orNotFound(b.APOD))
		r.Get("/epic", orNotFound(b.EPIC))
		r.Get("/launches", orNotFound(b.Launches))
		r.Get("/rockets", orNotFound(b.Rockets))
		r.Post("/compare-rockets", orNotFound(b.CompareRockets))
		r.Get("/nasa-images", orNotFound(b.NASAImages))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func orNotFound(h http.HandlerFunc) http.HandlerFunc {
	if h != nil {
		return h
	}
	return http.NotFound
}

// JSON answers every request with status and v encoded as JSON.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Raw answers every request with status and a literal body.
func Raw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// Fixtures returns a Backend populated with small, valid data sets.
func Fixtures() *Backend {
	return &Backend{
		APOD:     JSON(http.StatusOK, SampleAPOD()),
		EPIC:     JSON(http.StatusOK, SampleEPIC()),
		Launches: JSON(http.StatusOK, SampleLaunches()),
		Rockets:  JSON(http.StatusOK, SampleRockets()),
		CompareRockets: func(w http.ResponseWriter, r *http.Request) {
			var req api.CompareRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				JSON(http.StatusBadRequest, map[string]string{"error": "bad body"})(w, r)
				return
			}
			JSON(http.StatusOK, map[string]string{
				"comparison": req.Rocket1 + " versus " + req.Rocket2,
			})(w, r)
		},
		NASAImages: func(w http.ResponseWriter, r *http.Request) {
			term := r.URL.Query().Get("q")
			kind := r.URL.Query().Get("media_type")
			JSON(http.StatusOK, []api.MediaItem{{
				NASAID:    term + "-" + kind + "-1",
				Title:     term + " " + kind,
				Thumbnail: "https://images.example/" + term + ".jpg",
			}})(w, r)
		},
	}
}
