package main

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
)

//go:embed data.json
var sampleCatalog []byte

// catalogSource returns the current catalog bytes.
type catalogSource func() ([]byte, error)

func fileSource(path string) catalogSource {
	if path == "" {
		return func() ([]byte, error) { return sampleCatalog, nil }
	}
	return func() ([]byte, error) { return os.ReadFile(path) }
}

func newRouter(src catalogSource, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(accessLog(log))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/data.json", func(w http.ResponseWriter, r *http.Request) {
		b, err := src()
		if err != nil {
			log.Error("read catalog", slog.Any("error", err))
			writeErr(w, http.StatusInternalServerError, "catalog unavailable")
			return
		}
		var records []json.RawMessage
		if err := json.Unmarshal(b, &records); err != nil {
			log.Error("catalog is not a JSON array", slog.Any("error", err))
			writeErr(w, http.StatusInternalServerError, "catalog malformed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(b)
	}).Methods(http.MethodGet)

	return r
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

func accessLog(log *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)
			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			log.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote", r.RemoteAddr),
				slog.Int("status", rec.status),
				slog.Int("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
