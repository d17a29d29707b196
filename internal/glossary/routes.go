package glossary

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MissRecorder receives lookup misses for author diagnostics. The miss
// log store satisfies this.
type MissRecorder interface {
	Record(ctx context.Context, query, page string) error
}

// RegisterRoutes mounts the glossary API. misses may be nil, in which
// case lookup misses are not recorded.
func RegisterRoutes(r chi.Router, idx *Index, misses MissRecorder) {
	r.Route("/api/glossary", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{"terms": idx.Entries()})
		})

		r.Get("/lookup", func(w http.ResponseWriter, req *http.Request) {
			q := req.URL.Query().Get("q")
			if q == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "q is required"})
				return
			}
			entry, ok := idx.Lookup(q)
			if !ok {
				if misses != nil {
					_ = misses.Record(req.Context(), q, req.URL.Query().Get("page"))
				}
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "term not found"})
				return
			}
			writeJSON(w, http.StatusOK, entry)
		})

		r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
			entry, ok := idx.Get(chi.URLParam(req, "id"))
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "entry not found"})
				return
			}
			writeJSON(w, http.StatusOK, entry)
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
