package misslog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the author-facing miss-log API.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/glossary-misses", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
			misses, err := store.List(req.Context(), limit)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			if misses == nil {
				misses = []Miss{}
			}
			writeJSON(w, http.StatusOK, map[string]any{"misses": misses})
		})

		r.Delete("/", func(w http.ResponseWriter, req *http.Request) {
			n, err := store.Clear(req.Context())
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			writeJSON(w, http.StatusOK, map[string]int{"cleared": n})
		})
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
