package server

import (
	"context"
	"encoding/json"
	"net/http"
	"pokedex/internal/constants"
	"pokedex/internal/middleware"
	"pokedex/internal/state"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type PokedexServer struct {
	controller *state.Controller
	logger     zerolog.Logger
}

func NewPokedexServer(controller *state.Controller, logger zerolog.Logger) *PokedexServer {
	return &PokedexServer{controller: controller, logger: logger}
}

type queryRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *PokedexServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /api/view", s.view)
	mux.HandleFunc("PUT /api/query", s.updateQuery)
	mux.HandleFunc("POST /api/pokemon/{name}/details", s.requestDetails)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return middleware.RequestID(s.logger)(c.Handler(mux))
}

func (s *PokedexServer) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *PokedexServer) view(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.View())
}

func (s *PokedexServer) updateQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("invalid query body")
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:     "invalid JSON body",
			RequestID: middleware.GetRequestID(r.Context()),
		})
		return
	}

	s.controller.UpdateQuery(req.Query)
	writeJSON(w, http.StatusOK, s.controller.View())
}

// requestDetails always answers with the current view. A failed lookup
// shows up only as absent details.
func (s *PokedexServer) requestDetails(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	if err := s.controller.RequestDetails(ctx, name); err != nil {
		zerolog.Ctx(r.Context()).Debug().
			Err(err).
			Str("name", name).
			Msg("details request failed")
	}

	writeJSON(w, http.StatusOK, s.controller.View())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
