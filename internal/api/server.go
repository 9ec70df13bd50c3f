package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"airline_tycoon/internal/config"
	"airline_tycoon/internal/errors"
	"airline_tycoon/internal/game"
	"airline_tycoon/internal/models"
)

type Server struct {
	engine *game.Engine
	log    *slog.Logger
}

// actionResponse pairs the player-facing note of an action with the state
// it produced.
type actionResponse struct {
	Message string           `json:"message"`
	State   models.GameState `json:"state"`
}

// New constructs the HTTP router wired to the game engine. Background
// work started for the router stops when ctx ends.
func New(ctx context.Context, engine *game.Engine, cfg config.Config) http.Handler {
	s := &Server{engine: engine, log: slog.With("component", "api")}
	limiter := newRateLimiter(ctx, cfg.RateLimit)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(newCORS(cfg.CORS).Handler)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/state", s.handleState)
	r.Get("/airports", s.handleAirports)
	r.Get("/catalog/aircraft", s.handleCatalogAircraft)
	r.Get("/catalog/configurations", s.handleCatalogConfigurations)
	r.Get("/catalog/facilities", s.handleCatalogFacilities)
	r.Get("/routes/market", s.handleRouteMarket)
	r.Get("/notifications", s.handleNotifications)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)

		r.Post("/setup", s.handleSetup)
		r.Post("/tick", s.handleTick)
		r.Post("/sim/start", s.handleSimStart)
		r.Post("/sim/pause", s.handleSimPause)
		r.Post("/sim/speed", s.handleSimSpeed)
		r.Post("/save", s.handleSave)

		r.Post("/fleet/purchase", s.handlePurchase)
		r.Post("/fleet/lease", s.handleLease)
		r.Route("/fleet/{id}", func(r chi.Router) {
			r.Put("/schedule", s.handleSchedule)
			r.Post("/return", s.handleReturnLease)
			r.Post("/extend", s.handleExtendLease)
			r.Post("/buyout", s.handleBuyout)
			r.Post("/sell", s.handleSell)
			r.Post("/transfer", s.handleTransfer)
			r.Post("/configuration", s.handleConfiguration)
			r.Post("/retrofit", s.handleRetrofit)
		})

		r.Post("/routes/{id}/open", s.handleOpenRoute)
		r.Put("/routes/{id}/price-strategy", s.handlePriceStrategy)

		r.Put("/brand/concept", s.handleConcept)
		r.Put("/operations/maintenance", s.handleMaintenance)
		r.Put("/operations/service", s.handleService)

		r.Post("/hubs", s.handleEstablishHub)
		r.Post("/airports/{code}/facilities", s.handlePurchaseFacility)
	})

	return r
}

// decodeJSON reads the request body into v. An empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && err != io.EOF {
		return errors.WrapValidation("invalid request body", err)
	}
	return nil
}

// respondAction writes the outcome of a player action.
func (s *Server) respondAction(w http.ResponseWriter, r *http.Request, note string, err error) {
	if err != nil {
		respondError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, actionResponse{Message: note, State: s.engine.State()})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.State())
}

func (s *Server) handleAirports(w http.ResponseWriter, r *http.Request) {
	airports := s.engine.State().Airports
	if len(airports) == 0 {
		airports = s.engine.Catalog().Airports
	}
	writeJSON(w, http.StatusOK, filterAirports(airports, r.URL.Query().Get("scale")))
}

func filterAirports(airports []models.Airport, scale string) []models.Airport {
	if scale == "" {
		return airports
	}
	out := make([]models.Airport, 0, len(airports))
	for _, a := range airports {
		if strings.EqualFold(string(a.Scale), scale) {
			out = append(out, a)
		}
	}
	return out
}

func (s *Server) handleCatalogAircraft(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	if r.URL.Query().Get("unlocked") == "true" {
		writeJSON(w, http.StatusOK, cat.UnlockedModels(s.engine.State().Date.Year()))
		return
	}
	writeJSON(w, http.StatusOK, cat.Aircraft)
}

func (s *Server) handleCatalogConfigurations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Catalog().Configurations)
}

func (s *Server) handleCatalogFacilities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Catalog().Facilities)
}

func (s *Server) handleRouteMarket(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.State().RouteMarket)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		writeJSON(w, http.StatusOK, s.engine.Notifications())
		return
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		respondError(w, r, s.log, errors.Validationf("limit must be a positive integer, got %q", raw))
		return
	}
	msgs, err := s.engine.StoredNotifications(r.Context(), limit)
	if err != nil {
		respondError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req game.SetupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.Setup(req)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleTick(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.AdvanceDay())
}

type speedRequest struct {
	Speed int `json:"speed"`
}

func (s *Server) handleSimStart(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	if err := s.engine.StartSim(req.Speed); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.State())
}

func (s *Server) handleSimPause(w http.ResponseWriter, r *http.Request) {
	s.engine.PauseSim()
	writeJSON(w, http.StatusOK, s.engine.State())
}

func (s *Server) handleSimSpeed(w http.ResponseWriter, r *http.Request) {
	req := speedRequest{Speed: -1}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	if err := s.engine.SetSpeed(req.Speed); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s.engine.State())
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Save(r.Context()); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved", "session_id": s.engine.SessionID()})
}
