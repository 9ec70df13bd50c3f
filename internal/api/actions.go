package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"airline_tycoon/internal/game"
	"airline_tycoon/internal/models"
)

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	var req game.AcquireRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.PurchaseAircraft(req)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleLease(w http.ResponseWriter, r *http.Request) {
	var req game.AcquireRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.LeaseAircraft(req)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RouteIDs []string `json:"route_ids"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.UpdateSchedule(chi.URLParam(r, "id"), req.RouteIDs)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleReturnLease(w http.ResponseWriter, r *http.Request) {
	note, err := s.engine.ReturnLease(chi.URLParam(r, "id"))
	s.respondAction(w, r, note, err)
}

func (s *Server) handleExtendLease(w http.ResponseWriter, r *http.Request) {
	note, err := s.engine.ExtendLease(chi.URLParam(r, "id"))
	s.respondAction(w, r, note, err)
}

func (s *Server) handleBuyout(w http.ResponseWriter, r *http.Request) {
	note, err := s.engine.BuyoutAircraft(chi.URLParam(r, "id"))
	s.respondAction(w, r, note, err)
}

func (s *Server) handleSell(w http.ResponseWriter, r *http.Request) {
	note, err := s.engine.SellAircraft(chi.URLParam(r, "id"))
	s.respondAction(w, r, note, err)
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hub string `json:"hub"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.TransferAircraftHub(chi.URLParam(r, "id"), req.Hub)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleConfiguration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ConfigurationID models.ConfigurationType `json:"configuration_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.ChangeAircraftConfiguration(chi.URLParam(r, "id"), req.ConfigurationID)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleRetrofit(w http.ResponseWriter, r *http.Request) {
	note, err := s.engine.RetrofitAircraft(chi.URLParam(r, "id"))
	s.respondAction(w, r, note, err)
}

type priceStrategyRequest struct {
	PriceStrategy models.PriceStrategy `json:"price_strategy"`
}

func (s *Server) handleOpenRoute(w http.ResponseWriter, r *http.Request) {
	var req priceStrategyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.OpenRoute(chi.URLParam(r, "id"), req.PriceStrategy)
	s.respondAction(w, r, note, err)
}

func (s *Server) handlePriceStrategy(w http.ResponseWriter, r *http.Request) {
	var req priceStrategyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.SetRoutePriceStrategy(chi.URLParam(r, "id"), req.PriceStrategy)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleConcept(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Concept models.AirlineConcept `json:"concept"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.ChangeConcept(req.Concept)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleMaintenance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level models.MaintenanceLevel `json:"level"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.SetMaintenanceLevel(req.Level)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string `json:"category"`
		Level    string `json:"level"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.SetServiceLevel(req.Category, req.Level)
	s.respondAction(w, r, note, err)
}

func (s *Server) handleEstablishHub(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.EstablishHub(req.Code)
	s.respondAction(w, r, note, err)
}

func (s *Server) handlePurchaseFacility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Facility models.FacilityType `json:"facility"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, s.log, err)
		return
	}
	note, err := s.engine.PurchaseFacility(chi.URLParam(r, "code"), req.Facility)
	s.respondAction(w, r, note, err)
}
