package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_reservation/internal/adapters/observability"
	"hotel_reservation/internal/app"
	"hotel_reservation/internal/domain"
)

type Handlers struct {
	Inv   domain.Inventory
	Avail *app.AvailabilityService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/hotels/{id}/availability", h.checkAvailability)
	if s.searchRPS > 0 {
		s.mux.With(RateLimit(s.searchRPS)).Get("/v1/hotels/{id}/search", h.searchAvailability)
	} else {
		s.mux.Get("/v1/hotels/{id}/search", h.searchAvailability)
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeQueryError maps an engine/validator failure onto a problem response.
func writeQueryError(w http.ResponseWriter, op string, err error) {
	switch domain.KindOf(err) {
	case domain.KindDateFormat, domain.KindValidation:
		observability.ObserveQuery(op, "validation")
		writeProblem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	case domain.KindNotFound:
		observability.ObserveQuery(op, "not_found")
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		observability.ObserveQuery(op, "error")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", err.Error())
	}
}

func (h *Handlers) checkAvailability(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	dateSpec := r.URL.Query().Get("date")
	roomType := r.URL.Query().Get("roomType")
	if dateSpec == "" || roomType == "" {
		observability.ObserveQuery("check", "validation")
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "date and roomType query parameters are required")
		return
	}

	if !app.ValidateHotelID(h.Inv, hotelID) {
		observability.ObserveQuery("check", "not_found")
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel "+hotelID+" not found")
		return
	}
	if err := app.ValidateDateSpec(dateSpec); err != nil {
		writeQueryError(w, "check", err)
		return
	}
	if !app.ValidateRoomType(h.Inv, hotelID, roomType) {
		observability.ObserveQuery("check", "validation")
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "room type "+roomType+" not found in hotel "+hotelID)
		return
	}

	n, err := h.Avail.CheckAvailability(r.Context(), hotelID, dateSpec, roomType)
	if err != nil {
		writeQueryError(w, "check", err)
		return
	}

	observability.ObserveQuery("check", "ok")
	writeJSON(w, struct {
		HotelID   string `json:"hotelId"`
		Date      string `json:"date"`
		RoomType  string `json:"roomType"`
		Available int    `json:"available"`
	}{hotelID, dateSpec, roomType, n})
}

type periodDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

func (h *Handlers) searchAvailability(w http.ResponseWriter, r *http.Request) {
	hotelID := chi.URLParam(r, "id")
	roomType := r.URL.Query().Get("roomType")
	if roomType == "" {
		observability.ObserveQuery("search", "validation")
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "roomType query parameter is required")
		return
	}

	if !app.ValidateHotelID(h.Inv, hotelID) {
		observability.ObserveQuery("search", "not_found")
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel "+hotelID+" not found")
		return
	}

	days, err := app.ParseDays(r.URL.Query().Get("days"))
	if err != nil {
		writeQueryError(w, "search", err)
		return
	}

	// Optional explicit reference date; wall clock otherwise.
	from := time.Now()
	if f := r.URL.Query().Get("from"); f != "" {
		from, err = app.ParseDate(f)
		if err != nil {
			writeQueryError(w, "search", err)
			return
		}
	}

	if !app.ValidateRoomType(h.Inv, hotelID, roomType) {
		observability.ObserveQuery("search", "validation")
		writeProblem(w, http.StatusBadRequest, "Validation Failed", "room type "+roomType+" not found in hotel "+hotelID)
		return
	}

	periods, err := h.Avail.SearchPeriodsFrom(r.Context(), from, hotelID, days, roomType)
	if err != nil {
		writeQueryError(w, "search", err)
		return
	}

	dtos := make([]periodDTO, 0, len(periods))
	for _, p := range periods {
		dtos = append(dtos, periodDTO{
			Start: p.Start.Format(domain.DateLayout),
			End:   p.End.Format(domain.DateLayout),
			Count: p.Count,
		})
	}

	observability.ObserveQuery("search", "ok")
	writeJSON(w, struct {
		HotelID   string      `json:"hotelId"`
		RoomType  string      `json:"roomType"`
		Days      int         `json:"days"`
		Periods   []periodDTO `json:"periods"`
		Formatted string      `json:"formatted"`
	}{hotelID, roomType, days, dtos, domain.FormatPeriods(periods)})
}
