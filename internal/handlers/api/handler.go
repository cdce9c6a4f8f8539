package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/eventswipe/internal/booking"
	"github.com/KirkDiggler/eventswipe/internal/services/checkin"
	"github.com/KirkDiggler/eventswipe/internal/services/messaging"
	"github.com/KirkDiggler/eventswipe/internal/services/mode"
)

// Config holds the dependencies of the HTTP API
type Config struct {
	CheckInService   checkin.Service
	MessagingService messaging.Service
}

// Handler serves the local JSON API used by kiosks and dashboards
type Handler struct {
	checkin   checkin.Service
	messaging messaging.Service
}

// New creates the API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.CheckInService == nil {
		return nil, ErrNilCheckInService
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	return &Handler{
		checkin:   cfg.CheckInService,
		messaging: cfg.MessagingService,
	}, nil
}

// Routes builds the router
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/status", h.Status)
	r.Post("/mode", h.SetMode)
	r.Post("/replay", h.Replay)
	r.Post("/export", h.Export)
	r.Get("/unsaved", h.ListUnsaved)
	r.Delete("/unsaved", h.DiscardUnsaved)
	r.Post("/finish", h.Finish)

	r.Route("/checkins", func(r chi.Router) {
		r.Post("/", h.CheckIn)
		r.Get("/", h.History)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.ListEvents)
		r.Post("/{key}/load", h.LoadEvent)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeError maps service errors to status codes with operator wording
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	msg, msgErr := h.messaging.GetErrorMessage(r.Context(), &messaging.GetErrorMessageInput{Err: err})
	text := err.Error()
	if msgErr == nil {
		text = msg.Message
	}

	writeJSON(w, statusFor(err), errorResponse{Error: text})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, checkin.ErrEmptyIdentifier),
		errors.Is(err, checkin.ErrInvalidIdentifier):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrNoStudentFound),
		errors.Is(err, booking.ErrEventNotFound),
		errors.Is(err, checkin.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, checkin.ErrNoEvent),
		errors.Is(err, checkin.ErrUnsaved),
		errors.Is(err, checkin.ErrOffline),
		errors.Is(err, checkin.ErrOfflineEvent),
		errors.Is(err, booking.ErrEventFull):
		return http.StatusConflict
	case errors.Is(err, booking.ErrNotConfigured),
		errors.Is(err, mode.ErrRemoteDisabled),
		errors.Is(err, mode.ErrNoConnectivity):
		return http.StatusServiceUnavailable
	case errors.Is(err, booking.ErrUnauthorized),
		errors.Is(err, booking.ErrUnexpectedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Status handles GET /status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.checkin.Status(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatus(status))
}

// CheckIn handles POST /checkins
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	out, err := h.checkin.CheckIdentifier(r.Context(), &checkin.CheckIdentifierInput{Identifier: req.Identifier})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	msg, err := h.messaging.GetCheckInMessage(r.Context(), &messaging.GetCheckInMessageInput{
		Booking: out.Booking,
		Queued:  out.Queued,
		Held:    out.Held,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkInResponse{
		Booking: toBooking(out.Booking),
		Queued:  out.Queued,
		Held:    out.Held,
		Message: messageResponse{Title: msg.Title, Message: msg.Message, Severity: string(msg.Severity)},
	})
}

// History handles GET /checkins, filtered by ?identifier=
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.History(r.Context(), &checkin.HistoryInput{Identifier: r.URL.Query().Get("identifier")})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records := make([]recordResponse, 0, len(out.Records))
	for _, record := range out.Records {
		records = append(records, toRecord(record))
	}

	writeJSON(w, http.StatusOK, records)
}

// SetMode handles POST /mode
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if !req.Online {
		h.checkin.GoOffline()
		h.Status(w, r)
		return
	}

	out, err := h.checkin.GoOnline(r.Context())
	if out != nil && out.Replay != nil {
		h.writeReplay(w, r, out.Replay)
		return
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.Status(w, r)
}

// Replay handles POST /replay
func (h *Handler) Replay(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.ReplayUnsaved(r.Context())
	if out == nil {
		h.writeError(w, r, err)
		return
	}

	h.writeReplay(w, r, out)
}

func (h *Handler) writeReplay(w http.ResponseWriter, r *http.Request, out *checkin.ReplayOutput) {
	msg, err := h.messaging.GetReplayMessage(r.Context(), &messaging.GetReplayMessageInput{
		Attempted: out.Attempted,
		Saved:     out.Saved,
		Remaining: out.Remaining,
		EventFull: out.EventFull,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if out.EventFull {
		status = http.StatusConflict
	}

	writeJSON(w, status, replayResponse{
		Attempted: out.Attempted,
		Saved:     out.Saved,
		Remaining: out.Remaining,
		EventFull: out.EventFull,
		Message:   messageResponse{Message: msg.Message, Severity: string(msg.Severity)},
	})
}

// Export handles POST /export, streaming the unsaved ledger as text and clearing it
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if _, err := h.checkin.Export(r.Context(), &checkin.ExportInput{Writer: w}); err != nil {
		log.Printf("Failed to export unsaved check-ins: %v", err)
		h.writeError(w, r, err)
	}
}

// ListUnsaved handles GET /unsaved
func (h *Handler) ListUnsaved(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.ListUnsaved(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	identifiers := out.Identifiers
	if identifiers == nil {
		identifiers = []string{}
	}

	writeJSON(w, http.StatusOK, unsavedResponse{EventID: out.EventID, Identifiers: identifiers})
}

// DiscardUnsaved handles DELETE /unsaved
func (h *Handler) DiscardUnsaved(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.DiscardUnsaved(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"discarded": out.Discarded})
}

// Finish handles POST /finish
func (h *Handler) Finish(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	err := h.checkin.Finish(r.Context(), &checkin.FinishInput{MarkAbsent: req.MarkAbsent, Notify: req.Notify})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListEvents handles GET /events
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.ListEvents(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	events := make([]listingResponse, 0, len(out.Events))
	for _, event := range out.Events {
		events = append(events, listingResponse{ID: event.ID, Title: event.Title, StartTime: event.StartTime})
	}

	writeJSON(w, http.StatusOK, events)
}

// LoadEvent handles POST /events/{key}/load, with ?waiting=true to load the waiting list
func (h *Handler) LoadEvent(w http.ResponseWriter, r *http.Request) {
	out, err := h.checkin.LoadEvent(r.Context(), &checkin.LoadEventInput{
		EventKey:       chi.URLParam(r, "key"),
		UseWaitingList: r.URL.Query().Get("waiting") == "true",
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Printf("Loaded event %s over HTTP, %d unsaved from an earlier run", out.Event.ID, out.Unsaved)

	h.Status(w, r)
}
