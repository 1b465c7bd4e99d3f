package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/dataspace-hub/dataspace-hub/internal/application/protocol"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

//go:generate mockgen -source=server.go -destination=mocks/mock_service.go -package=mocks

// NegotiationService is the protocol surface the HTTP binding exposes.
type NegotiationService interface {
	FindByID(ctx context.Context, id string) (*negotiation.Negotiation, error)
	GetNegotiations(ctx context.Context, spec negotiation.QuerySpec) ([]*negotiation.Negotiation, error)
	Requested(ctx context.Context, msg protocol.RequestMessage) (*negotiation.Negotiation, error)
	Offered(ctx context.Context, msg protocol.OfferMessage) (*negotiation.Negotiation, error)
	Accepted(ctx context.Context, msg protocol.EventMessage) (*negotiation.Negotiation, error)
	Agreed(ctx context.Context, msg protocol.AgreementMessage) (*negotiation.Negotiation, error)
	Verified(ctx context.Context, msg protocol.VerificationMessage) (*negotiation.Negotiation, error)
	Finalized(ctx context.Context, msg protocol.EventMessage) (*negotiation.Negotiation, error)
	Terminated(ctx context.Context, msg protocol.TerminationMessage) (*negotiation.Negotiation, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	negotiations NegotiationService
	logger       zerolog.Logger
}

func NewServer(negotiations NegotiationService, logger zerolog.Logger) *Server {
	return &Server{
		negotiations: negotiations,
		logger:       logger.With().Str("component", "http").Logger(),
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/negotiations", func(r chi.Router) {
		r.Get("/", s.listNegotiations)
		r.Post("/request", s.initialRequest)
		r.Post("/offers", s.initialOffer)

		r.Get("/{id}", s.getNegotiation)
		r.Post("/{id}/request", s.request)
		r.Post("/{id}/offers", s.offer)
		r.Post("/{id}/events", s.event)
		r.Post("/{id}/agreement", s.agreement)
		r.Post("/{id}/agreement/verification", s.verification)
		r.Post("/{id}/termination", s.termination)
	})

	return r
}

// Helpers
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}

func decodeBody(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondServiceError maps the typed failure kinds of the protocol layer to
// HTTP statuses. Untyped errors stay opaque to the caller.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch protocol.KindOf(err) {
	case protocol.KindNotFound:
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case protocol.KindBadRequest:
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
	case protocol.KindConflict:
		respondError(w, http.StatusConflict, "CONFLICT", err.Error())
	case protocol.KindUnavailable:
		respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
	default:
		s.logger.Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	}
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	return ""
}

func parseLimitOffset(r *http.Request, defaultLimit, maxLimit int) (int, int) {
	limit := defaultLimit
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			limit = l
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if o, err := strconv.Atoi(v); err == nil {
			offset = o
		}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
