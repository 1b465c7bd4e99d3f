package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dataspace-hub/dataspace-hub/internal/application/protocol"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/identity"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

const (
	eventAccepted  = "ACCEPTED"
	eventFinalized = "FINALIZED"
)

func (s *Server) getNegotiation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := s.negotiations.FindByID(r.Context(), id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (s *Server) listNegotiations(w http.ResponseWriter, r *http.Request) {
	spec := negotiation.QuerySpec{
		TenantID:       r.URL.Query().Get("tenantId"),
		CounterPartyID: r.URL.Query().Get("counterPartyId"),
	}
	if v := r.URL.Query().Get("state"); v != "" {
		state := negotiation.State(strings.ToUpper(v))
		spec.State = &state
	}
	if v := r.URL.Query().Get("type"); v != "" {
		typ := negotiation.Type(strings.ToUpper(v))
		spec.Type = &typ
	}
	spec.Limit, spec.Offset = parseLimitOffset(r, 50, 200)

	ns, err := s.negotiations.GetNegotiations(r.Context(), spec)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	if ns == nil {
		ns = []*negotiation.Negotiation{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"negotiations": ns})
}

// initialRequest handles the consumer-initiated contract request that creates
// a provider-side negotiation.
func (s *Server) initialRequest(w http.ResponseWriter, r *http.Request) {
	var msg protocol.RequestMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ProviderPID = ""
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Requested(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, n)
}

func (s *Server) request(w http.ResponseWriter, r *http.Request) {
	var msg protocol.RequestMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ProviderPID = chi.URLParam(r, "id")
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Requested(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

// initialOffer handles the provider-initiated contract offer that creates a
// consumer-side negotiation.
func (s *Server) initialOffer(w http.ResponseWriter, r *http.Request) {
	var msg protocol.OfferMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ConsumerPID = ""
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Offered(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, n)
}

func (s *Server) offer(w http.ResponseWriter, r *http.Request) {
	var msg protocol.OfferMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ConsumerPID = chi.URLParam(r, "id")
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Offered(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

// event dispatches the accepted and finalized protocol events on the
// eventType discriminator.
func (s *Server) event(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID        string `json:"id"`
		EventType string `json:"eventType"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg := protocol.EventMessage{
		ID:        req.ID,
		ProcessID: chi.URLParam(r, "id"),
		Token:     identity.TokenRepresentation{Token: bearerToken(r)},
	}

	var n *negotiation.Negotiation
	var err error
	switch strings.ToUpper(req.EventType) {
	case eventAccepted:
		n, err = s.negotiations.Accepted(r.Context(), msg)
	case eventFinalized:
		n, err = s.negotiations.Finalized(r.Context(), msg)
	default:
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "eventType must be ACCEPTED or FINALIZED")
		return
	}
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (s *Server) agreement(w http.ResponseWriter, r *http.Request) {
	var msg protocol.AgreementMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ProcessID = chi.URLParam(r, "id")
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Agreed(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (s *Server) verification(w http.ResponseWriter, r *http.Request) {
	var msg protocol.VerificationMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ProcessID = chi.URLParam(r, "id")
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Verified(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}

func (s *Server) termination(w http.ResponseWriter, r *http.Request) {
	var msg protocol.TerminationMessage
	if err := decodeBody(r, &msg); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	msg.ProcessID = chi.URLParam(r, "id")
	msg.Token = identity.TokenRepresentation{Token: bearerToken(r)}

	n, err := s.negotiations.Terminated(r.Context(), msg)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, n)
}
