package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dataspace-hub/dataspace-hub/internal/api/http/mocks"
	"github.com/dataspace-hub/dataspace-hub/internal/application/protocol"
	"github.com/dataspace-hub/dataspace-hub/internal/domain/negotiation"
)

func newTestServer(t *testing.T) (*mocks.MockNegotiationService, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockNegotiationService(ctrl)
	return svc, NewServer(svc, zerolog.Nop()).Router()
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetNegotiation(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().FindByID(gomock.Any(), "neg-1").Return(&negotiation.Negotiation{
		ID:    "neg-1",
		State: negotiation.StateRequested,
	}, nil)

	rec := doJSON(t, router, http.MethodGet, "/negotiations/neg-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got negotiation.Negotiation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "neg-1", got.ID)
	assert.Equal(t, negotiation.StateRequested, got.State)
}

func TestGetNegotiationNotFound(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().FindByID(gomock.Any(), "missing").
		Return(nil, &protocol.Error{Kind: protocol.KindNotFound, Detail: "no negotiation with id missing found"})

	rec := doJSON(t, router, http.MethodGet, "/negotiations/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListNegotiations(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().GetNegotiations(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, spec negotiation.QuerySpec) ([]*negotiation.Negotiation, error) {
			require.NotNil(t, spec.State)
			assert.Equal(t, negotiation.StateRequested, *spec.State)
			assert.Equal(t, "tenant-a", spec.TenantID)
			assert.Equal(t, 10, spec.Limit)
			return []*negotiation.Negotiation{{ID: "neg-1"}}, nil
		})

	rec := doJSON(t, router, http.MethodGet, "/negotiations?state=requested&tenantId=tenant-a&limit=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Negotiations []*negotiation.Negotiation `json:"negotiations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Negotiations, 1)
}

func TestInitialRequestCreates(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().Requested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, msg protocol.RequestMessage) (*negotiation.Negotiation, error) {
			assert.Empty(t, msg.ProviderPID, "a create request must not carry a provider pid")
			assert.Equal(t, "consumer-pid-1", msg.ConsumerPID)
			assert.Equal(t, "test-token", msg.Token.Token)
			return &negotiation.Negotiation{ID: "neg-1", State: negotiation.StateRequested}, nil
		})

	rec := doJSON(t, router, http.MethodPost, "/negotiations/request", map[string]interface{}{
		"id":          "msg-1",
		"consumerPid": "consumer-pid-1",
		"offer":       map[string]interface{}{"offerId": "offer-1"},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequestTargetsPathID(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().Requested(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, msg protocol.RequestMessage) (*negotiation.Negotiation, error) {
			assert.Equal(t, "neg-1", msg.ProviderPID, "path id wins over any body value")
			return &negotiation.Negotiation{ID: "neg-1", State: negotiation.StateRequested}, nil
		})

	rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/request", map[string]interface{}{
		"id":          "msg-2",
		"consumerPid": "consumer-pid-1",
		"offer":       map[string]interface{}{"offerId": "offer-1"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEventDispatch(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		svc, router := newTestServer(t)
		svc.EXPECT().Accepted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, msg protocol.EventMessage) (*negotiation.Negotiation, error) {
				assert.Equal(t, "neg-1", msg.ProcessID)
				assert.Equal(t, "msg-3", msg.ID)
				return &negotiation.Negotiation{ID: "neg-1", State: negotiation.StateAccepted}, nil
			})

		rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/events", map[string]interface{}{
			"id":        "msg-3",
			"eventType": "ACCEPTED",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("finalized", func(t *testing.T) {
		svc, router := newTestServer(t)
		svc.EXPECT().Finalized(gomock.Any(), gomock.Any()).
			Return(&negotiation.Negotiation{ID: "neg-1", State: negotiation.StateFinalized}, nil)

		rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/events", map[string]interface{}{
			"id":        "msg-4",
			"eventType": "finalized",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown event type", func(t *testing.T) {
		_, router := newTestServer(t)
		rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/events", map[string]interface{}{
			"id":        "msg-5",
			"eventType": "REJECTED",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", &protocol.Error{Kind: protocol.KindNotFound, Detail: "x"}, http.StatusNotFound},
		{"bad request", &protocol.Error{Kind: protocol.KindBadRequest, Detail: "x"}, http.StatusBadRequest},
		{"conflict", &protocol.Error{Kind: protocol.KindConflict, Detail: "x"}, http.StatusConflict},
		{"unavailable", &protocol.Error{Kind: protocol.KindUnavailable, Detail: "x"}, http.StatusServiceUnavailable},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, router := newTestServer(t)
			svc.EXPECT().Terminated(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/termination", map[string]interface{}{
				"id":     "msg-6",
				"reason": "no longer interested",
			})
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestInternalErrorIsOpaque(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().FindByID(gomock.Any(), "neg-1").Return(nil, assert.AnError)

	rec := doJSON(t, router, http.MethodGet, "/negotiations/neg-1", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestAgreementAndVerification(t *testing.T) {
	svc, router := newTestServer(t)
	svc.EXPECT().Agreed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, msg protocol.AgreementMessage) (*negotiation.Negotiation, error) {
			assert.Equal(t, "neg-1", msg.ProcessID)
			assert.Equal(t, "agr-1", msg.Agreement.ID)
			return &negotiation.Negotiation{ID: "neg-1", State: negotiation.StateAgreed}, nil
		})
	svc.EXPECT().Verified(gomock.Any(), gomock.Any()).
		Return(&negotiation.Negotiation{ID: "neg-1", State: negotiation.StateVerified}, nil)

	rec := doJSON(t, router, http.MethodPost, "/negotiations/neg-1/agreement", map[string]interface{}{
		"id": "msg-7",
		"agreement": map[string]interface{}{
			"id":         "agr-1",
			"providerId": "did:web:provider",
			"consumerId": "did:web:consumer",
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/negotiations/neg-1/agreement/verification", map[string]interface{}{
		"id": "msg-8",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
