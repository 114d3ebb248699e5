package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/middleware"
	"planner/pkg/utils"
)

type stubTripService struct {
	createId   string
	createErr  error
	gotInput   services.CreateTripInput
	called     bool
	confirm    *services.ConfirmationResult
	confirmErr error
	details    *response_models.TripDetailResponse
	detailsErr error
}

func (s *stubTripService) CreateTrip(ctx context.Context, input services.CreateTripInput) (string, error) {
	s.called = true
	s.gotInput = input
	return s.createId, s.createErr
}

func (s *stubTripService) ConfirmTrip(ctx context.Context, tripId string) (*services.ConfirmationResult, error) {
	s.called = true
	return s.confirm, s.confirmErr
}

func (s *stubTripService) GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	return s.details, s.detailsErr
}

func newTripRouter(svc services.TripServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	ctrl := NewTripController(svc)
	r.POST("/trips", ctrl.CreateTrip)
	r.GET("/trips/:tripId", ctrl.GetTripDetails)
	r.GET("/trips/:tripId/confirm", ctrl.ConfirmTrip)
	return r
}

func TestCreateTripEndpoint(t *testing.T) {
	svc := &stubTripService{createId: uuid.NewString()}
	r := newTripRouter(svc)

	body := `{
		"destination": "Paris",
		"starts_at": "2030-09-04T00:00:00Z",
		"ends_at": "2030-09-07T00:00:00Z",
		"owner_name": "Ana",
		"owner_email": "ana@x.com",
		"emails_to_invite": ["bob@x.com"]
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, svc.createId, data["tripId"])

	assert.Equal(t, "Paris", svc.gotInput.Destination)
	assert.Equal(t, []string{"bob@x.com"}, svc.gotInput.EmailsToInvite)
}

func TestCreateTripEndpoint_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"short destination", `{"destination":"Rio","starts_at":"2030-09-04T00:00:00Z","ends_at":"2030-09-07T00:00:00Z","owner_name":"Ana","owner_email":"ana@x.com"}`},
		{"bad owner email", `{"destination":"Paris","starts_at":"2030-09-04T00:00:00Z","ends_at":"2030-09-07T00:00:00Z","owner_name":"Ana","owner_email":"not-an-email"}`},
		{"bad invitee email", `{"destination":"Paris","starts_at":"2030-09-04T00:00:00Z","ends_at":"2030-09-07T00:00:00Z","owner_name":"Ana","owner_email":"ana@x.com","emails_to_invite":["nope"]}`},
		{"missing dates", `{"destination":"Paris","owner_name":"Ana","owner_email":"ana@x.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubTripService{}
			r := newTripRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, svc.called, "malformed input must be rejected before the workflow runs")
		})
	}
}

func TestCreateTripEndpoint_InvalidDates(t *testing.T) {
	svc := &stubTripService{createErr: utils.ErrInvalidDate}
	r := newTripRouter(svc)

	body := `{"destination":"Paris","starts_at":"2020-09-04T00:00:00Z","ends_at":"2020-09-07T00:00:00Z","owner_name":"Ana","owner_email":"ana@x.com"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmTripEndpoint_Redirects(t *testing.T) {
	tripId := uuid.NewString()
	svc := &stubTripService{confirm: &services.ConfirmationResult{
		Status:      services.NewlyConfirmed,
		RedirectURL: "http://front.test/trips/" + tripId,
	}}
	r := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripId+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://front.test/trips/"+tripId, w.Header().Get("Location"))
}

func TestConfirmTripEndpoint_InvalidId(t *testing.T) {
	svc := &stubTripService{}
	r := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trips/not-a-uuid/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, svc.called)
}

func TestConfirmTripEndpoint_NotFound(t *testing.T) {
	svc := &stubTripService{confirmErr: utils.ErrTripNotFound}
	r := newTripRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/trips/"+uuid.NewString()+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
