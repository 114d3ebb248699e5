package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"planner/internal/models/request_models"
	"planner/internal/models/response_models"
	"planner/internal/services"
	"planner/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip with a date window, an owner and a list of invitee emails. The owner receives a confirmation email.
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Destination, date window, owner, invitees"
// @Success 200 {object} response_models.CreateTripResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	tripId, err := t.tripService.CreateTrip(c.Request.Context(), services.CreateTripInput{
		Destination:    req.Destination,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		OwnerName:      req.OwnerName,
		OwnerEmail:     req.OwnerEmail,
		EmailsToInvite: req.EmailsToInvite,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateTripResponse{TripID: tripId}, "Trip created successfully")
}

// ConfirmTrip godoc
// @Summary Confirm a trip
// @Description Visited from the owner's confirmation email. Confirms the trip, notifies invitees once, and redirects to the frontend trip page.
// @Tags Trip
// @Param tripId path string true "Trip ID"
// @Success 302
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/confirm [get]
func (t *TripController) ConfirmTrip(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	result, err := t.tripService.ConfirmTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, result.RedirectURL)
}

func (t *TripController) GetTripDetails(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	trip, err := t.tripService.GetTripDetails(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip details fetched successfully")
}
