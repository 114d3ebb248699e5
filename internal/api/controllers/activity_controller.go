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

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// CreateActivity godoc
// @Summary Add an activity to a trip
// @Description The activity must occur inside the trip's date window.
// @Tags Activity
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateActivityRequest true "Title and date"
// @Success 200 {object} response_models.CreateActivityResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/activities [post]
func (a *ActivityController) CreateActivity(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	activityId, err := a.activityService.CreateActivity(c.Request.Context(), tripId, req.Title, req.OccursAt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateActivityResponse{ActivityID: activityId}, "Activity created successfully")
}

func (a *ActivityController) ListActivities(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	activities, err := a.activityService.ListActivitiesOfTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
