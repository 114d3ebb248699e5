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

type LinkController struct {
	linkService services.LinkServiceInterface
}

func NewLinkController(linkService services.LinkServiceInterface) *LinkController {
	return &LinkController{
		linkService: linkService,
	}
}

func (l *LinkController) CreateLink(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	var req request_models.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	linkId, err := l.linkService.CreateLink(c.Request.Context(), tripId, req.Title, req.URL)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.CreateLinkResponse{LinkID: linkId}, "Link created successfully")
}

func (l *LinkController) ListLinks(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	links, err := l.linkService.ListLinksOfTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, links, "Links fetched successfully")
}
