package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"planner/internal/services"
	"planner/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
}

func NewParticipantController(participantService services.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// ConfirmParticipant godoc
// @Summary Confirm a participant
// @Description Visited from an invitee's confirmation email. Marks the participant confirmed and redirects to the frontend trip page.
// @Tags Participant
// @Param participantId path string true "Participant ID"
// @Success 302
// @Failure 404 {object} utils.APIResponse
// @Router /participants/{participantId}/confirm [get]
func (p *ParticipantController) ConfirmParticipant(c *gin.Context) {
	participantId := c.Param("participantId")
	if _, err := uuid.Parse(participantId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid participant ID")
		return
	}

	result, err := p.participantService.ConfirmParticipant(c.Request.Context(), participantId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, result.RedirectURL)
}

func (p *ParticipantController) ListParticipants(c *gin.Context) {
	tripId := c.Param("tripId")
	if _, err := uuid.Parse(tripId); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	participants, err := p.participantService.ListParticipantsOfTrip(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, participants, "Participants fetched successfully")
}
