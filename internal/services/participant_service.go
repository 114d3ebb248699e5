package services

import (
	"context"
	"fmt"

	"planner/internal/config"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type ParticipantServiceInterface interface {
	ConfirmParticipant(ctx context.Context, participantId string) (*ConfirmationResult, error)
	ListParticipantsOfTrip(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error)
}

type ParticipantService struct {
	participantRepo repositories.ParticipantRepository
	frontendBaseURL string
}

func NewParticipantService(
	participantRepo repositories.ParticipantRepository,
	cfg *config.AppConfig,
) ParticipantServiceInterface {
	return &ParticipantService{
		participantRepo: participantRepo,
		frontendBaseURL: cfg.FrontendBaseURL,
	}
}

// ConfirmParticipant is the monotonic flip behind a participant's
// personal confirmation link. Repeat visits land on the already-confirmed
// branch and trigger nothing.
func (s *ParticipantService) ConfirmParticipant(ctx context.Context, participantId string) (*ConfirmationResult, error) {
	participant, err := s.participantRepo.GetParticipantById(ctx, participantId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if participant == nil {
		return nil, utils.ErrParticipantNotFound
	}

	changed, err := s.participantRepo.MarkParticipantConfirmed(ctx, participantId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := &ConfirmationResult{
		Status:      NewlyConfirmed,
		RedirectURL: fmt.Sprintf("%s/trips/%s", s.frontendBaseURL, participant.TripID),
	}
	if !changed {
		result.Status = AlreadyConfirmed
	}
	return result, nil
}

func (s *ParticipantService) ListParticipantsOfTrip(ctx context.Context, tripId string) ([]response_models.ParticipantResponse, error) {
	participants, err := s.participantRepo.ListParticipantsByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		out = append(out, response_models.ParticipantResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Email:       p.Email,
			IsOwner:     p.IsOwner,
			IsConfirmed: p.IsConfirmed,
		})
	}
	return out, nil
}
