package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"planner/internal/config"
	dbm "planner/internal/models/db_models"
	"planner/internal/models/response_models"
	"planner/internal/repositories"
	"planner/pkg/utils"
)

type CreateTripInput struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	OwnerName      string
	OwnerEmail     string
	EmailsToInvite []string
}

type ConfirmationStatus string

const (
	NewlyConfirmed   ConfirmationStatus = "confirmed"
	AlreadyConfirmed ConfirmationStatus = "already_confirmed"
)

// ConfirmationResult tells the transport layer where to send the caller
// after a confirmation visit, and whether this visit did the flip.
type ConfirmationResult struct {
	Status      ConfirmationStatus
	RedirectURL string
}

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, input CreateTripInput) (string, error)
	ConfirmTrip(ctx context.Context, tripId string) (*ConfirmationResult, error)
	GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
}

type TripService struct {
	tripRepo        repositories.TripRepository
	participantRepo repositories.ParticipantRepository
	mailService     IMailService
	apiBaseURL      string
	frontendBaseURL string
}

func NewTripService(
	tripRepo repositories.TripRepository,
	participantRepo repositories.ParticipantRepository,
	mailService IMailService,
	cfg *config.AppConfig,
) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		mailService:     mailService,
		apiBaseURL:      cfg.APIBaseURL,
		frontendBaseURL: cfg.FrontendBaseURL,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, input CreateTripInput) (string, error) {
	if err := utils.ValidateTripWindow(input.StartsAt, input.EndsAt, utils.NowUTC()); err != nil {
		return "", err
	}

	trip := &dbm.Trip{
		Destination: input.Destination,
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      input.EndsAt.UTC(),
	}

	participants := make([]dbm.Participant, 0, len(input.EmailsToInvite)+1)
	participants = append(participants, dbm.Participant{
		Name:        input.OwnerName,
		Email:       input.OwnerEmail,
		IsOwner:     true,
		IsConfirmed: true,
	})
	for _, email := range input.EmailsToInvite {
		participants = append(participants, dbm.Participant{
			Email: email,
		})
	}

	tripId, err := s.tripRepo.CreateTripWithParticipants(ctx, trip, participants)
	if err != nil {
		log.Printf("create trip failed: %v", err)
		return "", utils.ErrDatabaseError
	}

	// The trip is durable at this point; delivery of the owner's
	// confirmation mail is best effort.
	confirmURL := fmt.Sprintf("%s/trips/%s/confirm", s.apiBaseURL, tripId)
	if err := s.mailService.SendTripConfirmationRequest(
		input.OwnerName, input.OwnerEmail,
		trip.Destination, trip.StartsAt, trip.EndsAt,
		confirmURL,
	); err != nil {
		log.Printf("owner confirmation mail to %s failed: %v", input.OwnerEmail, err)
	}

	return tripId.String(), nil
}

func (s *TripService) ConfirmTrip(ctx context.Context, tripId string) (*ConfirmationResult, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	redirect := fmt.Sprintf("%s/trips/%s", s.frontendBaseURL, tripId)

	changed, err := s.tripRepo.MarkTripConfirmed(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !changed {
		// Another visit, possibly concurrent, already flipped the trip;
		// invitees were notified exactly once at that point.
		return &ConfirmationResult{Status: AlreadyConfirmed, RedirectURL: redirect}, nil
	}

	invitees, err := s.participantRepo.ListInviteesByTripId(ctx, tripId)
	if err != nil {
		// The trip is confirmed; notification is best effort from here.
		log.Printf("listing invitees for trip %s failed: %v", tripId, err)
		return &ConfirmationResult{Status: NewlyConfirmed, RedirectURL: redirect}, nil
	}

	s.notifyInvitees(trip, invitees)

	return &ConfirmationResult{Status: NewlyConfirmed, RedirectURL: redirect}, nil
}

// notifyInvitees fans invitation mail out concurrently and waits for the
// batch. Per-recipient failures are logged and isolated; there is no
// retry, and no failure reaches the caller.
func (s *TripService) notifyInvitees(trip *dbm.Trip, invitees []dbm.Participant) {
	var wg sync.WaitGroup
	for _, p := range invitees {
		wg.Add(1)
		go func(p dbm.Participant) {
			defer wg.Done()
			confirmURL := fmt.Sprintf("%s/participants/%s/confirm", s.apiBaseURL, p.ID)
			if err := s.mailService.SendParticipantInvite(
				p.Email, trip.Destination, trip.StartsAt, trip.EndsAt, confirmURL,
			); err != nil {
				log.Printf("participant invite to %s failed: %v", p.Email, err)
			}
		}(p)
	}
	wg.Wait()
}

func (s *TripService) GetTripDetails(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	participants, err := s.participantRepo.ListParticipantsByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.TripDetailResponse{
		ID:           trip.ID.String(),
		Destination:  trip.Destination,
		StartsAt:     utils.FormatRFC3339(trip.StartsAt),
		EndsAt:       utils.FormatRFC3339(trip.EndsAt),
		IsConfirmed:  trip.IsConfirmed,
		Participants: make([]response_models.ParticipantResponse, 0, len(participants)),
	}
	for _, p := range participants {
		out.Participants = append(out.Participants, response_models.ParticipantResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Email:       p.Email,
			IsOwner:     p.IsOwner,
			IsConfirmed: p.IsConfirmed,
		})
	}
	return out, nil
}
