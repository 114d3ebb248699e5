package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	dbm "planner/internal/models/db_models"
)

// memStore is an in-memory stand-in for the trip and participant
// repositories, mirroring their conditional-update semantics.
type memStore struct {
	mu           sync.Mutex
	trips        map[uuid.UUID]*dbm.Trip
	participants map[uuid.UUID]*dbm.Participant
	order        []uuid.UUID

	createErr error
	getErr    error
	listErr   error
}

func newMemStore() *memStore {
	return &memStore{
		trips:        make(map[uuid.UUID]*dbm.Trip),
		participants: make(map[uuid.UUID]*dbm.Participant),
	}
}

func (s *memStore) CreateTripWithParticipants(ctx context.Context, trip *dbm.Trip, participants []dbm.Participant) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}

	trip.ID = uuid.New()
	s.trips[trip.ID] = trip
	for i := range participants {
		p := participants[i]
		p.ID = uuid.New()
		p.TripID = trip.ID
		s.participants[p.ID] = &p
		s.order = append(s.order, p.ID)
	}
	return trip.ID, nil
}

func (s *memStore) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return nil, s.getErr
	}

	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, nil
	}
	trip, ok := s.trips[id]
	if !ok {
		return nil, nil
	}
	cp := *trip
	return &cp, nil
}

func (s *memStore) MarkTripConfirmed(ctx context.Context, tripId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := uuid.Parse(tripId)
	trip, ok := s.trips[id]
	if !ok || trip.IsConfirmed {
		return false, nil
	}
	trip.IsConfirmed = true
	return true, nil
}

func (s *memStore) GetParticipantById(ctx context.Context, participantId string) (*dbm.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return nil, s.getErr
	}

	id, err := uuid.Parse(participantId)
	if err != nil {
		return nil, nil
	}
	p, ok := s.participants[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) ListParticipantsByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	return s.list(tripId, false)
}

func (s *memStore) ListInviteesByTripId(ctx context.Context, tripId string) ([]dbm.Participant, error) {
	return s.list(tripId, true)
}

func (s *memStore) list(tripId string, inviteesOnly bool) ([]dbm.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	id, _ := uuid.Parse(tripId)
	var out []dbm.Participant
	for _, pid := range s.order {
		p := s.participants[pid]
		if p.TripID != id {
			continue
		}
		if inviteesOnly && p.IsOwner {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *memStore) MarkParticipantConfirmed(ctx context.Context, participantId string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := uuid.Parse(participantId)
	p, ok := s.participants[id]
	if !ok || p.IsConfirmed {
		return false, nil
	}
	p.IsConfirmed = true
	return true, nil
}

// fakeMailer records dispatched mail; the mutex matters because invitee
// notification fans out from multiple goroutines.
type fakeMailer struct {
	mu      sync.Mutex
	sendErr error

	ownerMails  []sentMail
	inviteMails []sentMail
}

type sentMail struct {
	to          string
	destination string
	confirmURL  string
}

func (m *fakeMailer) SendTripConfirmationRequest(toName, toEmail, destination string, startsAt, endsAt time.Time, confirmURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.ownerMails = append(m.ownerMails, sentMail{to: toEmail, destination: destination, confirmURL: confirmURL})
	return nil
}

func (m *fakeMailer) SendParticipantInvite(toEmail, destination string, startsAt, endsAt time.Time, confirmURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.inviteMails = append(m.inviteMails, sentMail{to: toEmail, destination: destination, confirmURL: confirmURL})
	return nil
}

func (m *fakeMailer) invites() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.inviteMails))
	copy(out, m.inviteMails)
	return out
}
