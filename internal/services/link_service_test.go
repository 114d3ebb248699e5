package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "planner/internal/models/db_models"
	"planner/pkg/utils"
)

type fakeLinkRepo struct {
	links []dbm.Link
}

func (r *fakeLinkRepo) CreateLink(ctx context.Context, link *dbm.Link) (uuid.UUID, error) {
	link.ID = uuid.New()
	r.links = append(r.links, *link)
	return link.ID, nil
}

func (r *fakeLinkRepo) ListLinksByTripId(ctx context.Context, tripId string) ([]dbm.Link, error) {
	id, _ := uuid.Parse(tripId)
	var out []dbm.Link
	for _, l := range r.links {
		if l.TripID == id {
			out = append(out, l)
		}
	}
	return out, nil
}

func TestCreateLink_TripNotFound(t *testing.T) {
	svc := NewLinkService(&fakeLinkRepo{}, newMemStore())

	_, err := svc.CreateLink(context.Background(), uuid.NewString(), "Hotel booking", "https://example.com/booking")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestCreateLink_AndList(t *testing.T) {
	store := newMemStore()
	svc := NewLinkService(&fakeLinkRepo{}, store)
	tripId, _ := seedTrip(t, store)

	linkId, err := svc.CreateLink(context.Background(), tripId, "Hotel booking", "https://example.com/booking")
	require.NoError(t, err)
	require.NotEmpty(t, linkId)

	links, err := svc.ListLinksOfTrip(context.Background(), tripId)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, linkId, links[0].ID)
	assert.Equal(t, "Hotel booking", links[0].Title)
	assert.Equal(t, "https://example.com/booking", links[0].URL)
}
