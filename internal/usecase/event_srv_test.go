package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"celebrity-booking/internal/data/entity"
	"celebrity-booking/internal/data/repository"
	"celebrity-booking/internal/dto/request"
	"celebrity-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type eventFixture struct {
	svc         EventService
	events      *MockEventRepo
	celebrities *MockCelebrityRepo
	audit       *stubAudit
}

func newEventFixture() *eventFixture {
	f := &eventFixture{
		events:      &MockEventRepo{},
		celebrities: &MockCelebrityRepo{},
		audit:       &stubAudit{},
	}
	repo := &repository.Repository{Event: f.events, Celebrity: f.celebrities}
	f.svc = NewEventService(repo, &fakeTx{}, f.audit, zap.NewNop())
	return f
}

func TestUpdateEvent_StampsUpdatedAt(t *testing.T) {
	f := newEventFixture()
	ctx := context.Background()
	event := upcomingEvent(100, 0)
	old := time.Now().Add(-30 * 24 * time.Hour)
	event.UpdatedAt = old
	title := "Farewell Tour"

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)
	f.events.On("Update", ctx, mock.MatchedBy(func(e *entity.Event) bool {
		return e.UpdatedAt.After(old) && e.Title == title
	})).Return(nil)

	resp, err := f.svc.Update(ctx, event.ID, &request.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, resp.Title)
	f.events.AssertExpectations(t)
	require.Len(t, f.audit.calls, 1)
	assert.Equal(t, title, f.audit.calls[0].Changes["title"])
}

func TestUpdateEvent_EndsBeforeStart(t *testing.T) {
	f := newEventFixture()
	ctx := context.Background()
	event := upcomingEvent(100, 0)
	endsAt := event.StartsAt.Add(-time.Minute)

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)

	_, err := f.svc.Update(ctx, event.ID, &request.UpdateEventRequest{EndsAt: &endsAt})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
	f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateEvent_MovedStartPastExistingEnd(t *testing.T) {
	f := newEventFixture()
	ctx := context.Background()
	event := upcomingEvent(100, 0)
	startsAt := event.EndsAt

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)

	_, err := f.svc.Update(ctx, event.ID, &request.UpdateEventRequest{StartsAt: &startsAt})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestUpdateEvent_CapacityFloor(t *testing.T) {
	tests := []struct {
		name       string
		capacity   int
		wantStatus int
	}{
		{"below sold", 9, http.StatusBadRequest},
		{"equal to sold", 10, 0},
		{"above sold", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEventFixture()
			ctx := context.Background()
			event := upcomingEvent(100, 10)

			f.events.On("FindByID", ctx, event.ID).Return(event, nil)
			f.events.On("Update", ctx, event).Return(nil)

			resp, err := f.svc.Update(ctx, event.ID, &request.UpdateEventRequest{Capacity: &tt.capacity})
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, utils.StatusCode(err))
				f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.capacity-10, resp.RemainingTickets)
		})
	}
}

func TestUpdateEvent_NegativePrice(t *testing.T) {
	f := newEventFixture()
	ctx := context.Background()
	event := upcomingEvent(100, 0)
	price := decimal.NewFromInt(-1)

	f.events.On("FindByID", ctx, event.ID).Return(event, nil)

	_, err := f.svc.Update(ctx, event.ID, &request.UpdateEventRequest{TicketPrice: &price})
	assert.Equal(t, http.StatusBadRequest, utils.StatusCode(err))
}

func TestCreateEvent_UnknownCelebrity(t *testing.T) {
	f := newEventFixture()
	ctx := context.Background()
	event := upcomingEvent(100, 0)

	f.celebrities.On("FindByID", ctx, event.CelebrityID).Return(nil, nil)

	_, err := f.svc.Create(ctx, &request.CreateEventRequest{
		CelebrityID: event.CelebrityID.String(),
		Title:       "Meet & Greet",
		Venue:       "Arena",
		Location:    "Lagos",
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Capacity:    100,
	})
	assert.Equal(t, http.StatusNotFound, utils.StatusCode(err))
	f.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
