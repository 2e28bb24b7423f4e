package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"royalstay/config"
	guestDto "royalstay/internal/domains/guest/model/dto"
	guestRepository "royalstay/internal/domains/guest/repository"
	guestService "royalstay/internal/domains/guest/service"
	"royalstay/internal/domains/servicereq/model/dto"
	"royalstay/internal/domains/servicereq/repository"
	"royalstay/internal/domains/servicereq/service"
	"royalstay/shared/constant"
)

func newService(t *testing.T) (service.ServiceRequest, string) {
	t.Helper()

	guests := guestService.New(guestRepository.New(), &config.Config{})

	guest, err := guests.Register(context.Background(), guestDto.CreateGuestRequest{
		Name:    "Lina Hakim",
		Email:   "lina@example.com",
		Contact: "0561112233",
	})
	assert.NoError(t, err)

	return service.New(repository.New(), guests), guest.ID
}

func TestServiceRequestService_Create(t *testing.T) {
	svc, guestID := newService(t)

	res, err := svc.Create(context.Background(), dto.CreateServiceRequestRequest{
		GuestID: guestID,
		Type:    "Room Cleaning",
		Details: "Please service the room after 2pm",
	})
	assert.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, guestID, res.GuestID)
	assert.Equal(t, "Room Cleaning", res.Type)
	assert.Equal(t, constant.ServiceRequestStatusPending, res.Status)
	assert.NotEmpty(t, res.RequestedOn)
}

func TestServiceRequestService_CreateFailures(t *testing.T) {
	tests := []struct {
		name string
		req  func(guestID string) dto.CreateServiceRequestRequest
	}{
		{
			name: "missing type",
			req: func(guestID string) dto.CreateServiceRequestRequest {
				return dto.CreateServiceRequestRequest{GuestID: guestID}
			},
		},
		{
			name: "unknown guest",
			req: func(string) dto.CreateServiceRequestRequest {
				return dto.CreateServiceRequestRequest{GuestID: "nope", Type: "Laundry"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, guestID := newService(t)

			_, err := svc.Create(context.Background(), tt.req(guestID))
			assert.Error(t, err)

			list, err := svc.ListForGuest(context.Background(), guestID)
			assert.NoError(t, err)
			assert.Empty(t, list.ServiceRequests)
		})
	}
}

func TestServiceRequestService_ListForGuest(t *testing.T) {
	svc, guestID := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateServiceRequestRequest{GuestID: guestID, Type: "Room Cleaning"})
	assert.NoError(t, err)

	second, err := svc.Create(ctx, dto.CreateServiceRequestRequest{GuestID: guestID, Type: "Extra Towels"})
	assert.NoError(t, err)

	list, err := svc.ListForGuest(ctx, guestID)
	assert.NoError(t, err)
	assert.Len(t, list.ServiceRequests, 2)
	assert.Equal(t, first.ID, list.ServiceRequests[0].ID)
	assert.Equal(t, second.ID, list.ServiceRequests[1].ID)

	_, err = svc.ListForGuest(ctx, "nope")
	assert.Error(t, err)
}

func TestServiceRequestService_UpdateStatus(t *testing.T) {
	svc, guestID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateServiceRequestRequest{GuestID: guestID, Type: "Laundry"})
	assert.NoError(t, err)

	res, err := svc.UpdateStatus(ctx, created.ID, dto.UpdateServiceRequestStatusRequest{
		Status: constant.ServiceRequestStatusInProgress,
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.ServiceRequestStatusInProgress, res.Status)

	res, err = svc.UpdateStatus(ctx, created.ID, dto.UpdateServiceRequestStatusRequest{
		Status: constant.ServiceRequestStatusCompleted,
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.ServiceRequestStatusCompleted, res.Status)

	// A completed request cannot be reopened.
	_, err = svc.UpdateStatus(ctx, created.ID, dto.UpdateServiceRequestStatusRequest{
		Status: constant.ServiceRequestStatusPending,
	})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, dto.UpdateServiceRequestStatusRequest{Status: "Lost"})
	assert.Error(t, err)

	_, err = svc.UpdateStatus(ctx, "missing", dto.UpdateServiceRequestStatusRequest{
		Status: constant.ServiceRequestStatusCompleted,
	})
	assert.Error(t, err)
}
