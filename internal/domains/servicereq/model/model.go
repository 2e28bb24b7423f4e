package model

import (
	"time"

	"royalstay/shared/constant"
	"royalstay/shared/failure"
)

const (
	EntityName = "service request"
)

// ServiceRequest is an in-stay request a guest files with the desk, such as
// room cleaning or extra towels. Requests start out Pending and move through
// In Progress to Completed.
type ServiceRequest struct {
	ID          string
	GuestID     string
	Type        string
	Details     string
	Status      string
	RequestedOn time.Time
}

func New(id, guestID, requestType, details string, requestedOn time.Time) ServiceRequest {
	return ServiceRequest{
		ID:          id,
		GuestID:     guestID,
		Type:        requestType,
		Details:     details,
		Status:      constant.ServiceRequestStatusPending,
		RequestedOn: requestedOn,
	}
}

// SetStatus moves the request to the given status. Only the known statuses
// are accepted; a completed request cannot be reopened.
func (s *ServiceRequest) SetStatus(status string) error {
	switch status {
	case constant.ServiceRequestStatusPending,
		constant.ServiceRequestStatusInProgress,
		constant.ServiceRequestStatusCompleted:
	default:
		return failure.BadRequestFromString("unknown service request status: " + status)
	}

	if s.Status == constant.ServiceRequestStatusCompleted {
		return failure.Conflict("service request is already completed")
	}

	s.Status = status

	return nil
}
