package dto

import (
	"royalstay/internal/domains/servicereq/model"
	"royalstay/shared/constant"
)

type CreateServiceRequestRequest struct {
	GuestID string `json:"guest_id" validate:"required"`
	Type    string `json:"type"     validate:"required,max=50"`
	Details string `json:"details"  validate:"omitempty,max=200"`
}

type UpdateServiceRequestStatusRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

type ServiceRequestResponse struct {
	ID          string `json:"id"`
	GuestID     string `json:"guest_id"`
	Type        string `json:"type"`
	Details     string `json:"details"`
	Status      string `json:"status"`
	RequestedOn string `json:"requested_on"`
}

func (r *ServiceRequestResponse) FromModel(mod model.ServiceRequest) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.Type = mod.Type
	r.Details = mod.Details
	r.Status = mod.Status
	r.RequestedOn = mod.RequestedOn.Format(constant.DateFormat)
}

type GetServiceRequestsResponse struct {
	ServiceRequests []ServiceRequestResponse `json:"service_requests"`
}

func (r *GetServiceRequestsResponse) FromModels(models []model.ServiceRequest) {
	r.ServiceRequests = make([]ServiceRequestResponse, len(models))
	for i, mod := range models {
		r.ServiceRequests[i].FromModel(mod)
	}
}
