package resdto

import (
	"time"

	"vehicle-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID          string  `json:"id"`
	VehicleID   int64   `json:"vehicle_id"`
	CustomerID  string  `json:"customer_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Status      string  `json:"status"`
	ActivatedAt *string `json:"activated_at,omitempty"`
	FinishedAt  *string `json:"finished_at,omitempty"`
	CanceledAt  *string `json:"canceled_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type BookingListResponse struct {
	ID         string `json:"id"`
	VehicleID  int64  `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID.String(),
		VehicleID:   v.VehicleID,
		CustomerID:  v.CustomerID,
		StartDate:   v.StartDate.Format(time.DateOnly),
		EndDate:     v.EndDate.Format(time.DateOnly),
		Status:      v.Status,
		ActivatedAt: formatDatePtr(v.ActivatedAt),
		FinishedAt:  formatDatePtr(v.FinishedAt),
		CanceledAt:  formatDatePtr(v.CanceledAt),
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         item.ID.String(),
		VehicleID:  item.VehicleID,
		CustomerID: item.CustomerID,
		StartDate:  item.StartDate.Format(time.DateOnly),
		EndDate:    item.EndDate.Format(time.DateOnly),
		Status:     item.Status,
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	result := make([]*BookingListResponse, len(items))
	for i, item := range items {
		result[i] = FromBookingListItem(item)
	}
	return result
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}
