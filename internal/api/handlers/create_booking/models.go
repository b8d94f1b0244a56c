package create_booking

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	createBooking "github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourseID     int64  `json:"courseId"`
	TeeID        int64  `json:"teeId"`
	Date         string `json:"date"` // "2026-09-03"
	Time         string `json:"time"` // "09:04"
	Participants int    `json:"participants"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64  `json:"id"`
	MemberID     int64  `json:"memberId"`
	CourseID     int64  `json:"courseId"`
	TeeID        int64  `json:"teeId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(memberID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		MemberID:     memberID,
		CourseID:     r.CourseID,
		TeeID:        r.TeeID,
		Date:         date,
		Time:         slotTime,
		Participants: r.Participants,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		MemberID:     resp.MemberID,
		CourseID:     resp.CourseID,
		TeeID:        resp.TeeID,
		Date:         resp.Date.Format(domain.DateFormat),
		Time:         resp.Time.String(),
		Participants: resp.Participants,
		Status:       resp.Status,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
