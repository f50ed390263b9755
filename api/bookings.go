package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Arjunsuryas/Flight-Booking/internal/auth"
	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/metrics"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.DELETE("/:id", h.cancel)
}

type createBookingRequest struct {
	FlightID       string `json:"flight_id" binding:"required"`
	PassengerName  string `json:"passenger_name" binding:"required"`
	PassengerEmail string `json:"passenger_email" binding:"required,email"`
	PassengerPhone string `json:"passenger_phone" binding:"required"`
}

type bookingResponse struct {
	ID              string                 `json:"id"`
	Reference       string                 `json:"booking_reference"`
	FlightID        string                 `json:"flight_id"`
	PassengerName   string                 `json:"passenger_name"`
	PassengerEmail  string                 `json:"passenger_email"`
	PassengerPhone  string                 `json:"passenger_phone"`
	SeatNumber      string                 `json:"seat_number"`
	TotalPriceCents int64                  `json:"total_price_cents"`
	Status          string                 `json:"status"`
	CreatedAt       string                 `json:"created_at"`
	Flight          *flightSummaryResponse `json:"flight,omitempty"`
}

type flightSummaryResponse struct {
	FlightNumber  string `json:"flight_number"`
	Airline       string `json:"airline"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Reserve(c.Request.Context(), auth.UserID(c), booking.ReserveInput{
		FlightID:       req.FlightID,
		PassengerName:  req.PassengerName,
		PassengerEmail: req.PassengerEmail,
		PassengerPhone: req.PassengerPhone,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	metrics.BookingCreated()
	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListForUser(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	metrics.BookingCancelled()
	c.JSON(http.StatusOK, gin.H{"status": string(domain.BookingStatusCancelled)})
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:              b.ID,
		Reference:       b.Reference,
		FlightID:        b.FlightID,
		PassengerName:   b.PassengerName,
		PassengerEmail:  b.PassengerEmail,
		PassengerPhone:  b.PassengerPhone,
		SeatNumber:      b.SeatNumber,
		TotalPriceCents: b.TotalPriceCents,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
	if b.Flight != nil {
		resp.Flight = &flightSummaryResponse{
			FlightNumber:  b.Flight.FlightNumber,
			Airline:       b.Flight.Airline,
			Origin:        b.Flight.Origin,
			Destination:   b.Flight.Destination,
			DepartureTime: b.Flight.DepartureTime.Format(time.RFC3339),
			ArrivalTime:   b.Flight.ArrivalTime.Format(time.RFC3339),
		}
	}
	return resp
}
