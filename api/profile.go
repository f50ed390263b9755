package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arjunsuryas/Flight-Booking/internal/auth"
	"github.com/Arjunsuryas/Flight-Booking/internal/domain"
	"github.com/Arjunsuryas/Flight-Booking/internal/service/profile"
)

type ProfileHandler struct {
	service profile.ProfileUseCase
}

func NewProfileHandler(service profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
	router.PUT("/", h.update)
}

type updateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type profileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (h *ProfileHandler) get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), auth.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

func (h *ProfileHandler) update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), auth.UserID(c), profile.UpdateInput{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(p))
}

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
	}
}
