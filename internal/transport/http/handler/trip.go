package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/app"
	"tripplanner/internal/model"
	"tripplanner/internal/transport/http/middleware"
	"tripplanner/internal/transport/http/response"
)

type TripHandler struct {
	tripService *app.TripService
}

type CreateTripRequest struct {
	Name        string  `json:"name" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Description *string `json:"description"`
	Budget      *string `json:"budget"`
}

// UpdateTripRequest fields are pointers so an absent key is distinguishable
// from an explicit value; absent fields are left unchanged.
type UpdateTripRequest struct {
	Name        *string `json:"name"`
	Destination *string `json:"destination"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
	Budget      *string `json:"budget"`
}

func NewTripHandler(tripService *app.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

func (h *TripHandler) List(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	trips, err := h.tripService.List(c.Request.Context(), identity.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Error listing trips")
		return
	}

	payload := make([]gin.H, 0, len(trips))
	for _, trip := range trips {
		payload = append(payload, tripJSON(trip))
	}
	response.OK(c, http.StatusOK, gin.H{
		"trips": payload,
	})
}

func (h *TripHandler) Get(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tripID, ok := tripIDParam(c)
	if !ok {
		response.Fail(c, http.StatusNotFound, "Trip not found")
		return
	}

	trip, err := h.tripService.Get(c.Request.Context(), identity.UserID, tripID)
	if err != nil {
		h.failTrip(c, err, "Error fetching trip")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"trip": tripJSON(*trip),
	})
}

func (h *TripHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Missing required fields: name, destination, start_date, end_date")
		return
	}

	trip, err := h.tripService.Create(c.Request.Context(), app.CreateTripInput{
		UserID:      identity.UserID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		h.failTrip(c, err, "Error creating trip")
		return
	}

	response.OK(c, http.StatusCreated, gin.H{
		"message": "Trip created successfully",
		"trip":    tripJSON(*trip),
	})
}

func (h *TripHandler) Update(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tripID, ok := tripIDParam(c)
	if !ok {
		response.Fail(c, http.StatusNotFound, "Trip not found")
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip, err := h.tripService.Update(c.Request.Context(), app.UpdateTripInput{
		UserID:      identity.UserID,
		TripID:      tripID,
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		h.failTrip(c, err, "Error updating trip")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": "Trip updated successfully",
		"trip":    tripJSON(*trip),
	})
}

func (h *TripHandler) Delete(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tripID, ok := tripIDParam(c)
	if !ok {
		response.Fail(c, http.StatusNotFound, "Trip not found")
		return
	}

	if err := h.tripService.Delete(c.Request.Context(), identity.UserID, tripID); err != nil {
		h.failTrip(c, err, "Error deleting trip")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message": "Trip deleted successfully",
	})
}

func (h *TripHandler) failTrip(c *gin.Context, err error, internalMessage string) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		response.Fail(c, http.StatusBadRequest, "Validation failed")
	case errors.Is(err, app.ErrTripNotFound):
		response.Fail(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, app.ErrTripAccess):
		response.Fail(c, http.StatusForbidden, "Access denied")
	default:
		response.Fail(c, http.StatusInternalServerError, internalMessage)
	}
}

func tripIDParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}

func tripJSON(trip model.Trip) gin.H {
	return gin.H{
		"id":          trip.ID,
		"name":        trip.Name,
		"description": trip.Description,
		"destination": trip.Destination,
		"start_date":  app.FormatTripDate(trip.StartDate),
		"end_date":    app.FormatTripDate(trip.EndDate),
		"budget":      trip.Budget,
		"created_at":  app.FormatTripDate(trip.CreatedAt),
		"updated_at":  app.FormatTripDate(trip.UpdatedAt),
	}
}
