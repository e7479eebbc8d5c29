package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripnation/internal/models/request_models"
	"tripnation/internal/services"
	"tripnation/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{tripService: tripService}
}

// ListTrips godoc
// @Summary List my trips
// @Tags Trips
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Router /trips [get]
func (tc *TripController) ListTrips(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.ListTripsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid pagination")
		return
	}

	trips, err := tc.tripService.ListTrips(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Fetched trips successfully")
}

// CreateTrip godoc
// @Summary Plan a trip of my own
// @Tags Trips
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip"
// @Success 201 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (tc *TripController) CreateTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, sport, start date and end date are required")
		return
	}

	trip, err := tc.tripService.CreateUserTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip created")
}

// AddPackageInterest godoc
// @Summary Join a packaged trip
// @Tags Trips
// @Security BearerAuth
// @Param id path int true "Package ID"
// @Success 201 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 409 {object} utils.APIResponse "Trip already added"
// @Router /trips/packages/{id}/interest [post]
func (tc *TripController) AddPackageInterest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	packageID, ok := intParam(c, "id")
	if !ok {
		return
	}

	trip, err := tc.tripService.AddPackageInterest(c.Request.Context(), userID, packageID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, trip, "Trip added")
}

// GetTrip godoc
// @Summary Get one of my trips
// @Tags Trips
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [get]
func (tc *TripController) GetTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	trip, err := tc.tripService.GetTrip(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Fetched trip successfully")
}

// UpdateTrip godoc
// @Summary Edit a trip
// @Description Packaged trips keep destination, sport, budget and visibility of their package.
// @Tags Trips
// @Security BearerAuth
// @Accept json
// @Param id path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse{data=response_models.TripResponse}
// @Failure 422 {object} utils.APIResponse "Locked field"
// @Router /trips/{id} [put]
func (tc *TripController) UpdateTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	trip, err := tc.tripService.UpdateTrip(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Trips
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id} [delete]
func (tc *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := tc.tripService.DeleteTrip(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Trip deleted")
}

// Checkout godoc
// @Summary Payment summary of a trip
// @Tags Trips
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param insurance query bool false "Add travel insurance" default(true)
// @Success 200 {object} utils.APIResponse{data=response_models.CheckoutResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{id}/checkout [get]
func (tc *TripController) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	withInsurance, err := strconv.ParseBool(c.DefaultQuery("insurance", "true"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid insurance flag")
		return
	}

	checkout, err := tc.tripService.QuoteTrip(c.Request.Context(), userID, c.Param("id"), withInsurance)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, checkout, "Checkout computed")
}
