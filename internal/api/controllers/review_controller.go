package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnation/internal/models/request_models"
	"tripnation/internal/services"
	"tripnation/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Review a trip
// @Description Add a comment, a 1 to 5 rating and optional photo links for a finished trip
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 201 {object} utils.APIResponse{data=response_models.ReviewResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (rc *ReviewController) AddReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := rc.reviewService.AddReview(c.Request.Context(), userID, req.TripTitle, req.Rating, req.Comment, req.Photos)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, review, "Review added successfully")
}

// ListReviews godoc
// @Summary List reviews
// @Description Get a paginated list of reviews, optionally only one rating
// @Tags Reviews
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20) minimum(1) maximum(100)
// @Param rating query int false "Only this rating" minimum(1) maximum(5)
// @Success 200 {object} utils.APIResponse
// @Router /reviews [get]
func (rc *ReviewController) ListReviews(c *gin.Context) {
	var req request_models.ListReviewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	reviews, err := rc.reviewService.ListReviews(c.Request.Context(), req.Page, req.PageSize, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
