package handlers

import (
	"net/http"

	"thanawyia/models"
	"thanawyia/services/review"
	"thanawyia/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves tutor reviews.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

func NewReviewHandler(rs review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: rs}
}

// ListTutorReviewsHandler handles GET /api/tutors/:id/reviews.
func (h *ReviewHandler) ListTutorReviewsHandler(c *gin.Context) {
	reviews, err := h.ReviewService.ListByTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "reviews", reviews)
}

// CreateReviewHandler handles POST /api/reviews. The reviewer is always the caller.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	id, _ := caller(c)
	var req models.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	req.StudentID = id

	created, agg, err := h.ReviewService.Create(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "review": created, "tutorRating": agg})
}
