package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/moviehub/movie-api/internal/repository"
)

// ReviewHandler bundles dependencies for the review endpoints.
type ReviewHandler struct {
	Reviews ReviewStore
}

func NewReviewHandler(r ReviewStore) *ReviewHandler {
	return &ReviewHandler{Reviews: r}
}

// createReviewReq uses a pointer for Rating so that a legitimate rating
// of zero passes the required check; only an absent field fails it.
type createReviewReq struct {
	MovieID  string `json:"movieId" validate:"required"`
	Username string `json:"username" validate:"required"`
	Review   string `json:"review" validate:"required"`
	Rating   *int   `json:"rating" validate:"required"`
}

// Create persists a review against a movie id and returns an ack.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing review fields"})
	}
	movieID, err := bson.ObjectIDFromHex(req.MovieID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rev := repository.Review{
		MovieID:  movieID,
		Username: req.Username,
		Review:   req.Review,
		Rating:   *req.Rating,
	}
	if err := h.Reviews.Create(ctx, &rev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review created"})
}

// List returns all reviews, each expanded with the referenced movie's
// title.
func (h *ReviewHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Reviews.ListWithMovieTitle(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, reviews)
}
