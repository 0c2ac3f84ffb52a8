package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/moviehub/movie-api/internal/repository"
)

// MovieHandler bundles dependencies for the movie CRUD endpoints.
type MovieHandler struct {
	Movies MovieStore
}

func NewMovieHandler(m MovieStore) *MovieHandler {
	return &MovieHandler{Movies: m}
}

// ----- DTOs -----

type createMovieReq struct {
	Title       string   `json:"title" validate:"required"`
	ReleaseDate string   `json:"releaseDate" validate:"required"`
	Genre       string   `json:"genre" validate:"required"`
	Actors      []string `json:"actors" validate:"required,min=1,dive,required"`
}

type updateMovieReq struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	ReleaseDate *string  `json:"releaseDate" validate:"omitempty,min=1"`
	Genre       *string  `json:"genre" validate:"omitempty,min=1"`
	Actors      []string `json:"actors" validate:"omitempty,min=1,dive,required"`
}

// List returns every movie, unfiltered and unpaginated.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	movies, err := h.Movies.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, movies)
}

// Get resolves the path segment as either a canonical id or a title.
// A segment that parses as an ObjectID is looked up by identity, and
// ?reviews=true additionally joins the movie's reviews. Anything else is
// an exact title match: first document wins when titles collide.
func (h *MovieHandler) Get(c echo.Context) error {
	key := c.Param("title")
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if c.QueryParam("reviews") == "true" {
		id, err := bson.ObjectIDFromHex(key)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "malformed movie id"})
		}
		mv, err := h.Movies.GetByIDWithReviews(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, mv)
	}

	if id, err := bson.ObjectIDFromHex(key); err == nil {
		m, err := h.Movies.GetByID(ctx, id)
		if err == nil {
			return c.JSON(http.StatusOK, m)
		}
		if !errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		// No movie has this id; fall through to a title lookup.
	}

	m, err := h.Movies.GetByTitle(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

// Create persists a new movie and returns it with its generated id.
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := repository.Movie{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		Genre:       req.Genre,
		Actors:      req.Actors,
	}
	if err := h.Movies.Create(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

// Update applies a partial patch to the first movie matching the title
// and returns the updated document. Applying the same patch twice leaves
// the document unchanged.
func (h *MovieHandler) Update(c echo.Context) error {
	title := c.Param("title")

	var req updateMovieReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie fields"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Movies.UpdateByTitle(ctx, title, repository.MoviePatch{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		Genre:       req.Genre,
		Actors:      req.Actors,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, m)
}

// Delete removes the first movie matching the title. Reviews referencing
// the movie are kept.
func (h *MovieHandler) Delete(c echo.Context) error {
	title := c.Param("title")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Movies.DeleteByTitle(ctx, title); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "movie deleted successfully"})
}
