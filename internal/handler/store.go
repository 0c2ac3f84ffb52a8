package handler // handler defines http handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/moviehub/movie-api/internal/repository"
)

// Handlers depend on these narrow store interfaces rather than on the
// concrete repositories so that tests can drive them with in-memory
// fakes. The repository types satisfy them.

type MovieStore interface {
	List(ctx context.Context) ([]repository.Movie, error)
	GetByTitle(ctx context.Context, title string) (repository.Movie, error)
	GetByID(ctx context.Context, id bson.ObjectID) (repository.Movie, error)
	GetByIDWithReviews(ctx context.Context, id bson.ObjectID) (repository.MovieWithReviews, error)
	Create(ctx context.Context, m *repository.Movie) error
	UpdateByTitle(ctx context.Context, title string, p repository.MoviePatch) (repository.Movie, error)
	DeleteByTitle(ctx context.Context, title string) error
}

type UserStore interface {
	Create(ctx context.Context, name, username, password string, cost int) (bson.ObjectID, error)
	GetByUsername(ctx context.Context, username string) (repository.User, error)
}

type ReviewStore interface {
	Create(ctx context.Context, rev *repository.Review) error
	ListWithMovieTitle(ctx context.Context) ([]repository.ReviewWithMovie, error)
}
