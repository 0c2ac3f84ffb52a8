package handler

// In-memory store fakes implementing the handler store interfaces. They
// mirror the repository semantics: first-match title lookups, generated
// ObjectIDs, weak review references, sentinel errors. Setting err on a
// fake makes every call fail with it.

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/moviehub/movie-api/internal/repository"
	"github.com/moviehub/movie-api/internal/utils"
)

// errFakeStore stands in for an arbitrary persistence failure.
var errFakeStore = errors.New("store unavailable")

type fakeMovieStore struct {
	movies  []repository.Movie
	reviews []repository.Review
	err     error
}

func (f *fakeMovieStore) List(ctx context.Context) ([]repository.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]repository.Movie{}, f.movies...), nil
}

func (f *fakeMovieStore) GetByTitle(ctx context.Context, title string) (repository.Movie, error) {
	if f.err != nil {
		return repository.Movie{}, f.err
	}
	for _, m := range f.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return repository.Movie{}, repository.ErrMovieNotFound
}

func (f *fakeMovieStore) GetByID(ctx context.Context, id bson.ObjectID) (repository.Movie, error) {
	if f.err != nil {
		return repository.Movie{}, f.err
	}
	for _, m := range f.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return repository.Movie{}, repository.ErrMovieNotFound
}

func (f *fakeMovieStore) GetByIDWithReviews(ctx context.Context, id bson.ObjectID) (repository.MovieWithReviews, error) {
	m, err := f.GetByID(ctx, id)
	if err != nil {
		return repository.MovieWithReviews{}, err
	}
	out := repository.MovieWithReviews{Movie: m, Reviews: []repository.Review{}}
	for _, r := range f.reviews {
		if r.MovieID == id {
			out.Reviews = append(out.Reviews, r)
		}
	}
	return out, nil
}

func (f *fakeMovieStore) Create(ctx context.Context, m *repository.Movie) error {
	if f.err != nil {
		return f.err
	}
	m.ID = bson.NewObjectID()
	f.movies = append(f.movies, *m)
	return nil
}

func (f *fakeMovieStore) UpdateByTitle(ctx context.Context, title string, p repository.MoviePatch) (repository.Movie, error) {
	if f.err != nil {
		return repository.Movie{}, f.err
	}
	for i, m := range f.movies {
		if m.Title != title {
			continue
		}
		if p.Title != nil {
			m.Title = *p.Title
		}
		if p.ReleaseDate != nil {
			m.ReleaseDate = *p.ReleaseDate
		}
		if p.Genre != nil {
			m.Genre = *p.Genre
		}
		if p.Actors != nil {
			m.Actors = p.Actors
		}
		f.movies[i] = m
		return m, nil
	}
	return repository.Movie{}, repository.ErrMovieNotFound
}

func (f *fakeMovieStore) DeleteByTitle(ctx context.Context, title string) error {
	if f.err != nil {
		return f.err
	}
	for i, m := range f.movies {
		if m.Title == title {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			return nil
		}
	}
	return repository.ErrMovieNotFound
}

type fakeUserStore struct {
	users map[string]repository.User
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]repository.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, name, username, password string, cost int) (bson.ObjectID, error) {
	if f.err != nil {
		return bson.ObjectID{}, f.err
	}
	if _, ok := f.users[username]; ok {
		return bson.ObjectID{}, repository.ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return bson.ObjectID{}, err
	}
	u := repository.User{ID: bson.NewObjectID(), Name: name, Username: username, Password: hash}
	f.users[username] = u
	return u.ID, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (repository.User, error) {
	if f.err != nil {
		return repository.User{}, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

type fakeReviewStore struct {
	reviews []repository.Review
	titles  map[bson.ObjectID]string
	err     error
}

func (f *fakeReviewStore) Create(ctx context.Context, rev *repository.Review) error {
	if f.err != nil {
		return f.err
	}
	rev.ID = bson.NewObjectID()
	f.reviews = append(f.reviews, *rev)
	return nil
}

func (f *fakeReviewStore) ListWithMovieTitle(ctx context.Context) ([]repository.ReviewWithMovie, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []repository.ReviewWithMovie{}
	for _, r := range f.reviews {
		out = append(out, repository.ReviewWithMovie{Review: r, MovieTitle: f.titles[r.MovieID]})
	}
	return out, nil
}

// newJSONContext builds an echo context for a JSON request and a recorder
// capturing the response.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
