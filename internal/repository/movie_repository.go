// Package repository contains data access logic over the MongoDB
// collections. This file defines the Movie document and repository
// methods for movies. Title lookups are exact matches and return the
// first document in natural order when titles collide; the generated
// ObjectID is the canonical identity.
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Movie mirrors a document in the 'movies' collection.
type Movie struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string        `bson:"title" json:"title"`
	ReleaseDate string        `bson:"releaseDate" json:"releaseDate"`
	Genre       string        `bson:"genre" json:"genre"`
	Actors      []string      `bson:"actors" json:"actors"`
}

// MovieWithReviews is the result of the id lookup with the reviews join.
// Reviews is always present in the JSON output, empty when the movie has
// none.
type MovieWithReviews struct {
	Movie   `bson:",inline"`
	Reviews []Review `bson:"reviews" json:"reviews"`
}

// MoviePatch carries the fields of a partial movie update. Nil pointers
// and a nil Actors slice mean "leave unchanged".
type MoviePatch struct {
	Title       *string
	ReleaseDate *string
	Genre       *string
	Actors      []string
}

// MovieRepo manages persistence for movies.
type MovieRepo struct {
	c *mongo.Collection
}

func NewMovieRepo(db *mongo.Database) *MovieRepo {
	return &MovieRepo{c: db.Collection("movies")}
}

// List returns every movie document, unfiltered and in natural order.
func (r *MovieRepo) List(ctx context.Context) ([]Movie, error) {
	cur, err := r.c.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	movies := []Movie{}
	if err := cur.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetByTitle fetches the first movie with an exactly matching title.
func (r *MovieRepo) GetByTitle(ctx context.Context, title string) (Movie, error) {
	var m Movie
	err := r.c.FindOne(ctx, bson.M{"title": title}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Movie{}, ErrMovieNotFound
	}
	return m, err
}

// GetByID fetches a movie by its ObjectID.
func (r *MovieRepo) GetByID(ctx context.Context, id bson.ObjectID) (Movie, error) {
	var m Movie
	err := r.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Movie{}, ErrMovieNotFound
	}
	return m, err
}

// GetByIDWithReviews fetches a movie by ObjectID together with all reviews
// referencing it. The join follows the weak reference reviews.movieId;
// deleting a movie never touches its reviews, so the reverse join here is
// the only place the two collections meet.
func (r *MovieRepo) GetByIDWithReviews(ctx context.Context, id bson.ObjectID) (MovieWithReviews, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "reviews",
			"localField":   "_id",
			"foreignField": "movieId",
			"as":           "reviews",
		}}},
	}
	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return MovieWithReviews{}, err
	}
	var out []MovieWithReviews
	if err := cur.All(ctx, &out); err != nil {
		return MovieWithReviews{}, err
	}
	if len(out) == 0 {
		return MovieWithReviews{}, ErrMovieNotFound
	}
	if out[0].Reviews == nil {
		out[0].Reviews = []Review{}
	}
	return out[0], nil
}

// Create inserts a movie and populates its generated ID.
func (r *MovieRepo) Create(ctx context.Context, m *Movie) error {
	res, err := r.c.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		m.ID = id
	}
	return nil
}

// UpdateByTitle applies the patch to the first movie with a matching title
// and returns the post-update document.
func (r *MovieRepo) UpdateByTitle(ctx context.Context, title string, p MoviePatch) (Movie, error) {
	set := bson.M{}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.ReleaseDate != nil {
		set["releaseDate"] = *p.ReleaseDate
	}
	if p.Genre != nil {
		set["genre"] = *p.Genre
	}
	if p.Actors != nil {
		set["actors"] = p.Actors
	}
	if len(set) == 0 {
		// Nothing to change: behave like a plain title lookup.
		return r.GetByTitle(ctx, title)
	}
	var m Movie
	err := r.c.FindOneAndUpdate(ctx,
		bson.M{"title": title},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Movie{}, ErrMovieNotFound
	}
	return m, err
}

// DeleteByTitle removes the first movie with a matching title. Reviews
// referencing the movie are left in place.
func (r *MovieRepo) DeleteByTitle(ctx context.Context, title string) error {
	err := r.c.FindOneAndDelete(ctx, bson.M{"title": title}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrMovieNotFound
	}
	return err
}
