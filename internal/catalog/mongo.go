package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"myflix/internal/domain"
)

const moviesCollectionName = "movies"

// MongoStore implementa Store sobre una colección de MongoDB.
type MongoStore struct {
	movies *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{
		movies: client.Database(database).Collection(moviesCollectionName),
	}
}

func (s *MongoStore) FindAll(ctx context.Context) ([]domain.Movie, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (domain.Movie, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) FindByTitle(ctx context.Context, title string) (domain.Movie, error) {
	return s.findOne(ctx, bson.M{"title": exactCaseInsensitive(title)})
}

func (s *MongoStore) FindByGenre(ctx context.Context, name string) ([]domain.Movie, error) {
	return s.find(ctx, bson.M{"genre.name": exactCaseInsensitive(name)})
}

func (s *MongoStore) FindByDirector(ctx context.Context, name string) ([]domain.Movie, error) {
	return s.find(ctx, bson.M{"director.name": exactCaseInsensitive(name)})
}

func (s *MongoStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.movies.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("count movies: %w", err)
	}
	return n > 0, nil
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (domain.Movie, error) {
	var movie domain.Movie
	err := s.movies.FindOne(ctx, filter).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Movie{}, ErrNotFound
	}
	if err != nil {
		return domain.Movie{}, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}

func (s *MongoStore) find(ctx context.Context, filter bson.M) ([]domain.Movie, error) {
	cursor, err := s.movies.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []domain.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func exactCaseInsensitive(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
