package universityRepo

import (
	"context"
	"fmt"
	"time"

	"campushire/database"
	"campushire/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUniversityRepo implements UniversityRepository using MongoDB.
type MongoUniversityRepo struct {
	coll *mongo.Collection
}

// NewMongoUniversityRepo creates a new instance of UniversityRepository using MongoDB.
func NewMongoUniversityRepo() UniversityRepository {
	coll := database.MongoClient.Database("campushire").Collection("universities")
	repo := &MongoUniversityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUniversityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new university document.
func (r *MongoUniversityRepo) Create(university *models.University) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	university.CreatedAt = now
	university.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, university); err != nil {
		return fmt.Errorf("failed to create university: %w", err)
	}
	return nil
}

// Update modifies an existing university document.
func (r *MongoUniversityRepo) Update(university *models.University) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	university.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": university.ID}, bson.M{"$set": university})
	if err != nil {
		return fmt.Errorf("failed to update university with id %s: %w", university.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("university with id %s not found", university.ID)
	}
	return nil
}

// Delete removes a university document by its ID.
func (r *MongoUniversityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete university with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("university with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a university by its unique ID.
func (r *MongoUniversityRepo) GetByID(id string) (*models.University, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var university models.University
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&university); err != nil {
		return nil, fmt.Errorf("failed to fetch university with id %s: %w", id, err)
	}
	return &university, nil
}

// GetByEmail retrieves a university by email. Returns nil when no document matches.
func (r *MongoUniversityRepo) GetByEmail(email string) (*models.University, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var university models.University
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&university); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch university with email %s: %w", email, err)
	}
	return &university, nil
}

// GetAll retrieves all universities.
func (r *MongoUniversityRepo) GetAll() ([]models.University, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve universities: %w", err)
	}
	defer cursor.Close(ctx)

	var universities []models.University
	for cursor.Next(ctx) {
		var u models.University
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode university: %w", err)
		}
		universities = append(universities, u)
	}
	return universities, nil
}
