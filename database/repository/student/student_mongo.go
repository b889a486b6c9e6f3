package studentRepo

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

// MongoStudentRepo implements StudentRepository using MongoDB.
type MongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo creates a new instance of StudentRepository using MongoDB.
func NewMongoStudentRepo() StudentRepository {
	coll := database.MongoClient.Database("campushire").Collection("students")
	repo := &MongoStudentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoStudentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "universityId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new student document.
func (r *MongoStudentRepo) Create(student *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// Update modifies an existing student document.
func (r *MongoStudentRepo) Update(student *models.Student) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	student.UpdatedAt = time.Now()
	filter := bson.M{"id": student.ID}
	update := bson.M{"$set": student}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update student with id %s: %w", student.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with id %s not found", student.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update by id.
func (r *MongoStudentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update student with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("student with id %s not found", id)
	}
	return nil
}

// Delete removes a student document by its ID.
func (r *MongoStudentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete student with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("student with id %s not found", id)
	}
	return nil
}

// GetByIDWithProjection retrieves a student by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoStudentRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&student); err != nil {
		return nil, fmt.Errorf("failed to fetch student with id %s: %w", id, err)
	}
	return &student, nil
}

// GetByID retrieves a student by its unique ID (full document).
func (r *MongoStudentRepo) GetByID(id string) (*models.Student, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves a student by email. Returns nil when no document matches.
func (r *MongoStudentRepo) GetByEmail(email string) (*models.Student, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student with email %s: %w", email, err)
	}
	return &student, nil
}

// GetByUniversity retrieves all students registered under a university.
func (r *MongoStudentRepo) GetByUniversity(universityID string) ([]models.Student, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"universityId": universityID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, nil
}

// GetAll retrieves every student on the platform.
func (r *MongoStudentRepo) GetAll() ([]models.Student, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students: %w", err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	for cursor.Next(ctx) {
		var s models.Student
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, s)
	}
	return students, nil
}

// CountByUniversity counts students registered under a university.
func (r *MongoStudentRepo) CountByUniversity(universityID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"universityId": universityID})
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// CountByUniversityAndStatus counts students by placement status.
func (r *MongoStudentRepo) CountByUniversityAndStatus(universityID, status string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"universityId": universityID, "placementStatus": status})
	if err != nil {
		return 0, fmt.Errorf("failed to count students by status: %w", err)
	}
	return count, nil
}
