package applicationRepo

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

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo creates a new instance of ApplicationRepository using MongoDB.
func NewMongoApplicationRepo() ApplicationRepository {
	coll := database.MongoClient.Database("campushire").Collection("applications")
	repo := &MongoApplicationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoApplicationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "studentId", Value: 1}, {Key: "jobId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "universityId", Value: 1}}},
		{Keys: bson.D{{Key: "jobId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new application document.
func (r *MongoApplicationRepo) Create(app *models.Application) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.AppliedAt = now
	app.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its unique ID.
func (r *MongoApplicationRepo) GetByID(id string) (*models.Application, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.Application
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		return nil, fmt.Errorf("failed to fetch application with id %s: %w", id, err)
	}
	return &app, nil
}

// GetByStudent retrieves all applications filed by a student.
func (r *MongoApplicationRepo) GetByStudent(studentID string) ([]models.Application, error) {
	return r.findApplications(bson.M{"studentId": studentID})
}

// GetByJob retrieves all applications for a job posting.
func (r *MongoApplicationRepo) GetByJob(jobID string) ([]models.Application, error) {
	return r.findApplications(bson.M{"jobId": jobID})
}

// ExistsForStudentAndJob reports whether the student already applied to the job.
func (r *MongoApplicationRepo) ExistsForStudentAndJob(studentID, jobID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"studentId": studentID, "jobId": jobID})
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus transitions an application to the given status.
func (r *MongoApplicationRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update application %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}

// CountByUniversity counts applications filed by a university's students.
func (r *MongoApplicationRepo) CountByUniversity(universityID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"universityId": universityID})
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return count, nil
}

// CountByUniversityGroupedByStatus aggregates application counts per status.
func (r *MongoApplicationRepo) CountByUniversityGroupedByStatus(universityID string) (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"universityId": universityID}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate applications: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode aggregation row: %w", err)
		}
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *MongoApplicationRepo) findApplications(query bson.M) ([]models.Application, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	for cursor.Next(ctx) {
		var a models.Application
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}
