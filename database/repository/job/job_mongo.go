package jobRepo

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

// MongoJobRepo implements JobRepository using MongoDB.
type MongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo creates a new instance of JobRepository using MongoDB.
func NewMongoJobRepo() JobRepository {
	coll := database.MongoClient.Database("campushire").Collection("jobs")
	repo := &MongoJobRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoJobRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "companyId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "requiredSkills", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new job document.
func (r *MongoJobRepo) Create(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// Update modifies an existing job document.
func (r *MongoJobRepo) Update(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	job.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": job.ID}, bson.M{"$set": job})
	if err != nil {
		return fmt.Errorf("failed to update job with id %s: %w", job.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", job.ID)
	}
	return nil
}

// Delete removes a job document by its ID.
func (r *MongoJobRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a job by its unique ID.
func (r *MongoJobRepo) GetByID(id string) (*models.Job, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var job models.Job
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job); err != nil {
		return nil, fmt.Errorf("failed to fetch job with id %s: %w", id, err)
	}
	return &job, nil
}

// GetByCompany retrieves all jobs posted by a company.
func (r *MongoJobRepo) GetByCompany(companyID string) ([]models.Job, error) {
	return r.findJobs(bson.M{"companyId": companyID}, 0)
}

// GetOpen retrieves all currently open jobs.
func (r *MongoJobRepo) GetOpen() ([]models.Job, error) {
	return r.findJobs(bson.M{"status": models.JobStatusOpen}, 0)
}

// List retrieves jobs matching the given filter.
func (r *MongoJobRepo) List(filter models.JobFilter) ([]models.Job, error) {
	query := bson.M{}
	if filter.CompanyID != "" {
		query["companyId"] = filter.CompanyID
	}
	if filter.JobType != "" {
		query["jobType"] = filter.JobType
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.Skill != "" {
		query["requiredSkills"] = filter.Skill
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	return r.findJobs(query, filter.Limit)
}

func (r *MongoJobRepo) findJobs(query bson.M, limit int64) ([]models.Job, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	for cursor.Next(ctx) {
		var j models.Job
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
