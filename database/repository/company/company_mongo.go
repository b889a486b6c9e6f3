package companyRepo

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

// MongoCompanyRepo implements CompanyRepository using MongoDB.
type MongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo creates a new instance of CompanyRepository using MongoDB.
func NewMongoCompanyRepo() CompanyRepository {
	coll := database.MongoClient.Database("campushire").Collection("companies")
	repo := &MongoCompanyRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCompanyRepo) ensureIndexes() error {
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

// Create inserts a new company document.
func (r *MongoCompanyRepo) Create(company *models.Company) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, company); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// Update modifies an existing company document.
func (r *MongoCompanyRepo) Update(company *models.Company) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	company.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": company.ID}, bson.M{"$set": company})
	if err != nil {
		return fmt.Errorf("failed to update company with id %s: %w", company.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("company with id %s not found", company.ID)
	}
	return nil
}

// Delete removes a company document by its ID.
func (r *MongoCompanyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete company with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("company with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a company by its unique ID.
func (r *MongoCompanyRepo) GetByID(id string) (*models.Company, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var company models.Company
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&company); err != nil {
		return nil, fmt.Errorf("failed to fetch company with id %s: %w", id, err)
	}
	return &company, nil
}

// GetByEmail retrieves a company by email. Returns nil when no document matches.
func (r *MongoCompanyRepo) GetByEmail(email string) (*models.Company, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var company models.Company
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&company); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch company with email %s: %w", email, err)
	}
	return &company, nil
}

// GetAll retrieves all companies.
func (r *MongoCompanyRepo) GetAll() ([]models.Company, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve companies: %w", err)
	}
	defer cursor.Close(ctx)

	var companies []models.Company
	for cursor.Next(ctx) {
		var co models.Company
		if err := cursor.Decode(&co); err != nil {
			return nil, fmt.Errorf("failed to decode company: %w", err)
		}
		companies = append(companies, co)
	}
	return companies, nil
}
