package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"barberflow/database"
	"barberflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "active", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

// GetByIDAndTenant retrieves an active service by ID within a tenant.
func (r *MongoServiceRepo) GetByIDAndTenant(id, tenantID int64) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tenantId": tenantID, "active": true}
	var s models.Service
	if err := r.coll.FindOne(ctx, filter).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %d for tenant %d: %w", id, tenantID, err)
	}
	return &s, nil
}

// FindActiveByTenant retrieves a tenant's active services ordered by sortOrder.
func (r *MongoServiceRepo) FindActiveByTenant(tenantID int64) ([]models.Service, error) {
	return r.find(bson.M{"tenantId": tenantID, "active": true})
}

// FindAllByTenant retrieves all of a tenant's services, active or not.
func (r *MongoServiceRepo) FindAllByTenant(tenantID int64) ([]models.Service, error) {
	return r.find(bson.M{"tenantId": tenantID})
}

func (r *MongoServiceRepo) find(filter bson.M) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	sort := bson.D{{Key: "sortOrder", Value: 1}, {Key: "id", Value: 1}}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// Create inserts a new service document, allocating its ID.
func (r *MongoServiceRepo) Create(s *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextSequence(ctx, "services")
	if err != nil {
		return err
	}
	s.ID = id

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update modifies an existing service document.
func (r *MongoServiceRepo) Update(s *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("failed to update service with id %d: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %d not found", s.ID)
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %d not found", id)
	}
	return nil
}
