package customerRepo

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

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo creates a new instance of CustomerRepository using MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("customers")
	repo := &MongoCustomerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "tenantId", Value: 1}, {Key: "phoneNumber", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a customer by its numeric ID.
func (r *MongoCustomerRepo) GetByID(id int64) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var c models.Customer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer with id %d: %w", id, err)
	}
	return &c, nil
}

// GetByPhoneAndTenant retrieves an active customer by phone within a tenant.
func (r *MongoCustomerRepo) GetByPhoneAndTenant(phone string, tenantID int64) (*models.Customer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"phoneNumber": phone, "tenantId": tenantID, "active": true}
	var c models.Customer
	if err := r.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch customer %s for tenant %d: %w", phone, tenantID, err)
	}
	return &c, nil
}

// FindAllByTenant retrieves all active customers of a tenant.
func (r *MongoCustomerRepo) FindAllByTenant(tenantID int64) ([]models.Customer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"tenantId": tenantID, "active": true}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customers for tenant %d: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

// Create inserts a new customer document, allocating its ID.
func (r *MongoCustomerRepo) Create(c *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextSequence(ctx, "customers")
	if err != nil {
		return err
	}
	c.ID = id

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// Update modifies an existing customer document.
func (r *MongoCustomerRepo) Update(c *models.Customer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	c.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, bson.M{"$set": c})
	if err != nil {
		return fmt.Errorf("failed to update customer with id %d: %w", c.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("customer with id %d not found", c.ID)
	}
	return nil
}
