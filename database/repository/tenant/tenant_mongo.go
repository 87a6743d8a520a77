package tenantRepo

import (
	"context"
	"fmt"
	"time"

	"barberflow/database"
	"barberflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTenantRepo implements TenantRepository using MongoDB.
type MongoTenantRepo struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

// NewMongoTenantRepo creates a new instance of TenantRepository using MongoDB.
func NewMongoTenantRepo() TenantRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	repo := &MongoTenantRepo{
		coll:  db.Collection("tenants"),
		users: db.Collection("tenant_users"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTenantRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phoneNumber", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "district", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create tenant indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.users.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create tenant user indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a tenant by its numeric ID.
func (r *MongoTenantRepo) GetByID(id int64) (*models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant with id %d: %w", id, err)
	}
	return &t, nil
}

// GetAll retrieves all tenants.
func (r *MongoTenantRepo) GetAll() ([]models.Tenant, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var tenants []models.Tenant
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("failed to decode tenants: %w", err)
	}
	return tenants, nil
}

// FindFirstActive retrieves the lowest-ID active tenant.
func (r *MongoTenantRepo) FindFirstActive() (*models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: 1}})
	var t models.Tenant
	if err := r.coll.FindOne(ctx, bson.M{"active": true}, opts).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch default tenant: %w", err)
	}
	return &t, nil
}

// FindByPhoneNumber retrieves the active tenant owning a WhatsApp number.
func (r *MongoTenantRepo) FindByPhoneNumber(phone string) (*models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Tenant
	err := r.coll.FindOne(ctx, bson.M{"phoneNumber": phone, "active": true}).Decode(&t)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant with phone %s: %w", phone, err)
	}
	return &t, nil
}

func cityFilter(city string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + escapeRegex(city) + "$", Options: "i"}
}

// FindByCity retrieves active tenants in a city, case-insensitively.
func (r *MongoTenantRepo) FindByCity(city string) ([]models.Tenant, error) {
	return r.findTenants(bson.M{"city": cityFilter(city), "active": true})
}

// FindByCityAndDistrict narrows FindByCity to a district.
func (r *MongoTenantRepo) FindByCityAndDistrict(city, district string) ([]models.Tenant, error) {
	return r.findTenants(bson.M{
		"city":     cityFilter(city),
		"district": primitive.Regex{Pattern: "^" + escapeRegex(district) + "$", Options: "i"},
		"active":   true,
	})
}

func (r *MongoTenantRepo) findTenants(filter bson.M) ([]models.Tenant, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to search tenants: %w", err)
	}
	defer cursor.Close(ctx)

	var tenants []models.Tenant
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("failed to decode tenants: %w", err)
	}
	return tenants, nil
}

// Create inserts a new tenant document, allocating its ID.
func (r *MongoTenantRepo) Create(t *models.Tenant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextSequence(ctx, "tenants")
	if err != nil {
		return err
	}
	t.ID = id

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

// Update modifies an existing tenant document.
func (r *MongoTenantRepo) Update(t *models.Tenant) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update tenant with id %d: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tenant with id %d not found", t.ID)
	}
	return nil
}

// Delete removes a tenant document by its ID.
func (r *MongoTenantRepo) Delete(id int64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tenant with id %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tenant with id %d not found", id)
	}
	return nil
}

// GetUserByUsername retrieves an active staff account by username.
func (r *MongoTenantRepo) GetUserByUsername(username string) (*models.TenantUser, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var u models.TenantUser
	err := r.users.FindOne(ctx, bson.M{"username": username, "active": true}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tenant user %s: %w", username, err)
	}
	return &u, nil
}

// CreateUser inserts a new staff account, allocating its ID.
func (r *MongoTenantRepo) CreateUser(u *models.TenantUser) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	id, err := database.NextSequence(ctx, "tenant_users")
	if err != nil {
		return err
	}
	u.ID = id
	u.CreatedAt = time.Now()

	if _, err := r.users.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create tenant user: %w", err)
	}
	return nil
}

func escapeRegex(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		for j := 0; j < len(special); j++ {
			if s[i] == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}
