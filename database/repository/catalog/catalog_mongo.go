package catalogRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"emviapp/database"
	"emviapp/models"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no service matches the query.
var ErrNotFound = errors.New("service not found")

const cacheTTL = 5 * time.Minute

// MongoServiceCatalogRepo implements ServiceCatalogRepository using MongoDB,
// with a Redis read-through cache on single-service lookups (every booking
// request hits the price lookup, so this is the hot path).
type MongoServiceCatalogRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoServiceCatalogRepo creates a new instance of ServiceCatalogRepository.
// The cache client may be nil, in which case every lookup goes to MongoDB.
func NewMongoServiceCatalogRepo(cache *redis.Client) ServiceCatalogRepository {
	coll := database.DB().Collection("services")
	repo := &MongoServiceCatalogRepo{coll: coll, cache: cache}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func (r *MongoServiceCatalogRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "active", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func cacheKey(id string) string {
	return "service:" + id
}

// GetByID retrieves a catalog service, consulting the cache first.
func (r *MongoServiceCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	if r.cache != nil {
		if data, err := r.cache.Get(ctx, cacheKey(id)).Result(); err == nil {
			var svc models.Service
			if err := json.Unmarshal([]byte(data), &svc); err == nil {
				return &svc, nil
			}
		}
	}

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}

	if r.cache != nil {
		if data, err := json.Marshal(svc); err == nil {
			// Cache write failures are ignored; the next lookup just misses.
			r.cache.Set(ctx, cacheKey(id), data, cacheTTL)
		}
	}
	return &svc, nil
}

// ListByArtist retrieves the active services offered by an artist.
func (r *MongoServiceCatalogRepo) ListByArtist(ctx context.Context, artistID string) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"artist_id": artistID, "active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list services for artist %s: %w", artistID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

// Create inserts a new catalog service.
func (r *MongoServiceCatalogRepo) Create(ctx context.Context, service *models.Service) error {
	service.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	if r.cache != nil {
		r.cache.Del(ctx, cacheKey(service.ID))
	}
	return nil
}
