package mongo

import (
	"context"
	"errors"
	"time"

	"fitlog/trainee-portal/internal/domain"
	"fitlog/trainee-portal/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const credentialCollectionName = "trainee_auth"

// mongoCredentialRepository implements repository.CredentialRepository using MongoDB.
type mongoCredentialRepository struct {
	collection *mongo.Collection
}

// NewMongoCredentialRepository creates a new instance of mongoCredentialRepository.
func NewMongoCredentialRepository(db *mongo.Database) repository.CredentialRepository {
	return &mongoCredentialRepository{
		collection: db.Collection(credentialCollectionName),
	}
}

// GetActiveByPhone retrieves an active credential row by phone.
func (r *mongoCredentialRepository) GetActiveByPhone(ctx context.Context, phone string) (*domain.Credential, error) {
	var credential domain.Credential
	filter := bson.M{"phone": phone, "is_active": true}

	err := r.collection.FindOne(ctx, filter).Decode(&credential)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &credential, nil
}

// UpdateLastLogin stamps the credential row with the time of a successful
// login. Informational only; callers treat failures as non-fatal.
func (r *mongoCredentialRepository) UpdateLastLogin(ctx context.Context, credentialID string, at time.Time) error {
	filter := bson.M{"_id": credentialID}
	update := bson.M{"$set": bson.M{"last_login": at.UTC()}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureCredentialIndexes creates necessary indexes for the trainee_auth collection.
func EnsureCredentialIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"is_active": true}),
		},
		{
			Keys:    bson.D{{Key: "trainee_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
