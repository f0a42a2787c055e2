package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/snapshot/storefront/internal/core/domain"
)

const collectionContacts = "contacts"

type ContactRepository struct {
	col *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{col: db.Collection(collectionContacts)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (r *ContactRepository) Create(ctx context.Context, msg *domain.ContactMessage) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoContact{
		ID:        primitive.NewObjectID(),
		Name:      msg.Name,
		Email:     msg.Email,
		Phone:     msg.Phone,
		Subject:   msg.Subject,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	msg.ID = doc.ID.Hex()
	return nil
}

// List returns all messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoContact
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}

	msgs := make([]*domain.ContactMessage, len(docs))
	for i, d := range docs {
		msgs[i] = &domain.ContactMessage{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Email:     d.Email,
			Phone:     d.Phone,
			Subject:   d.Subject,
			Message:   d.Message,
			CreatedAt: d.CreatedAt.UTC(),
		}
	}
	return msgs, nil
}

func (r *ContactRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}
