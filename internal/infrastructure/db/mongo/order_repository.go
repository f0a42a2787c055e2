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

const collectionOrders = "orders"

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

type mongoOrderItem struct {
	ProductID int     `bson:"productId"`
	Name      string  `bson:"name"`
	Price     float64 `bson:"price"`
	Quantity  int     `bson:"quantity"`
}

type mongoOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Items     []mongoOrderItem   `bson:"items"`
	Total     float64            `bson:"total"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address"`
	Phone     string             `bson:"phone"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (m *mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
		}
	}
	return &domain.Order{
		ID:        m.ID.Hex(),
		Items:     items,
		Total:     m.Total,
		Name:      m.Name,
		Email:     m.Email,
		Address:   m.Address,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// Create inserts the order and sets its ID.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	items := make([]mongoOrderItem, len(order.Items))
	for i, it := range order.Items {
		items[i] = mongoOrderItem(it)
	}

	doc := mongoOrder{
		ID:        primitive.NewObjectID(),
		Items:     items,
		Total:     order.Total,
		Name:      order.Name,
		Email:     order.Email,
		Address:   order.Address,
		Phone:     order.Phone,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = doc.ID.Hex()
	return nil
}

// List returns all orders, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoOrder
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]*domain.Order, len(docs))
	for i := range docs {
		orders[i] = docs[i].toDomain()
	}
	return orders, nil
}

// EnsureIndexes creates the indexes backing the order listing and the
// per-email history lookup.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
