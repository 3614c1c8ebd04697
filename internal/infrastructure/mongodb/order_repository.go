package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/domain/repositories"
	"storefront-service/internal/infrastructure/logger"
)

type OrderRepositoryMongo struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

func NewOrderRepositoryMongo(db *mongo.Database, logger *logger.Logger) (*OrderRepositoryMongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.Collection("orders")

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &OrderRepositoryMongo{
		collection: collection,
		logger:     logger,
	}, nil
}

func (r *OrderRepositoryMongo) Create(ctx context.Context, order *entities.Order) error {
	doc := toOrderDocument(order)

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrOrderAlreadyExists
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}

	r.logger.Info("Order stored",
		"order_id", order.OrderID,
		"total_amount", order.TotalAmount)
	return nil
}

func toOrderDocument(order *entities.Order) *OrderDocument {
	doc := &OrderDocument{
		OrderID:       order.OrderID,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Status:        order.Status,
		CreatedAt:     order.CreatedAt,
		Items:         make([]OrderItemDocument, len(order.Items)),
		ShippingAddress: ShippingAddressDocument{
			FirstName:  order.ShippingAddress.FirstName,
			LastName:   order.ShippingAddress.LastName,
			Email:      order.ShippingAddress.Email,
			Phone:      order.ShippingAddress.Phone,
			Street:     order.ShippingAddress.Street,
			PostalCode: order.ShippingAddress.PostalCode,
			City:       order.ShippingAddress.City,
			Country:    order.ShippingAddress.Country,
		},
	}

	for i, item := range order.Items {
		doc.Items[i] = OrderItemDocument{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Config:    toConfigDocument(item.Config),
		}
	}

	return doc
}

func toConfigDocument(cfg *entities.JewelleryConfig) *ConfigDocument {
	if cfg == nil {
		return nil
	}
	return &ConfigDocument{
		Mode:          string(cfg.Mode),
		Setting:       cfg.Setting,
		Metal:         cfg.Metal,
		Size:          cfg.Size,
		Backing:       cfg.Backing,
		BaseProductID: cfg.BaseProductID,
	}
}
