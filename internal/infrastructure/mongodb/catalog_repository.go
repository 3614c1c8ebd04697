package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront-service/internal/domain/entities"
	"storefront-service/internal/infrastructure/logger"
)

// CatalogRepositoryMongo reads the hosted diamonds and settings tables
// and maps them to catalog products.
type CatalogRepositoryMongo struct {
	diamonds *mongo.Collection
	settings *mongo.Collection
	logger   *logger.Logger
}

func NewCatalogRepositoryMongo(db *mongo.Database, logger *logger.Logger) *CatalogRepositoryMongo {
	return &CatalogRepositoryMongo{
		diamonds: db.Collection("diamonds"),
		settings: db.Collection("settings"),
		logger:   logger,
	}
}

// ListAvailable returns unsold loose diamonds followed by the pre-set
// pieces, in store order.
func (r *CatalogRepositoryMongo) ListAvailable(ctx context.Context) ([]entities.Product, error) {
	cur, err := r.diamonds.Find(ctx, bson.M{"is_sold": false})
	if err != nil {
		return nil, fmt.Errorf("failed to query diamonds: %w", err)
	}
	var diamondDocs []DiamondDocument
	if err := cur.All(ctx, &diamondDocs); err != nil {
		return nil, fmt.Errorf("failed to decode diamonds: %w", err)
	}

	cur, err = r.settings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	var settingDocs []SettingDocument
	if err := cur.All(ctx, &settingDocs); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	products := make([]entities.Product, 0, len(diamondDocs)+len(settingDocs))
	for i := range diamondDocs {
		products = append(products, toDiamondProduct(&diamondDocs[i]))
	}
	for i := range settingDocs {
		products = append(products, toSettingProduct(&settingDocs[i]))
	}

	r.logger.Info("Fetched inventory",
		"diamonds", len(diamondDocs),
		"settings", len(settingDocs))
	return products, nil
}

func toDiamondProduct(d *DiamondDocument) entities.Product {
	return entities.Product{
		// Prefixed to avoid colliding with setting ids.
		ID:         fmt.Sprintf("d_%d", d.ID),
		Name:       fmt.Sprintf("%.2f ct %s Lab Diamond", d.Carat, d.Shape),
		Type:       entities.TypeLooseDiamond,
		Shape:      d.Shape,
		Clarity:    d.Clarity,
		Color:      d.Color,
		Carat:      d.Carat,
		Price:      d.Price,
		Image:      d.ImageURL,
		TripleEx:   d.Cut == "Excellent" || d.Cut == "Ideal",
		BestSeller: d.Price > 3000 && d.Price < 5000,
	}
}

// Setting rows are pre-set pieces: the listed price includes a 1.00 ct
// base stone and the stone attributes are the preview defaults.
func toSettingProduct(s *SettingDocument) entities.Product {
	typ := entities.TypeEarrings
	if s.Type == "Ring" {
		typ = entities.TypeEngagementRing
	}
	return entities.Product{
		ID:       fmt.Sprintf("s_%d", s.ID),
		Name:     s.Name,
		Type:     typ,
		Shape:    "Round",
		Clarity:  "VS1",
		Color:    "E",
		Carat:    1.0,
		Price:    s.Price + 1000,
		Image:    s.ImageURL,
		TripleEx: true,
	}
}
