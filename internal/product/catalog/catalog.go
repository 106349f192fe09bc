// Package catalog mirrors marketplace listings into a document store for the
// public product browser.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

type sellerDoc struct {
	ID       string `bson:"id"`
	Name     string `bson:"name"`
	UserType string `bson:"userType"`
}

type productDoc struct {
	ID           string     `bson:"_id"`
	SellerID     string     `bson:"sellerId"`
	Name         string     `bson:"name"`
	Price        string     `bson:"price"`
	Category     string     `bson:"category"`
	Description  string     `bson:"description"`
	Image        string     `bson:"image"`
	Quantity     int        `bson:"quantity"`
	Unit         string     `bson:"unit"`
	PlasticType  string     `bson:"plasticType"`
	InStock      bool       `bson:"inStock"`
	IsNew        bool       `bson:"isNew"`
	Discount     int        `bson:"discount"`
	RewardPoints int        `bson:"rewardPoints"`
	Seller       *sellerDoc `bson:"seller,omitempty"`
	CreatedAt    time.Time  `bson:"createdAt"`
}

type Catalog struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Catalog {
	return &Catalog{coll: coll}
}

// Connect opens a client and returns the catalog for db.collection along
// with the client so the caller can disconnect it.
func Connect(ctx context.Context, uri, db, collection string) (*Catalog, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("pinging mongo: %w", err)
	}

	return New(client.Database(db).Collection(collection)), client, nil
}

func (c *Catalog) Upsert(ctx context.Context, p *product.Product) error {
	doc := toDoc(p)

	_, err := c.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upserting catalog product: %w", err)
	}

	return nil
}

// List returns listings newest first, filtered by category when one is given.
func (c *Catalog) List(ctx context.Context, category string) ([]*product.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	cur, err := c.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("finding catalog products: %w", err)
	}
	defer cur.Close(ctx)

	products := []*product.Product{}

	for cur.Next(ctx) {
		var doc productDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding catalog product: %w", err)
		}

		products = append(products, fromDoc(&doc))
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog products: %w", err)
	}

	return products, nil
}

func toDoc(p *product.Product) *productDoc {
	doc := &productDoc{
		ID:           p.ID,
		SellerID:     p.SellerID,
		Name:         p.Name,
		Price:        p.Price.String(),
		Category:     p.Category,
		Description:  p.Description,
		Image:        p.Image,
		Quantity:     p.Quantity,
		Unit:         string(p.Unit),
		PlasticType:  p.PlasticType,
		InStock:      p.InStock,
		IsNew:        p.IsNew,
		Discount:     p.Discount,
		RewardPoints: p.RewardPoints,
		CreatedAt:    p.CreatedAt.UTC(),
	}

	if p.Seller != nil {
		doc.Seller = &sellerDoc{ID: p.Seller.ID, Name: p.Seller.Name, UserType: p.Seller.UserType}
	}

	return doc
}

func fromDoc(doc *productDoc) *product.Product {
	price, err := decimal.NewFromString(doc.Price)
	if err != nil {
		price = decimal.Zero
	}

	p := &product.Product{
		ID:           doc.ID,
		SellerID:     doc.SellerID,
		Name:         doc.Name,
		Price:        price,
		Category:     doc.Category,
		Description:  doc.Description,
		Image:        doc.Image,
		Quantity:     doc.Quantity,
		Unit:         rewards.ParseUnit(doc.Unit),
		PlasticType:  doc.PlasticType,
		InStock:      doc.InStock,
		IsNew:        doc.IsNew,
		Discount:     doc.Discount,
		RewardPoints: doc.RewardPoints,
		CreatedAt:    doc.CreatedAt,
	}

	if doc.Seller != nil {
		p.Seller = &product.Seller{ID: doc.Seller.ID, Name: doc.Seller.Name, UserType: doc.Seller.UserType}
	}

	return p
}
