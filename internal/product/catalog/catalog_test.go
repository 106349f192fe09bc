package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MrJamesThe3rd/ecocycle/internal/product"
	"github.com/MrJamesThe3rd/ecocycle/internal/rewards"
)

func TestCatalog(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	created := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)

	mt.Run("Upsert", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 0}})

		err := New(mt.Coll).Upsert(context.Background(), &product.Product{
			ID:     "p1",
			Price:  decimal.RequireFromString("12.50"),
			Seller: &product.Seller{ID: "u1", Name: "Green Co", UserType: "COLLECTOR"},
		})
		assert.NoError(t, err)
	})

	mt.Run("UpsertFails", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := New(mt.Coll).Upsert(context.Background(), &product.Product{ID: "p1"})
		assert.Error(t, err)
	})

	mt.Run("List", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()

		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "p2"},
			{Key: "sellerId", Value: "u1"},
			{Key: "name", Value: "Caps"},
			{Key: "price", Value: "3.00"},
			{Key: "category", Value: "caps"},
			{Key: "unit", Value: "pcs"},
			{Key: "rewardPoints", Value: 14},
			{Key: "seller", Value: bson.D{{Key: "id", Value: "u1"}, {Key: "name", Value: "Green Co"}, {Key: "userType", Value: "COLLECTOR"}}},
			{Key: "createdAt", Value: created},
		})
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{
			{Key: "_id", Value: "p1"},
			{Key: "name", Value: "Flakes"},
			{Key: "price", Value: "not a number"},
			{Key: "category", Value: "caps"},
			{Key: "createdAt", Value: created.Add(-time.Hour)},
		})
		mt.AddMockResponses(first, second)

		got, err := New(mt.Coll).List(context.Background(), "caps")
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "p2", got[0].ID)
		assert.Equal(t, rewards.UnitPiece, got[0].Unit)
		assert.True(t, decimal.RequireFromString("3").Equal(got[0].Price))
		require.NotNil(t, got[0].Seller)
		assert.Equal(t, "Green Co", got[0].Seller.Name)

		assert.True(t, got[1].Price.IsZero())
		assert.Nil(t, got[1].Seller)
	})

	mt.Run("ListEmpty", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		got, err := New(mt.Coll).List(context.Background(), "")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	mt.Run("ListFails", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad query"}))

		_, err := New(mt.Coll).List(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestDocRoundTripKeepsSeller(t *testing.T) {
	p := &product.Product{
		ID:        "p1",
		Price:     decimal.RequireFromString("1.25"),
		Unit:      rewards.UnitGram,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seller:    &product.Seller{ID: "u1"},
	}

	got := fromDoc(toDoc(p))
	assert.Equal(t, p, got)
}
