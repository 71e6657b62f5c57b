package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fulfilld/ordergraph/internal/repository"
)

type OrderRepo struct {
	coll *mongo.Collection
}

func NewOrderRepo(coll *mongo.Collection) *OrderRepo {
	return &OrderRepo{coll: coll}
}

// Find returns the orders matching the given predicate. An empty predicate
// matches every document. Result order is whatever the store returns; callers
// must not rely on it being stable.
func (r *OrderRepo) Find(ctx context.Context, filter bson.M) ([]repository.Order, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", repository.ErrStoreUnavailable, err)
	}
	defer cur.Close(ctx)

	var orders []repository.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", repository.ErrStoreUnavailable, err)
	}

	return orders, nil
}
