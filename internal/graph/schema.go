// Package graph defines the GraphQL schema over order documents and executes
// queries against it. The executable schema is the single source of truth:
// the SDL text used elsewhere (e.g. in completion prompts) is derived from it.
package graph

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fulfilld/ordergraph/internal/query"
	"github.com/fulfilld/ordergraph/internal/repository"
)

// OrderSource reads order documents matching a predicate.
type OrderSource interface {
	Find(ctx context.Context, filter bson.M) ([]repository.Order, error)
}

// Schema holds the compiled schema and its derived SDL text.
type Schema struct {
	schema graphql.Schema
	sdl    string
}

var statusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Status",
	Values: graphql.EnumValueConfigMap{
		"open":      &graphql.EnumValueConfig{Value: "open"},
		"closed":    &graphql.EnumValueConfig{Value: "closed"},
		"picking":   &graphql.EnumValueConfig{Value: "picking"},
		"picked":    &graphql.EnumValueConfig{Value: "picked"},
		"packed":    &graphql.EnumValueConfig{Value: "packed"},
		"shipped":   &graphql.EnumValueConfig{Value: "shipped"},
		"cancelled": &graphql.EnumValueConfig{Value: "cancelled"},
	},
})

var shippingAddressType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ShippingAddress",
	Fields: graphql.Fields{
		"verified":     &graphql.Field{Type: graphql.Boolean},
		"name":         &graphql.Field{Type: graphql.String},
		"company":      &graphql.Field{Type: graphql.String},
		"address1":     &graphql.Field{Type: graphql.String},
		"address2":     &graphql.Field{Type: graphql.String},
		"city":         &graphql.Field{Type: graphql.String},
		"state":        &graphql.Field{Type: graphql.String},
		"state_code":   &graphql.Field{Type: graphql.String},
		"country":      &graphql.Field{Type: graphql.String},
		"country_code": &graphql.Field{Type: graphql.String},
		"zip":          &graphql.Field{Type: graphql.String},
	},
})

var itemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Item",
	Fields: graphql.Fields{
		"sku":           &graphql.Field{Type: graphql.String},
		"name":          &graphql.Field{Type: graphql.String},
		"total_qty":     &graphql.Field{Type: graphql.Int},
		"remaining_qty": &graphql.Field{Type: graphql.Int},
	},
})

var shipmentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Shipment",
	Fields: graphql.Fields{
		"shipment_id":     &graphql.Field{Type: graphql.String},
		"carrier":         &graphql.Field{Type: graphql.String},
		"service":         &graphql.Field{Type: graphql.String},
		"tracking_number": &graphql.Field{Type: graphql.String},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":               &graphql.Field{Type: graphql.ID},
		"client_name":      &graphql.Field{Type: graphql.String},
		"code":             &graphql.Field{Type: graphql.Int},
		"status":           &graphql.Field{Type: statusEnum},
		"created_at":       &graphql.Field{Type: graphql.DateTime},
		"closed_at":        &graphql.Field{Type: graphql.DateTime},
		"shipping_address": &graphql.Field{Type: shippingAddressType},
		"items":            &graphql.Field{Type: graphql.NewList(itemType)},
		"shipments":        &graphql.Field{Type: graphql.NewList(shipmentType)},
	},
})

var filterInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"client_name":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"status":           &graphql.InputObjectFieldConfig{Type: graphql.NewList(statusEnum)},
		"created_at_start": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"created_at_end":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"closed_at_start":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"closed_at_end":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"item_name":        &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// New compiles the schema against the given order source.
func New(src OrderSource) (*Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"filter": &graphql.ArgumentConfig{Type: filterInputType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var f query.FilterInput
					if raw, ok := p.Args["filter"].(map[string]interface{}); ok {
						f = query.FromArgs(raw)
					}

					predicate, err := f.ToQuery()
					if err != nil {
						return nil, err
					}

					return src.Find(p.Context, predicate)
				},
			},
			// Declared for API compatibility; no resolver is bound.
			"order": &graphql.Field{
				Type: orderType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return nil, errors.New(`no resolver defined for field "order"`)
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema, sdl: renderSDL(schema)}, nil
}

// SDL returns the schema definition text derived from the compiled schema.
func (s *Schema) SDL() string {
	return s.sdl
}

// Execute runs a query document in-process and returns the standard GraphQL
// result envelope. Execution errors are carried inside the envelope.
func (s *Schema) Execute(ctx context.Context, request string, variables map[string]interface{}, operationName string) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  request,
		VariableValues: variables,
		OperationName:  operationName,
		Context:        ctx,
	})
}
