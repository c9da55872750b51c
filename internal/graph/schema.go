// Package graph exposes the people directory as a read-only GraphQL schema.
package graph

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/zhouzirui/people/backend/internal/model/person"
)

// NewSchema builds the query schema over store.
//
//	type Query {
//	  people: [Person!]!
//	  person(id: Int!): Person
//	}
func NewSchema(store person.Store) (graphql.Schema, error) {
	personType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Person",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"age":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"gender": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					src, ok := p.Source.(person.Person)
					if !ok {
						return nil, fmt.Errorf("unexpected source %T", p.Source)
					}
					return string(src.Gender), nil
				},
			},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"people": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(personType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.List(), nil
				},
			},
			"person": &graphql.Field{
				Type: personType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, ok := p.Args["id"].(int)
					if !ok {
						return nil, fmt.Errorf("id must be an integer")
					}
					found, ok := store.FindByID(id)
					if !ok {
						// a miss is a null result, not an error
						return nil, nil
					}
					return found, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

// Request is a GraphQL request as sent over HTTP.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// Execute runs req against schema.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
}
