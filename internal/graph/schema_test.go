package graph

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/zhouzirui/people/backend/internal/model/person"
)

func newTestSchema(t *testing.T) graphql.Schema {
	t.Helper()
	schema, err := NewSchema(person.MustMemoryStore(person.Seed()))
	require.NoError(t, err)
	return schema
}

func runQuery(t *testing.T, schema graphql.Schema, req Request) string {
	t.Helper()
	res := Execute(context.Background(), schema, req)
	require.False(t, res.HasErrors(), "unexpected errors: %v", res.Errors)
	data, err := json.Marshal(res.Data)
	require.NoError(t, err)
	return string(data)
}

func TestPersonQuery(t *testing.T) {
	schema := newTestSchema(t)

	got := runQuery(t, schema, Request{Query: `{ person(id: 2) { id name age gender } }`})
	require.JSONEq(t, `{"person":{"id":2,"name":"JD","age":20,"gender":"female"}}`, got)
}

func TestPersonQueryMissIsNull(t *testing.T) {
	schema := newTestSchema(t)

	for _, q := range []string{
		`{ person(id: 4) { id } }`,
		`{ person(id: -1) { id } }`,
	} {
		got := runQuery(t, schema, Request{Query: q})
		require.JSONEq(t, `{"person":null}`, got)
	}
}

func TestPersonQueryWithVariables(t *testing.T) {
	schema := newTestSchema(t)

	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(`{"id":3}`), &vars))

	got := runQuery(t, schema, Request{
		Query:         `query Lookup($id: Int!) { person(id: $id) { name } }`,
		Variables:     vars,
		OperationName: "Lookup",
	})
	require.JSONEq(t, `{"person":{"name":"flynn"}}`, got)
}

func TestPeopleQuery(t *testing.T) {
	schema := newTestSchema(t)

	got := runQuery(t, schema, Request{Query: `{ people { id name } }`})
	require.JSONEq(t, `{"people":[
		{"id":0,"name":"hojin"},
		{"id":1,"name":"Daal"},
		{"id":2,"name":"JD"},
		{"id":3,"name":"flynn"}
	]}`, got)
}

func TestPersonQueryRequiresID(t *testing.T) {
	schema := newTestSchema(t)

	res := Execute(context.Background(), schema, Request{Query: `{ person { id } }`})
	require.True(t, res.HasErrors())
}

func TestPeopleQueryAtInt32Bounds(t *testing.T) {
	store, err := person.NewMemoryStore(append(person.Seed(),
		person.Person{ID: math.MaxInt32, Name: "max", Age: 1, Gender: person.GenderMale},
		person.Person{ID: math.MinInt32, Name: "min", Age: 1, Gender: person.GenderFemale},
	))
	require.NoError(t, err)
	schema, err := NewSchema(store)
	require.NoError(t, err)

	got := runQuery(t, schema, Request{Query: `{ people { id } }`})
	require.JSONEq(t, `{"people":[
		{"id":0},{"id":1},{"id":2},{"id":3},
		{"id":2147483647},{"id":-2147483648}
	]}`, got)

	got = runQuery(t, schema, Request{Query: `{ person(id: -2147483648) { name } }`})
	require.JSONEq(t, `{"person":{"name":"min"}}`, got)
}
