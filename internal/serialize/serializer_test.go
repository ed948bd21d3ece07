package serialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node is a generic in-memory entity used to build cyclic graphs.
type node struct {
	kind    string
	fields  []Field
	related map[string][]Node
}

func (n *node) SerializeKind() string              { return n.kind }
func (n *node) SerializeFields() []Field           { return n.fields }
func (n *node) SerializeRelated(key string) []Node { return n.related[key] }

func shopSchema() *Schema {
	return MustSchema(
		Kind{
			Name:    "customer",
			Fields:  []string{"id", "name"},
			Edges:   []Edge{{Key: "reviews", Field: "Reviews", Target: "review", Many: true}},
			Exclude: []string{"reviews.customer"},
		},
		Kind{
			Name:   "review",
			Fields: []string{"id", "comment"},
			Edges: []Edge{
				{Key: "customer", Field: "Customer", Target: "customer"},
				{Key: "item", Field: "Item", Target: "item"},
			},
			Exclude: []string{"customer.reviews", "item.reviews"},
		},
		Kind{
			Name:    "item",
			Fields:  []string{"id", "name", "price"},
			Edges:   []Edge{{Key: "reviews", Field: "Reviews", Target: "review", Many: true}},
			Exclude: []string{"reviews.item"},
		},
	)
}

// cyclicGraph links one customer and one item through a single review, with
// every back-reference populated.
func cyclicGraph() (customer, review, item *node) {
	customer = &node{kind: "customer", fields: []Field{{"id", 1}, {"name", "Ada"}}, related: map[string][]Node{}}
	item = &node{kind: "item", fields: []Field{{"id", 7}, {"name", "Widget"}, {"price", 9.99}}, related: map[string][]Node{}}
	review = &node{kind: "review", fields: []Field{{"id", 3}, {"comment", "great"}}, related: map[string][]Node{}}

	review.related["customer"] = []Node{customer}
	review.related["item"] = []Node{item}
	customer.related["reviews"] = []Node{review}
	item.related["reviews"] = []Node{review}
	return customer, review, item
}

func TestSerializeCustomerExcludesReviewBackReference(t *testing.T) {
	s := New(shopSchema())
	customer, _, _ := cyclicGraph()

	rec := s.One(customer)

	assert.Equal(t, []string{"id", "name", "reviews"}, rec.Keys())
	reviews, ok := rec.Records("reviews")
	require.True(t, ok)
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Has("customer"), "review must not embed its customer")

	item, ok := reviews[0].Record("item")
	require.True(t, ok)
	assert.False(t, item.Has("reviews"), "embedded item must not embed its reviews")
	assert.Equal(t, []string{"id", "name", "price"}, item.Keys())
}

func TestSerializeReviewExcludesNestedCollections(t *testing.T) {
	s := New(shopSchema())
	_, review, _ := cyclicGraph()

	rec := s.One(review)

	customer, ok := rec.Record("customer")
	require.True(t, ok)
	assert.False(t, customer.Has("reviews"))

	item, ok := rec.Record("item")
	require.True(t, ok)
	assert.False(t, item.Has("reviews"))
}

func TestSerializeItemExcludesReviewItem(t *testing.T) {
	s := New(shopSchema())
	_, _, item := cyclicGraph()

	rec := s.One(item)

	reviews, ok := rec.Records("reviews")
	require.True(t, ok)
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Has("item"))

	customer, ok := reviews[0].Record("customer")
	require.True(t, ok)
	assert.False(t, customer.Has("reviews"))
}

func TestPerCallRulesMergeWithDefaults(t *testing.T) {
	s := New(shopSchema())
	_, _, item := cyclicGraph()

	rec := s.One(item, "reviews")
	assert.Equal(t, []string{"id", "name", "price"}, rec.Keys())

	rec = s.One(item, "-price", "reviews.customer")
	assert.False(t, rec.Has("price"))
	reviews, _ := rec.Records("reviews")
	require.Len(t, reviews, 1)
	assert.False(t, reviews[0].Has("customer"))
	assert.False(t, reviews[0].Has("item"))
}

func TestManyAppliesRulesToEveryNode(t *testing.T) {
	s := New(shopSchema())
	_, _, first := cyclicGraph()
	_, _, second := cyclicGraph()

	recs := Many(s, []*node{first, second}, "reviews")
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.False(t, rec.Has("reviews"))
	}
}

func TestNilToOneIsNullAndEmptyToManyIsList(t *testing.T) {
	s := New(shopSchema())
	orphan := &node{kind: "review", fields: []Field{{"id", 1}, {"comment", "x"}}, related: map[string][]Node{}}
	lonely := &node{kind: "customer", fields: []Field{{"id", 2}, {"name", "Bo"}}, related: map[string][]Node{}}

	out, err := json.Marshal(s.One(orphan))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"comment":"x","customer":null,"item":null}`, string(out))

	out, err = json.Marshal(s.One(lonely))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Bo","reviews":[]}`, string(out))
}

func TestRecordMarshalKeepsOrder(t *testing.T) {
	s := New(shopSchema())
	customer, _, _ := cyclicGraph()

	out, err := json.Marshal(s.One(customer))
	require.NoError(t, err)
	assert.Equal(t,
		`{"id":1,"name":"Ada","reviews":[{"id":3,"comment":"great","item":{"id":7,"name":"Widget","price":9.99}}]}`,
		string(out))
}

func TestRecordMap(t *testing.T) {
	s := New(shopSchema())
	customer, _, _ := cyclicGraph()

	m := s.One(customer).Map()
	reviews := m["reviews"].([]any)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great", reviews[0].(map[string]any)["comment"])
}
