package models

import "github.com/localnerve/reviewsdb/internal/serialize"

// Serialization kinds.
const (
	KindCustomer = "customer"
	KindItem     = "item"
	KindReview   = "review"
	KindUser     = "user"
)

// Schema is the serialization rule table for every entity. Each kind
// excludes the back-reference of the collections it embeds, so walking any
// relationship pair stops after one hop back.
var Schema = serialize.MustSchema(
	serialize.Kind{
		Name:    KindCustomer,
		Fields:  []string{"id", "name"},
		Edges:   []serialize.Edge{{Key: "reviews", Field: "Reviews", Target: KindReview, Many: true}},
		Exclude: []string{"reviews.customer"},
	},
	serialize.Kind{
		Name:   KindReview,
		Fields: []string{"id", "comment", "customer_id", "item_id"},
		Edges: []serialize.Edge{
			{Key: "customer", Field: "Customer", Target: KindCustomer},
			{Key: "item", Field: "Item", Target: KindItem},
		},
		Exclude: []string{"customer.reviews", "item.reviews"},
	},
	serialize.Kind{
		Name:    KindItem,
		Fields:  []string{"id", "name", "price"},
		Edges:   []serialize.Edge{{Key: "reviews", Field: "Reviews", Target: KindReview, Many: true}},
		Exclude: []string{"reviews.item"},
	},
	serialize.Kind{
		Name:   KindUser,
		Fields: []string{"id", "username"},
	},
)
