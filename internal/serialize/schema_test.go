package serialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAcceptsCoveredCycles(t *testing.T) {
	require.NoError(t, shopSchema().Verify())
}

func TestVerifyRejectsUncoveredCycle(t *testing.T) {
	s := MustSchema(
		Kind{
			Name:   "customer",
			Fields: []string{"id"},
			Edges:  []Edge{{Key: "reviews", Field: "Reviews", Target: "review", Many: true}},
		},
		Kind{
			Name:   "review",
			Fields: []string{"id"},
			Edges:  []Edge{{Key: "customer", Field: "Customer", Target: "customer"}},
		},
	)

	err := s.Verify()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbounded recursion")
}

func TestVerifyRejectsCycleOpenedThroughThirdKind(t *testing.T) {
	// The review rules only cover customer; item -> reviews -> item stays open.
	s := MustSchema(
		Kind{
			Name:    "customer",
			Edges:   []Edge{{Key: "reviews", Field: "Reviews", Target: "review", Many: true}},
			Exclude: []string{"reviews.customer"},
		},
		Kind{
			Name: "review",
			Edges: []Edge{
				{Key: "customer", Field: "Customer", Target: "customer"},
				{Key: "item", Field: "Item", Target: "item"},
			},
			Exclude: []string{"customer.reviews"},
		},
		Kind{
			Name:  "item",
			Edges: []Edge{{Key: "reviews", Field: "Reviews", Target: "review", Many: true}},
		},
	)

	require.Error(t, s.Verify())
}

func TestNewSchemaRejectsUnknownTarget(t *testing.T) {
	_, err := NewSchema(Kind{
		Name:  "customer",
		Edges: []Edge{{Key: "reviews", Target: "review", Many: true}},
	})
	require.Error(t, err)
}

func TestNewSchemaRejectsUnresolvableRule(t *testing.T) {
	_, err := NewSchema(Kind{
		Name:    "item",
		Fields:  []string{"id"},
		Exclude: []string{"reviews.item"},
	})
	require.Error(t, err)
}

func TestNewSchemaRejectsDuplicateKind(t *testing.T) {
	_, err := NewSchema(Kind{Name: "item"}, Kind{Name: "item"})
	require.Error(t, err)
}

func TestValidateRules(t *testing.T) {
	s := shopSchema()
	assert.NoError(t, s.Validate("item", "reviews", "price", "reviews.customer.name"))
	assert.Error(t, s.Validate("item", "reviews.price"))
	assert.Error(t, s.Validate("nope"))
}

func TestBackReferencesHaveOneDirectionExcluded(t *testing.T) {
	s := shopSchema()
	pairs := s.BackReferences()
	assert.Equal(t, [][2]string{
		{"customer.reviews", "review.customer"},
		{"item.reviews", "review.item"},
	}, pairs)

	for _, pair := range pairs {
		covered := false
		for _, side := range pair {
			for _, other := range pair {
				if side == other {
					continue
				}
				kind, key := splitPath(side)
				_, back := splitPath(other)
				for _, rule := range s.Rules(kind) {
					if rule == key+"."+back {
						covered = true
					}
				}
			}
		}
		assert.Truef(t, covered, "%s <-> %s has no exclusion rule", pair[0], pair[1])
	}
}

func splitPath(p string) (string, string) {
	for i := 0; i < len(p); i++ {
		if p[i] == '.' {
			return p[:i], p[i+1:]
		}
	}
	return p, ""
}

func TestPreloads(t *testing.T) {
	s := shopSchema()

	assert.Equal(t, []string{"Reviews", "Reviews.Item"}, s.Preloads("customer"))
	assert.Equal(t, []string{"Reviews", "Reviews.Customer"}, s.Preloads("item"))
	assert.Equal(t, []string{"Customer", "Item"}, s.Preloads("review"))
	assert.Empty(t, s.Preloads("item", "reviews"))
}

func TestRuleSetDescend(t *testing.T) {
	r := ruleSet(nil).with([]string{"-reviews.customer", "reviews.item.reviews", "price"})
	child := r.descend("reviews")
	assert.True(t, child.has("customer"))
	assert.True(t, child.has("item.reviews"))
	assert.False(t, child.has("price"))
	assert.Equal(t, "customer,item.reviews", child.key())
}
