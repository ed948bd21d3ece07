// Package serialize turns graphs of related entities into ordered records.
//
// Every entity kind declares, in a Schema, the relationship paths it always
// excludes. Callers may add rules per call. While walking an edge the rules
// that start with the edge key are inherited by the child, prefix stripped,
// and merged with the child's own rules. Cycles are broken only by those
// rules; Schema.Verify proves that every cycle in a schema is broken.
package serialize

// Field is one primitive value of an entity.
type Field struct {
	Key   string
	Value any
}

// Node is an entity the serializer can walk.
type Node interface {
	// SerializeKind names the schema kind of the entity.
	SerializeKind() string
	// SerializeFields returns the primitive fields in output order.
	SerializeFields() []Field
	// SerializeRelated returns the entities on the other end of the edge
	// named key. To-one edges return zero or one node.
	SerializeRelated(key string) []Node
}

// Serializer converts nodes to records using a Schema's rule table.
type Serializer struct {
	schema *Schema
}

// New returns a Serializer for schema.
func New(schema *Schema) *Serializer {
	return &Serializer{schema: schema}
}

// Schema returns the rule table in use.
func (s *Serializer) Schema() *Schema {
	return s.schema
}

// One serializes a single node. rules are exclusion paths relative to n,
// merged with the defaults of n's kind.
func (s *Serializer) One(n Node, rules ...string) Record {
	return s.walk(n, ruleSet(nil).with(rules))
}

// Many serializes each node with the same per-call rules.
func Many[T Node](s *Serializer, nodes []T, rules ...string) []Record {
	out := make([]Record, 0, len(nodes))
	root := ruleSet(nil).with(rules)
	for _, n := range nodes {
		out = append(out, s.walk(n, root))
	}
	return out
}

func (s *Serializer) walk(n Node, inherited ruleSet) Record {
	kind, _ := s.schema.Kind(n.SerializeKind())
	active := inherited.with(kind.Exclude)

	var rec Record
	for _, f := range n.SerializeFields() {
		if active.has(f.Key) {
			continue
		}
		rec.set(f.Key, f.Value)
	}

	for _, e := range kind.Edges {
		if active.has(e.Key) {
			continue
		}
		child := active.descend(e.Key)
		related := n.SerializeRelated(e.Key)

		if e.Many {
			list := make([]Record, 0, len(related))
			for _, r := range related {
				list = append(list, s.walk(r, child))
			}
			rec.set(e.Key, list)
			continue
		}

		if len(related) == 0 || related[0] == nil {
			rec.set(e.Key, nil)
			continue
		}
		rec.set(e.Key, s.walk(related[0], child))
	}

	return rec
}
