package serialize

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is a relationship from one kind to another.
type Edge struct {
	// Key is the output key and the path segment used by rules.
	Key string
	// Field is the Go struct field name used for GORM preloading.
	Field string
	// Target is the kind on the other end of the relationship.
	Target string
	// Many marks a to-many relationship.
	Many bool
}

// Kind declares an entity type to the serializer: its primitive fields, its
// relationship edges and the paths it always excludes.
type Kind struct {
	Name    string
	Fields  []string
	Edges   []Edge
	Exclude []string
}

func (k Kind) edge(key string) (Edge, bool) {
	for _, e := range k.Edges {
		if e.Key == key {
			return e, true
		}
	}
	return Edge{}, false
}

func (k Kind) hasField(key string) bool {
	for _, f := range k.Fields {
		if f == key {
			return true
		}
	}
	return false
}

// Schema is the rule table: entity kind to declared fields, edges and
// excluded relationship paths.
type Schema struct {
	kinds map[string]Kind
	order []string
}

// NewSchema builds a Schema and checks that every edge target is declared and
// every exclusion path resolves to a field or edge.
func NewSchema(kinds ...Kind) (*Schema, error) {
	s := &Schema{kinds: make(map[string]Kind, len(kinds))}
	for _, k := range kinds {
		if k.Name == "" {
			return nil, fmt.Errorf("serialize: kind without a name")
		}
		if _, dup := s.kinds[k.Name]; dup {
			return nil, fmt.Errorf("serialize: kind %q declared twice", k.Name)
		}
		s.kinds[k.Name] = k
		s.order = append(s.order, k.Name)
	}

	for _, name := range s.order {
		k := s.kinds[name]
		for _, e := range k.Edges {
			if _, ok := s.kinds[e.Target]; !ok {
				return nil, fmt.Errorf("serialize: %s.%s targets unknown kind %q", k.Name, e.Key, e.Target)
			}
		}
		for _, rule := range k.Exclude {
			if err := s.resolve(k.Name, rule); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// MustSchema is NewSchema that panics on an invalid declaration.
func MustSchema(kinds ...Kind) *Schema {
	s, err := NewSchema(kinds...)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the declaration for name.
func (s *Schema) Kind(name string) (Kind, bool) {
	k, ok := s.kinds[name]
	return k, ok
}

// Kinds returns all declared kinds in declaration order.
func (s *Schema) Kinds() []Kind {
	out := make([]Kind, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.kinds[name])
	}
	return out
}

// Rules returns the default exclusion paths of a kind.
func (s *Schema) Rules(kind string) []string {
	return append([]string(nil), s.kinds[kind].Exclude...)
}

// resolve walks a dotted path from kind and reports whether every segment
// names an edge, except the last which may also name a field.
func (s *Schema) resolve(kind, path string) error {
	segments := strings.Split(path, ".")
	current := s.kinds[kind]
	for i, seg := range segments {
		if e, ok := current.edge(seg); ok {
			current = s.kinds[e.Target]
			continue
		}
		if i == len(segments)-1 && current.hasField(seg) {
			return nil
		}
		return fmt.Errorf("serialize: rule %q on %s: %q is not a field or edge of %s", path, kind, seg, current.Name)
	}
	return nil
}

// Validate checks per-call rules against the schema of kind.
func (s *Schema) Validate(kind string, rules ...string) error {
	if _, ok := s.kinds[kind]; !ok {
		return fmt.Errorf("serialize: unknown kind %q", kind)
	}
	for _, rule := range rules {
		if err := s.resolve(kind, rule); err != nil {
			return err
		}
	}
	return nil
}

// Verify walks every kind with its default rules and fails when some path
// revisits a kind under the same active rule set. Such a repeat means a cycle
// no exclusion rule breaks, and serializing a fully loaded graph through it
// would never terminate.
func (s *Schema) Verify() error {
	for _, name := range s.order {
		if err := s.verifyFrom(name, nil, nil, map[string]bool{}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Schema) verifyFrom(kind string, inherited ruleSet, path []string, onPath map[string]bool) error {
	k := s.kinds[kind]
	active := inherited.with(k.Exclude)
	state := kind + "|" + active.key()
	path = append(path, kind)
	if onPath[state] {
		return fmt.Errorf("serialize: unbounded recursion through %s", strings.Join(path, " -> "))
	}
	onPath[state] = true
	defer delete(onPath, state)

	for _, e := range k.Edges {
		if active.has(e.Key) {
			continue
		}
		if err := s.verifyFrom(e.Target, active.descend(e.Key), path, onPath); err != nil {
			return err
		}
	}
	return nil
}

// BackReferences lists every pair of edges that point at each other, such as
// customer.reviews and review.customer.
func (s *Schema) BackReferences() [][2]string {
	var pairs [][2]string
	for _, name := range s.order {
		k := s.kinds[name]
		for _, e := range k.Edges {
			target := s.kinds[e.Target]
			for _, back := range target.Edges {
				if back.Target != name {
					continue
				}
				a, b := name+"."+e.Key, target.Name+"."+back.Key
				if a < b {
					pairs = append(pairs, [2]string{a, b})
				}
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
	return pairs
}

// Preloads returns the association paths, in struct field names, that
// serializing kind with rules will traverse. Feeding them to gorm's Preload
// loads exactly the graph the serializer reads.
func (s *Schema) Preloads(kind string, rules ...string) []string {
	var out []string
	s.collectPreloads(kind, ruleSet(nil).with(rules), "", map[string]bool{}, &out)
	return out
}

func (s *Schema) collectPreloads(kind string, inherited ruleSet, prefix string, onPath map[string]bool, out *[]string) {
	k, ok := s.kinds[kind]
	if !ok {
		return
	}
	active := inherited.with(k.Exclude)
	state := kind + "|" + active.key()
	if onPath[state] {
		return
	}
	onPath[state] = true
	defer delete(onPath, state)

	for _, e := range k.Edges {
		if active.has(e.Key) {
			continue
		}
		field := e.Field
		if prefix != "" {
			field = prefix + "." + e.Field
		}
		*out = append(*out, field)
		s.collectPreloads(e.Target, active.descend(e.Key), field, onPath, out)
	}
}
