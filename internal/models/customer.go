package models

import "github.com/localnerve/reviewsdb/internal/serialize"

// Customer writes reviews about items
type Customer struct {
	ID      uint64   `gorm:"primaryKey;autoIncrement"`
	Name    string   `gorm:"size:255;not null;uniqueIndex;check:chk_customers_name_not_blank,name <> ''"`
	Reviews []Review `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Customer
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer constructs a Customer with a validated name.
func NewCustomer(name string) (*Customer, error) {
	c := &Customer{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// SetName assigns the customer name. An empty name is rejected.
func (c *Customer) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.Name = name
	return nil
}

// Items returns the distinct items this customer reviewed, in review order.
// It is derived from Reviews and requires Reviews.Item to be loaded.
func (c Customer) Items() []*Item {
	seen := make(map[uint64]struct{}, len(c.Reviews))
	items := make([]*Item, 0, len(c.Reviews))
	for i := range c.Reviews {
		item := c.Reviews[i].Item
		if item == nil {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items
}

func (Customer) SerializeKind() string { return KindCustomer }

func (c Customer) SerializeFields() []serialize.Field {
	return []serialize.Field{
		{Key: "id", Value: c.ID},
		{Key: "name", Value: c.Name},
	}
}

func (c Customer) SerializeRelated(key string) []serialize.Node {
	if key != "reviews" {
		return nil
	}
	nodes := make([]serialize.Node, len(c.Reviews))
	for i := range c.Reviews {
		nodes[i] = &c.Reviews[i]
	}
	return nodes
}
