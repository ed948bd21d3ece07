package models

import "github.com/localnerve/reviewsdb/internal/serialize"

// Item is a reviewable product
type Item struct {
	ID      uint64   `gorm:"primaryKey;autoIncrement"`
	Name    string   `gorm:"size:255"`
	Price   float64  `gorm:"not null"`
	Reviews []Review `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Item
func (Item) TableName() string {
	return "items"
}

// NewItem constructs an Item.
func NewItem(name string, price float64) *Item {
	return &Item{Name: name, Price: price}
}

func (Item) SerializeKind() string { return KindItem }

func (i Item) SerializeFields() []serialize.Field {
	return []serialize.Field{
		{Key: "id", Value: i.ID},
		{Key: "name", Value: i.Name},
		{Key: "price", Value: i.Price},
	}
}

func (i Item) SerializeRelated(key string) []serialize.Node {
	if key != "reviews" {
		return nil
	}
	nodes := make([]serialize.Node, len(i.Reviews))
	for n := range i.Reviews {
		nodes[n] = &i.Reviews[n]
	}
	return nodes
}
