package models

import (
	"github.com/localnerve/reviewsdb/internal/serialize"
	"gorm.io/gorm"
)

// Review joins one customer to one item with a comment
type Review struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Comment    string    `gorm:"not null"`
	CustomerID *uint64   `gorm:"index"`
	ItemID     *uint64   `gorm:"index"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Item       *Item     `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Review
func (Review) TableName() string {
	return "reviews"
}

// NewReview constructs a Review with a validated comment.
func NewReview(comment string, customerID, itemID *uint64) (*Review, error) {
	r := &Review{CustomerID: customerID, ItemID: itemID}
	if err := r.SetComment(comment); err != nil {
		return nil, err
	}
	return r, nil
}

// SetComment assigns the comment. An empty comment is rejected and the
// previous comment is kept.
func (r *Review) SetComment(comment string) error {
	if comment == "" {
		return ErrEmptyComment
	}
	r.Comment = comment
	return nil
}

// BeforeSave keeps an empty comment from reaching storage when the struct was
// filled without SetComment.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Comment == "" {
		return ErrEmptyComment
	}
	return nil
}

func (Review) SerializeKind() string { return KindReview }

func (r Review) SerializeFields() []serialize.Field {
	return []serialize.Field{
		{Key: "id", Value: r.ID},
		{Key: "comment", Value: r.Comment},
		{Key: "customer_id", Value: r.CustomerID},
		{Key: "item_id", Value: r.ItemID},
	}
}

func (r Review) SerializeRelated(key string) []serialize.Node {
	switch key {
	case "customer":
		if r.Customer != nil {
			return []serialize.Node{r.Customer}
		}
	case "item":
		if r.Item != nil {
			return []serialize.Node{r.Item}
		}
	}
	return nil
}
