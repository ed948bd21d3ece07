package models

// CustomerPatch lists the customer fields a partial update may set.
// Nil fields are left unchanged.
type CustomerPatch struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

// Apply writes the set fields onto c.
func (p CustomerPatch) Apply(c *Customer) error {
	if p.Name != nil {
		return c.SetName(*p.Name)
	}
	return nil
}

// ItemPatch lists the item fields a partial update may set.
type ItemPatch struct {
	Name  *string  `json:"name" validate:"omitnil,max=255"`
	Price *float64 `json:"price"`
}

// Apply writes the set fields onto i.
func (p ItemPatch) Apply(i *Item) {
	if p.Name != nil {
		i.Name = *p.Name
	}
	if p.Price != nil {
		i.Price = *p.Price
	}
}

// Columns returns the column assignments for an update statement.
func (p ItemPatch) Columns() map[string]any {
	cols := make(map[string]any, 2)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	return cols
}
