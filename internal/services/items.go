// items.go
//
// A relational customer, item and review data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of reviewsdb.
// reviewsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// reviewsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with reviewsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package services

import (
	"fmt"

	"github.com/localnerve/reviewsdb/internal/models"
	"gorm.io/gorm"
)

// ListItems returns every item. rules trim the loaded graph, so the summary
// listing that excludes reviews issues a single query.
func ListItems(db *gorm.DB, rules ...string) ([]models.Item, error) {
	var items []models.Item
	err := withGraph(listQuery(db, "items.list"), models.KindItem, rules...).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem loads one item. A missing id is models.ErrItemNotFound.
func GetItem(db *gorm.DB, id uint64, rules ...string) (*models.Item, error) {
	var item models.Item
	err := withGraph(db, models.KindItem, rules...).First(&item, id).Error
	if err != nil {
		return nil, notFound(err, models.ErrItemNotFound)
	}
	return &item, nil
}

// CreateItem stores a new item.
func CreateItem(db *gorm.DB, name string, price float64) (*models.Item, error) {
	item := models.NewItem(name, price)
	if err := db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// PatchItem applies patch to the item with id and returns it with its graph
// reloaded.
func PatchItem(db *gorm.DB, id uint64, patch models.ItemPatch) (*models.Item, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err, models.ErrItemNotFound)
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}
		return tx.Model(&item).Updates(cols).Error
	})
	if err != nil {
		return nil, err
	}
	return GetItem(db, id)
}

// DeleteItem removes the item and every review of it.
func DeleteItem(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return notFound(err, models.ErrItemNotFound)
		}
		if err := tx.Select("Reviews").Delete(&item).Error; err != nil {
			return fmt.Errorf("delete item %d: %w", id, err)
		}
		return nil
	})
}
