// customers.go
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
	"errors"
	"fmt"

	"github.com/localnerve/reviewsdb/internal/models"
	"gorm.io/gorm"
)

// ListCustomers returns every customer with the graph needed to serialize it.
func ListCustomers(db *gorm.DB, rules ...string) ([]models.Customer, error) {
	var customers []models.Customer
	err := withGraph(listQuery(db, "customers.list"), models.KindCustomer, rules...).
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer loads one customer. A missing id is models.ErrCustomerNotFound.
func GetCustomer(db *gorm.DB, id uint64, rules ...string) (*models.Customer, error) {
	var customer models.Customer
	err := withGraph(db, models.KindCustomer, rules...).First(&customer, id).Error
	if err != nil {
		return nil, notFound(err, models.ErrCustomerNotFound)
	}
	return &customer, nil
}

// CreateCustomer stores a new customer. Names are unique.
func CreateCustomer(db *gorm.DB, name string) (*models.Customer, error) {
	customer, err := models.NewCustomer(name)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueName(tx, name, 0); err != nil {
			return err
		}
		return tx.Create(customer).Error
	})
	if err != nil {
		return nil, duplicate(err, models.ErrDuplicateCustomer)
	}
	return customer, nil
}

// PatchCustomer applies patch to the customer with id and returns it with its
// graph reloaded.
func PatchCustomer(db *gorm.DB, id uint64, patch models.CustomerPatch) (*models.Customer, error) {
	var customer models.Customer

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, id).Error; err != nil {
			return notFound(err, models.ErrCustomerNotFound)
		}
		previous := customer.Name
		if err := patch.Apply(&customer); err != nil {
			return err
		}
		if customer.Name == previous {
			return nil
		}
		if err := ensureUniqueName(tx, customer.Name, id); err != nil {
			return err
		}
		return tx.Model(&customer).Update("name", customer.Name).Error
	})
	if err != nil {
		return nil, duplicate(err, models.ErrDuplicateCustomer)
	}
	return GetCustomer(db, id)
}

// DeleteCustomer removes the customer and every review it wrote.
func DeleteCustomer(db *gorm.DB, id uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return notFound(err, models.ErrCustomerNotFound)
		}
		if err := tx.Select("Reviews").Delete(&customer).Error; err != nil {
			return fmt.Errorf("delete customer %d: %w", id, err)
		}
		return nil
	})
}

// CustomerItems returns the distinct items the customer reviewed.
func CustomerItems(db *gorm.DB, id uint64) ([]*models.Item, error) {
	var customer models.Customer
	err := db.Preload("Reviews", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Reviews.Item").
		First(&customer, id).Error
	if err != nil {
		return nil, notFound(err, models.ErrCustomerNotFound)
	}
	return customer.Items(), nil
}

func ensureUniqueName(tx *gorm.DB, name string, exceptID uint64) error {
	var n int64
	err := tx.Model(&models.Customer{}).
		Where("name = ? AND id <> ?", name, exceptID).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		return models.ErrDuplicateCustomer
	}
	return nil
}

// duplicate maps a storage unique violation onto sentinel.
func duplicate(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", sentinel, err)
	}
	return err
}
