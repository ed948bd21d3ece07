// reviews.go
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
	"github.com/localnerve/reviewsdb/internal/models"
	"gorm.io/gorm"
)

// ListReviews returns every review with its customer and item.
func ListReviews(db *gorm.DB, rules ...string) ([]models.Review, error) {
	var reviews []models.Review
	err := withGraph(listQuery(db, "reviews.list"), models.KindReview, rules...).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview stores a review of itemID by customerID. Both references must
// exist when given; the empty comment is rejected before any write.
func CreateReview(db *gorm.DB, comment string, customerID, itemID *uint64) (*models.Review, error) {
	review, err := models.NewReview(comment, customerID, itemID)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if customerID != nil {
			ok, err := exists(tx, &models.Customer{}, *customerID)
			if err != nil {
				return err
			}
			if !ok {
				return models.ErrReviewCustomerMissing
			}
		}
		if itemID != nil {
			ok, err := exists(tx, &models.Item{}, *itemID)
			if err != nil {
				return err
			}
			if !ok {
				return models.ErrReviewItemMissing
			}
		}
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return withGraph(tx, models.KindReview).First(review, review.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
