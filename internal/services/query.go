// query.go
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

	"github.com/localnerve/reviewsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// withGraph preloads exactly the associations the serializer will visit for
// kind under rules. Preloaded collections are ordered by id.
func withGraph(db *gorm.DB, kind string, rules ...string) *gorm.DB {
	for _, path := range models.Schema.Preloads(kind, rules...) {
		db = db.Preload(path, func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		})
	}
	return db
}

// listQuery tags a list query with a comment naming it, so it can be found
// in the database's statement log.
func listQuery(db *gorm.DB, name string) *gorm.DB {
	return db.Clauses(hints.Comment("select", name)).Order("id")
}

// notFound replaces gorm.ErrRecordNotFound with sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// exists reports whether a row of model with the primary key id is present.
func exists(tx *gorm.DB, model any, id uint64) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
