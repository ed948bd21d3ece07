// common.go
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

package handlers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/serialize"
	"github.com/localnerve/reviewsdb/internal/types"
	"github.com/localnerve/reviewsdb/internal/utils"
	"gorm.io/gorm"
)

var serializer = serialize.New(models.Schema)

// parseID reads the :id route parameter. The router only matches integers,
// so a failure here is a negative or overflowing id and reported as not found.
func parseID(c *fiber.Ctx, notFound string) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, types.NotFound(notFound)
	}
	return id, nil
}

// parseExclusions collects the 'exclude' query parameters, which may repeat
// and may be comma-separated, and checks them against kind.
func parseExclusions(c *fiber.Ctx, kind string) ([]string, error) {
	exclusionMap := make(map[string]struct{})

	args := c.Context().QueryArgs()
	for key, value := range args.All() {
		if string(key) != "exclude" {
			continue
		}
		for _, v := range strings.Split(string(value), ",") {
			v = strings.TrimSpace(v)
			if v != "" {
				exclusionMap[v] = struct{}{}
			}
		}
	}

	if len(exclusionMap) == 0 {
		return nil, nil
	}

	exclusions := make([]string, 0, len(exclusionMap))
	for k := range exclusionMap {
		exclusions = append(exclusions, k)
	}
	sort.Strings(exclusions)

	if err := models.Schema.Validate(kind, exclusions...); err != nil {
		return nil, types.BadRequest("invalid exclude: %v", err)
	}
	return exclusions, nil
}

// session scopes db to the request context.
func session(c *fiber.Ctx, db *gorm.DB) *gorm.DB {
	return db.WithContext(c.UserContext())
}

// ErrorHandler renders errors that escape a handler, recovered panics
// included, in the same shape as handled errors.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return utils.WriteError(c, err)
}
