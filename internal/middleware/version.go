// version.go
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

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/types"
)

// APIVersion is the version served by this build.
const APIVersion = "1.0.0"

// VersionMiddleware reads X-Api-Version, defaulting to the current version.
// Short forms are expanded and a different major version is rejected. The
// resolved version is stored in locals and echoed on the response.
func VersionMiddleware() fiber.Handler {
	major, _, _ := strings.Cut(APIVersion, ".")

	return func(c *fiber.Ctx) error {
		version := normalizeVersion(c.Get("X-Api-Version", APIVersion))

		requested, _, _ := strings.Cut(version, ".")
		if requested != major {
			return types.BadRequest("unsupported API version %q", version)
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}

// normalizeVersion expands "1" and "1.0" to "1.0.0".
func normalizeVersion(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	switch strings.Count(v, ".") {
	case 0:
		return v + ".0.0"
	case 1:
		return v + ".0"
	}
	return v
}
