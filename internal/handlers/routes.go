// routes.go
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
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/config"
	"gorm.io/gorm"
)

// Register mounts every API route on router.
func Register(router fiber.Router, db *gorm.DB, cfg *config.Config, log *slog.Logger) {
	customers := &CustomerHandler{DB: db}
	items := &ItemHandler{DB: db}
	reviews := &ReviewHandler{DB: db}
	users := &UserHandler{DB: db}
	health := &HealthHandler{DB: db, Config: cfg, Log: log}

	router.Get("/health", health.Health)

	router.Get("/customer", customers.ListCustomers)
	router.Post("/customer", customers.CreateCustomer)
	router.Get("/customer/:id<int>", customers.GetCustomer)
	router.Patch("/customer/:id<int>", customers.PatchCustomer)
	router.Delete("/customer/:id<int>", customers.DeleteCustomer)
	router.Get("/customer/:id<int>/items", customers.CustomerItems)

	router.Get("/reviews", reviews.ListReviews)
	router.Post("/reviews", reviews.CreateReview)

	router.Get("/items", items.ListItems)
	router.Post("/items", items.CreateItem)
	router.Get("/items/:id<int>", items.GetItem)
	router.Patch("/items/:id<int>", items.PatchItem)
	router.Delete("/items/:id<int>", items.DeleteItem)

	router.Post("/users", users.CreateUser)
	router.Get("/users/:id<int>", users.GetUser)
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}
