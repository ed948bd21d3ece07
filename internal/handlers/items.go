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

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/serialize"
	"github.com/localnerve/reviewsdb/internal/services"
	"github.com/localnerve/reviewsdb/internal/utils"
	"github.com/localnerve/reviewsdb/internal/validator"
	"gorm.io/gorm"
)

// itemSummary leaves reviews out of the item listing.
var itemSummary = []string{"reviews"}

// ItemHandler handles item routes
type ItemHandler struct {
	DB *gorm.DB
}

// CreateItemRequest is the body of POST /items
type CreateItemRequest struct {
	Name  string  `json:"name" validate:"max=255"`
	Price float64 `json:"price"`
}

// ListItems handles GET /items
// @Summary List items
// @Description Item summaries, without reviews
// @Tags Items
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /items [get]
func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	items, err := services.ListItems(session(c, h.DB), itemSummary...)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serialize.Many(serializer, items, itemSummary...), fiber.StatusOK)
}

// CreateItem handles POST /items
// @Summary Create an item
// @Tags Items
// @Accept json
// @Produce json
// @Param item body CreateItemRequest true "Item"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /items [post]
func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	req, err := validator.ParseBody[CreateItemRequest](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	item, err := services.CreateItem(session(c, h.DB), req.Name, req.Price)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(item), fiber.StatusCreated)
}

// GetItem handles GET /items/:id
// @Summary Get an item with its reviews
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Param exclude query string false "Comma-separated relationship paths to leave out"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [get]
func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrItemNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}
	rules, err := parseExclusions(c, models.KindItem)
	if err != nil {
		return utils.WriteError(c, err)
	}

	item, err := services.GetItem(session(c, h.DB), id, rules...)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(item, rules...), fiber.StatusOK)
}

// PatchItem handles PATCH /items/:id
// @Summary Update item fields
// @Description Only name and price may be patched; any other key is rejected
// @Tags Items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param patch body models.ItemPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [patch]
func (h *ItemHandler) PatchItem(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrItemNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}
	patch, err := validator.ParsePatch[models.ItemPatch](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	item, err := services.PatchItem(session(c, h.DB), id, *patch)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(item), fiber.StatusOK)
}

// DeleteItem handles DELETE /items/:id
// @Summary Delete an item and its reviews
// @Tags Items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	const missing = "item does not exist"
	id, err := parseID(c, missing)
	if err != nil {
		return utils.WriteError(c, err)
	}

	if err := services.DeleteItem(session(c, h.DB), id); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			return utils.NotFoundResponse(c, missing)
		}
		return utils.WriteError(c, err)
	}
	return utils.EmptyResponse(c)
}
