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

// CustomerHandler handles customer routes
type CustomerHandler struct {
	DB *gorm.DB
}

// CreateCustomerRequest is the body of POST /customer
type CreateCustomerRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// ListCustomers handles GET /customer
// @Summary List customers
// @Description List every customer with its reviews and the item of each review
// @Tags Customers
// @Produce json
// @Param exclude query string false "Comma-separated relationship paths to leave out"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /customer [get]
func (h *CustomerHandler) ListCustomers(c *fiber.Ctx) error {
	rules, err := parseExclusions(c, models.KindCustomer)
	if err != nil {
		return utils.WriteError(c, err)
	}

	customers, err := services.ListCustomers(session(c, h.DB), rules...)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serialize.Many(serializer, customers, rules...), fiber.StatusOK)
}

// CreateCustomer handles POST /customer
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body CreateCustomerRequest true "Customer"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /customer [post]
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	req, err := validator.ParseBody[CreateCustomerRequest](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	customer, err := services.CreateCustomer(session(c, h.DB), req.Name)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(customer), fiber.StatusOK)
}

// GetCustomer handles GET /customer/:id
// @Summary Get a customer
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Param exclude query string false "Comma-separated relationship paths to leave out"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /customer/{id} [get]
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrCustomerNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}
	rules, err := parseExclusions(c, models.KindCustomer)
	if err != nil {
		return utils.WriteError(c, err)
	}

	customer, err := services.GetCustomer(session(c, h.DB), id, rules...)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(customer, rules...), fiber.StatusOK)
}

// PatchCustomer handles PATCH /customer/:id
// @Summary Update customer fields
// @Description Only name may be patched; any other key is rejected
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param patch body models.CustomerPatch true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /customer/{id} [patch]
func (h *CustomerHandler) PatchCustomer(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrCustomerNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}
	patch, err := validator.ParsePatch[models.CustomerPatch](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	customer, err := services.PatchCustomer(session(c, h.DB), id, *patch)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(customer), fiber.StatusOK)
}

// DeleteCustomer handles DELETE /customer/:id
// @Summary Delete a customer and its reviews
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /customer/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	const missing = "customer does not exist"
	id, err := parseID(c, missing)
	if err != nil {
		return utils.WriteError(c, err)
	}

	if err := services.DeleteCustomer(session(c, h.DB), id); err != nil {
		if errors.Is(err, models.ErrCustomerNotFound) {
			return utils.NotFoundResponse(c, missing)
		}
		return utils.WriteError(c, err)
	}
	return utils.EmptyResponse(c)
}

// CustomerItems handles GET /customer/:id/items
// @Summary List the items a customer reviewed
// @Description Distinct items, in the order of the customer's first review of each
// @Tags Customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /customer/{id}/items [get]
func (h *CustomerHandler) CustomerItems(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrCustomerNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}

	items, err := services.CustomerItems(session(c, h.DB), id)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serialize.Many(serializer, items, "reviews"), fiber.StatusOK)
}
