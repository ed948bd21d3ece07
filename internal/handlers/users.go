// users.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/services"
	"github.com/localnerve/reviewsdb/internal/utils"
	"github.com/localnerve/reviewsdb/internal/validator"
	"gorm.io/gorm"
)

// UserHandler handles user account routes
type UserHandler struct {
	DB *gorm.DB
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=72"`
}

// CreateUser handles POST /users
// @Summary Create a user
// @Description The password is stored as a bcrypt hash and never returned
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	req, err := validator.ParseBody[CreateUserRequest](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	user, err := services.CreateUser(session(c, h.DB), req.Username, req.Password)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(user), fiber.StatusCreated)
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, models.ErrUserNotFound.Error())
	if err != nil {
		return utils.WriteError(c, err)
	}

	user, err := services.GetUser(session(c, h.DB), id)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(user), fiber.StatusOK)
}
