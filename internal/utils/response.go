// response.go
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

package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/types"
	pkgvalidator "github.com/localnerve/reviewsdb/internal/validator"
	"gorm.io/gorm"
)

// HideInternalErrors replaces 5xx messages with the status text. The server
// turns it on in production.
var HideInternalErrors bool

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse sends a standard success response
func SuccessResponse(c *fiber.Ctx, data any, status int) error {
	return c.Status(status).JSON(data)
}

// EmptyResponse sends an empty JSON object
func EmptyResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{})
}

// ErrorResponse sends a standard error response
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(ErrorResponseStruct{Error: message})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
func WriteError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponseStruct{
			Error:  "validation failed",
			Fields: pkgvalidator.FormatValidationErrors(ve),
		})
	}

	status := StatusOf(err)
	return ErrorResponse(c, SafeMessage(err, status), status)
}

// StatusOf returns the HTTP status for err. Unrecognized errors are 500.
func StatusOf(err error) int {
	var ce *types.CustomError
	var fe *fiber.Error
	var ve validator.ValidationErrors

	switch {
	case errors.As(err, &ce):
		return ce.Code
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrEmptyComment),
		errors.Is(err, models.ErrEmptyUsername),
		errors.Is(err, models.ErrEmptyPassword):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateCustomer),
		errors.Is(err, models.ErrDuplicateUsername),
		errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict
	case errors.Is(err, models.ErrReviewCustomerMissing),
		errors.Is(err, models.ErrReviewItemMissing),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

// SafeMessage returns the message to show a client for err at status.
func SafeMessage(err error, status int) string {
	var ce *types.CustomError
	var fe *fiber.Error
	switch {
	case status >= fiber.StatusInternalServerError && HideInternalErrors:
		return http.StatusText(status)
	case errors.As(err, &ce):
		return ce.Message
	case errors.As(err, &fe):
		return fe.Message
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "resource already exists"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "referenced resource does not exist"
	default:
		return err.Error()
	}
}
