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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/serialize"
	"github.com/localnerve/reviewsdb/internal/services"
	"github.com/localnerve/reviewsdb/internal/types"
	"github.com/localnerve/reviewsdb/internal/utils"
	"github.com/localnerve/reviewsdb/internal/validator"
	"gorm.io/gorm"
)

// ReviewHandler handles review routes
type ReviewHandler struct {
	DB *gorm.DB
}

// CreateReviewRequest is the body of POST /reviews. Ids may be numbers or
// numeric strings.
type CreateReviewRequest struct {
	Comment    string           `json:"comment"`
	CustomerID types.FlexUint64 `json:"customer_id" swaggertype:"integer"`
	ItemID     types.FlexUint64 `json:"item_id" swaggertype:"integer"`
}

// ListReviews handles GET /reviews
// @Summary List reviews
// @Description Every review with its customer and item
// @Tags Reviews
// @Produce json
// @Param exclude query string false "Comma-separated relationship paths to leave out"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c *fiber.Ctx) error {
	rules, err := parseExclusions(c, models.KindReview)
	if err != nil {
		return utils.WriteError(c, err)
	}

	reviews, err := services.ListReviews(session(c, h.DB), rules...)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serialize.Many(serializer, reviews, rules...), fiber.StatusOK)
}

// CreateReview handles POST /reviews
// @Summary Create a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 422 {object} utils.ErrorResponseStruct
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	req, err := validator.ParseBody[CreateReviewRequest](c)
	if err != nil {
		return utils.WriteError(c, err)
	}

	review, err := services.CreateReview(session(c, h.DB), req.Comment, req.CustomerID.Ptr(), req.ItemID.Ptr())
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, serializer.One(review), fiber.StatusOK)
}
