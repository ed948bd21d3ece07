package models

import "errors"

// Sentinel errors for the entity model. Use errors.Is() to check these.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrUserNotFound     = errors.New("user not found")

	// ErrEmptyName is returned when a customer name is set to "".
	ErrEmptyName = errors.New("name must not be empty")

	// ErrEmptyComment is returned when a review comment is set to "".
	ErrEmptyComment = errors.New("comment must not be empty")

	ErrEmptyUsername = errors.New("username must not be empty")
	ErrEmptyPassword = errors.New("password must not be empty")

	ErrDuplicateCustomer = errors.New("customer name already exists")
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrReviewCustomerMissing and ErrReviewItemMissing are returned when a
	// review references a row that does not exist.
	ErrReviewCustomerMissing = errors.New("review customer does not exist")
	ErrReviewItemMissing     = errors.New("review item does not exist")
)
