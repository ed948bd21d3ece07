package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/localnerve/reviewsdb/internal/config"
	"github.com/localnerve/reviewsdb/internal/logger"
	"github.com/localnerve/reviewsdb/internal/models"
	"github.com/localnerve/reviewsdb/internal/services"
	"github.com/localnerve/reviewsdb/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// seed creates two customers, two items and three reviews:
// Ada reviewed Lamp twice and Desk once; Bo reviewed nothing.
func seed(t *testing.T, db *gorm.DB) (ada, bo *models.Customer, lamp, desk *models.Item) {
	t.Helper()
	var err error
	ada, err = services.CreateCustomer(db, "Ada")
	require.NoError(t, err)
	bo, err = services.CreateCustomer(db, "Bo")
	require.NoError(t, err)
	lamp, err = services.CreateItem(db, "Lamp", 12.5)
	require.NoError(t, err)
	desk, err = services.CreateItem(db, "Desk", 99)
	require.NoError(t, err)

	for _, r := range []struct {
		comment string
		item    *models.Item
	}{{"bright", lamp}, {"sturdy", desk}, {"still bright", lamp}} {
		_, err = services.CreateReview(db, r.comment, &ada.ID, &r.item.ID)
		require.NoError(t, err)
	}
	return ada, bo, lamp, desk
}

func countReviews(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Review{}).Count(&n).Error)
	return n
}

func TestCreateCustomer(t *testing.T) {
	db := testutil.OpenSQLite(t)

	c, err := services.CreateCustomer(db, "Ada")
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	_, err = services.CreateCustomer(db, "Ada")
	assert.ErrorIs(t, err, models.ErrDuplicateCustomer)

	_, err = services.CreateCustomer(db, "")
	assert.ErrorIs(t, err, models.ErrEmptyName)
}

func TestGetCustomerLoadsGraph(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, _, lamp, _ := seed(t, db)

	got, err := services.GetCustomer(db, ada.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 3)
	assert.Equal(t, "bright", got.Reviews[0].Comment)
	require.NotNil(t, got.Reviews[0].Item)
	assert.Equal(t, lamp.ID, got.Reviews[0].Item.ID)
	assert.Nil(t, got.Reviews[0].Customer, "back-reference is never loaded")

	_, err = services.GetCustomer(db, 4242)
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestListCustomers(t *testing.T) {
	db := testutil.OpenSQLite(t)
	seed(t, db)

	customers, err := services.ListCustomers(db)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ada", customers[0].Name)
	assert.Len(t, customers[0].Reviews, 3)
	assert.Empty(t, customers[1].Reviews)
}

func TestPatchCustomer(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, bo, _, _ := seed(t, db)

	got, err := services.PatchCustomer(db, ada.ID, models.CustomerPatch{Name: ptr("Ada L.")})
	require.NoError(t, err)
	assert.Equal(t, ada.ID, got.ID)
	assert.Equal(t, "Ada L.", got.Name)
	assert.Len(t, got.Reviews, 3)

	_, err = services.PatchCustomer(db, ada.ID, models.CustomerPatch{Name: ptr(bo.Name)})
	assert.ErrorIs(t, err, models.ErrDuplicateCustomer)

	_, err = services.PatchCustomer(db, ada.ID, models.CustomerPatch{Name: ptr("")})
	assert.ErrorIs(t, err, models.ErrEmptyName)

	_, err = services.PatchCustomer(db, 4242, models.CustomerPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)

	// Renaming to the current name is not a conflict.
	_, err = services.PatchCustomer(db, ada.ID, models.CustomerPatch{Name: ptr("Ada L.")})
	assert.NoError(t, err)
}

func TestDeleteCustomerCascades(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, bo, lamp, _ := seed(t, db)
	_, err := services.CreateReview(db, "meh", &bo.ID, &lamp.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, countReviews(t, db))

	require.NoError(t, services.DeleteCustomer(db, ada.ID))
	assert.EqualValues(t, 1, countReviews(t, db))

	_, err = services.GetCustomer(db, ada.ID)
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)

	// Items survive the customer.
	item, err := services.GetItem(db, lamp.ID)
	require.NoError(t, err)
	require.Len(t, item.Reviews, 1)
	assert.Equal(t, "meh", item.Reviews[0].Comment)

	assert.ErrorIs(t, services.DeleteCustomer(db, ada.ID), models.ErrCustomerNotFound)
}

func TestCustomerItemsAreDistinct(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, bo, lamp, desk := seed(t, db)

	items, err := services.CustomerItems(db, ada.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, lamp.ID, items[0].ID)
	assert.Equal(t, desk.ID, items[1].ID)

	items, err = services.CustomerItems(db, bo.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	_, err = services.CustomerItems(db, 4242)
	assert.ErrorIs(t, err, models.ErrCustomerNotFound)
}

func TestListItemsWithoutReviewsSkipsPreload(t *testing.T) {
	db := testutil.OpenSQLite(t)
	seed(t, db)

	items, err := services.ListItems(db, "reviews")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].Reviews)

	items, err = services.ListItems(db)
	require.NoError(t, err)
	assert.Len(t, items[0].Reviews, 2)
	require.NotNil(t, items[0].Reviews[0].Customer)
	assert.Equal(t, "Ada", items[0].Reviews[0].Customer.Name)
}

func TestPatchItem(t *testing.T) {
	db := testutil.OpenSQLite(t)
	_, _, lamp, _ := seed(t, db)

	got, err := services.PatchItem(db, lamp.ID, models.ItemPatch{Price: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)
	assert.Zero(t, got.Price)

	got, err = services.PatchItem(db, lamp.ID, models.ItemPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Lamp", got.Name)

	_, err = services.PatchItem(db, 4242, models.ItemPatch{Name: ptr("x")})
	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestDeleteItemCascades(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, _, lamp, _ := seed(t, db)

	require.NoError(t, services.DeleteItem(db, lamp.ID))
	assert.EqualValues(t, 1, countReviews(t, db))

	got, err := services.GetCustomer(db, ada.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "sturdy", got.Reviews[0].Comment)

	assert.ErrorIs(t, services.DeleteItem(db, lamp.ID), models.ErrItemNotFound)
}

func TestCreateReview(t *testing.T) {
	db := testutil.OpenSQLite(t)
	ada, _, lamp, _ := seed(t, db)

	r, err := services.CreateReview(db, "lovely", &ada.ID, &lamp.ID)
	require.NoError(t, err)
	require.NotNil(t, r.Customer)
	require.NotNil(t, r.Item)
	assert.Equal(t, "Ada", r.Customer.Name)
	assert.Equal(t, "Lamp", r.Item.Name)

	_, err = services.CreateReview(db, "", &ada.ID, &lamp.ID)
	assert.ErrorIs(t, err, models.ErrEmptyComment)

	_, err = services.CreateReview(db, "ghost", ptr(uint64(4242)), &lamp.ID)
	assert.ErrorIs(t, err, models.ErrReviewCustomerMissing)

	_, err = services.CreateReview(db, "ghost", &ada.ID, ptr(uint64(4242)))
	assert.ErrorIs(t, err, models.ErrReviewItemMissing)

	assert.EqualValues(t, 4, countReviews(t, db))
}

func TestListReviews(t *testing.T) {
	db := testutil.OpenSQLite(t)
	seed(t, db)

	reviews, err := services.ListReviews(db)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	for _, r := range reviews {
		require.NotNil(t, r.Customer)
		require.NotNil(t, r.Item)
		assert.Nil(t, r.Customer.Reviews)
	}
}

func TestUsers(t *testing.T) {
	models.SetPasswordCost(bcrypt.MinCost)
	t.Cleanup(func() { models.SetPasswordCost(bcrypt.DefaultCost) })
	db := testutil.OpenSQLite(t)

	u, err := services.CreateUser(db, "ada", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	_, err = services.CreateUser(db, "ada", "other")
	assert.ErrorIs(t, err, models.ErrDuplicateUsername)

	got, err := services.GetUser(db, u.ID)
	require.NoError(t, err)
	assert.True(t, got.Authenticate("s3cret"))

	_, err = services.GetUser(db, 4242)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestHealthCheck(t *testing.T) {
	db := testutil.OpenSQLite(t)
	cfg := &config.Config{DBType: "sqlite", DBDatabase: "memory"}
	log := logger.NewWithWriter(io.Discard, "error", "")

	result := services.HealthCheck(context.Background(), cfg, db, log)
	assert.True(t, result.Healthy())
	assert.Equal(t, "ok", result.Database)

	unreachable := &config.Config{DBType: "postgres", DBHost: "127.0.0.1", DBPort: "1"}
	result = services.HealthCheck(context.Background(), unreachable, db, log)
	assert.False(t, result.Healthy())
	assert.Equal(t, "unreachable", result.Database)
}
