package validator_test

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/reviewsdb/internal/types"
	pkgvalidator "github.com/localnerve/reviewsdb/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleStruct struct {
	Name  string `json:"name" validate:"required,min=1,max=10"`
	Count int    `json:"count" validate:"gte=0"`
}

type samplePatch struct {
	Name  *string  `json:"name" validate:"omitnil,min=1"`
	Price *float64 `json:"price"`
}

func TestValidateValid(t *testing.T) {
	assert.NoError(t, pkgvalidator.Validate(&sampleStruct{Name: "hello"}))
}

func TestFormatValidationErrorsUsesJSONNames(t *testing.T) {
	err := pkgvalidator.Validate(&sampleStruct{Count: -1})
	require.Error(t, err)
	m := pkgvalidator.FormatValidationErrors(err)
	assert.Equal(t, "This field is required", m["name"])
	assert.Equal(t, "Must be greater than or equal to 0", m["count"])
}

func TestFormatValidationErrorsMax(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&sampleStruct{Name: "12345678901"}))
	assert.Equal(t, "Maximum length is 10", m["name"])
}

func TestFormatValidationErrorsNonValidationError(t *testing.T) {
	assert.Empty(t, pkgvalidator.FormatValidationErrors(errors.New("boom")))
}

// run sends body through a one-route app and returns what the handler saw.
func run[T any](t *testing.T, parse func(*fiber.Ctx) (*T, error), body string) (*T, error) {
	t.Helper()
	var (
		got    *T
		gotErr error
	)
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		got, gotErr = parse(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	_, err := app.Test(req)
	require.NoError(t, err)
	return got, gotErr
}

func TestParseBody(t *testing.T) {
	got, err := run(t, pkgvalidator.ParseBody[sampleStruct], `{"name":"widget","count":2}`)
	require.NoError(t, err)
	assert.Equal(t, "widget", got.Name)

	_, err = run(t, pkgvalidator.ParseBody[sampleStruct], `{"name":`)
	var ce *types.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.Code)

	_, err = run(t, pkgvalidator.ParseBody[sampleStruct], `{"count":1}`)
	assert.NotEmpty(t, pkgvalidator.FormatValidationErrors(err))
}

func TestParsePatchAcceptsKnownFields(t *testing.T) {
	got, err := run(t, pkgvalidator.ParsePatch[samplePatch], `{"price":4.5}`)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	require.NotNil(t, got.Price)
	assert.Equal(t, 4.5, *got.Price)
}

func TestParsePatchRejectsUnknownFields(t *testing.T) {
	_, err := run(t, pkgvalidator.ParsePatch[samplePatch], `{"id":9999,"name":"x"}`)
	var ce *types.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.Code)
	assert.Equal(t, `field "id" cannot be patched`, ce.Message)
}

func TestParsePatchRejectsNull(t *testing.T) {
	_, err := run(t, pkgvalidator.ParsePatch[samplePatch], `{"name":null}`)
	var ce *types.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "cannot be null")
}

func TestParsePatchValidates(t *testing.T) {
	_, err := run(t, pkgvalidator.ParsePatch[samplePatch], `{"name":""}`)
	assert.Equal(t, "Minimum length is 1", pkgvalidator.FormatValidationErrors(err)["name"])
}

func TestParsePatchRejectsNonObject(t *testing.T) {
	_, err := run(t, pkgvalidator.ParsePatch[samplePatch], `[1,2]`)
	var ce *types.CustomError
	require.ErrorAs(t, err, &ce)
}
