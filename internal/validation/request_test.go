package validation

import (
	"testing"

	"simpleadvert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_AdvertCreate(t *testing.T) {
	t.Parallel()

	valid := models.AdvertCreate{Title: "Bike", Description: "Red", Kind: models.AdvertKindService, Price: 1}
	assert.NoError(t, ValidateStruct(valid))

	err := ValidateStruct(models.AdvertCreate{Kind: "Аренда"})
	require.Error(t, err)
	assert.Equal(t, models.CodeValidation, models.ErrorCode(err))
	assert.Contains(t, err.Error(), "title is required")
	assert.Contains(t, err.Error(), "description is required")
	assert.Contains(t, err.Error(), "kind must be one of [Покупка Продажа Услуга]")
	assert.Contains(t, err.Error(), "price must be greater than 0")
}

func TestValidateAdvertPatch(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateAdvertPatch(models.AdvertPatch{}))
	assert.NoError(t, ValidateAdvertPatch(models.AdvertPatch{Price: models.Some(20)}))

	err := ValidateAdvertPatch(models.AdvertPatch{
		Title: models.Optional[string]{Set: true, Null: true},
		Price: models.Some(-1),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title cannot be null")
	assert.Contains(t, err.Error(), "price must be greater than 0")
}

func TestValidateReviewPatch(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateReviewPatch(models.ReviewPatch{Text: models.Some("updated")}))
	assert.Equal(t, models.CodeValidation, models.ErrorCode(ValidateReviewPatch(models.ReviewPatch{Text: models.Some("")})))
}
