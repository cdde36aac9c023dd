package validation

import (
	"context"

	"simpleadvert/internal/models"
)

// MsgDescriptionTaken is returned when another advert already uses a description.
const MsgDescriptionTaken = "description must be unique"

// DescriptionLookup reports whether any advert already has a description.
type DescriptionLookup interface {
	DescriptionExists(ctx context.Context, description string) (bool, error)
}

// CheckDescriptionUnique fails with CONFLICT when description is already in use.
func CheckDescriptionUnique(ctx context.Context, lookup DescriptionLookup, description string) error {
	exists, err := lookup.DescriptionExists(ctx, description)
	if err != nil {
		return err
	}
	if exists {
		return models.NewConflictError(MsgDescriptionTaken, nil)
	}
	return nil
}
