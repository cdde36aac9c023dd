package validation

import "simpleadvert/internal/models"

// CheckUpdateDeleteRights allows the record's owner or a superuser.
// A record without an owner can only be changed by a superuser.
func CheckUpdateDeleteRights(record models.Owned, actor models.Actor) error {
	if actor.IsSuperuser || actor.Owns(record) {
		return nil
	}
	return models.NewForbiddenError("Only the author or a superuser can change this record")
}

// CheckCreateRights rejects feedback and complaints on the actor's own advert,
// unless the actor is a superuser.
func CheckCreateRights(advert models.Owned, actor models.Actor) error {
	if actor.IsSuperuser || !actor.Owns(advert) {
		return nil
	}
	return models.NewForbiddenError("You cannot review your own advert")
}

// CheckSuperuser requires an authenticated superuser.
func CheckSuperuser(actor *models.Actor) error {
	if actor == nil {
		return models.NewUnauthorizedError("Authentication required")
	}
	if !actor.IsSuperuser {
		return models.NewForbiddenError("Superuser access required")
	}
	return nil
}
