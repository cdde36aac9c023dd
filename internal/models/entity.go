// Package models contains data structures for the application's domain models.
package models

// Owned is implemented by records that carry an optional owner reference.
type Owned interface {
	OwnerID() *uint
}

// Entity is the capability set shared by every table the generic repository serves.
type Entity interface {
	Owned
	PrimaryKey() uint
	SetOwnerID(userID uint)
}

// Patch yields the column updates of a partial update, keyed by column name.
// Only fields present in the request appear in the map.
type Patch interface {
	Changes() map[string]any
}

// Actor is the authenticated user performing an operation.
type Actor struct {
	ID          uint `json:"id"`
	IsSuperuser bool `json:"is_superuser"`
}

// Owns reports whether the record's owner is this actor.
func (a Actor) Owns(record Owned) bool {
	owner := record.OwnerID()
	return owner != nil && *owner == a.ID
}
