package models

import (
	"time"

	"gorm.io/gorm"
)

// AdvertKind is the kind of deal an advert offers.
type AdvertKind string

const (
	AdvertKindBuying  AdvertKind = "Покупка"
	AdvertKindSelling AdvertKind = "Продажа"
	AdvertKindService AdvertKind = "Услуга"
)

// AdvertKinds lists every accepted kind.
var AdvertKinds = []AdvertKind{AdvertKindBuying, AdvertKindSelling, AdvertKindService}

// Valid reports whether k is one of AdvertKinds.
func (k AdvertKind) Valid() bool {
	for _, known := range AdvertKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Advert represents a classified listing.
type Advert struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Description string     `gorm:"type:text;not null;uniqueIndex:uq_advert_description" json:"description"`
	Kind        AdvertKind `gorm:"size:16;not null" json:"kind"`
	Price       int        `gorm:"not null;check:chk_advert_price_positive,price > 0" json:"price"`
	UserID      *uint      `gorm:"index" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Advert) TableName() string { return "adverts" }

func (a *Advert) PrimaryKey() uint       { return a.ID }
func (a *Advert) OwnerID() *uint         { return a.UserID }
func (a *Advert) SetOwnerID(userID uint) { a.UserID = &userID }

// BeforeDelete removes the advert's feedback and complaints in the deleting transaction,
// so the cascade holds on drivers where foreign keys are not enforced.
func (a *Advert) BeforeDelete(tx *gorm.DB) error {
	if a.ID == 0 {
		return nil
	}
	if err := tx.Where("advert_id = ?", a.ID).Delete(&Feedback{}).Error; err != nil {
		return err
	}
	return tx.Where("advert_id = ?", a.ID).Delete(&Complaint{}).Error
}

// AdvertCreate is the request body for creating an advert.
type AdvertCreate struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description string     `json:"description" validate:"required"`
	Kind        AdvertKind `json:"kind" validate:"required,advert_kind"`
	Price       int        `json:"price" validate:"gt=0"`
}

// AdvertPatch is the request body for a partial advert update.
type AdvertPatch struct {
	Title       Optional[string]     `json:"title" swaggertype:"string"`
	Description Optional[string]     `json:"description" swaggertype:"string"`
	Kind        Optional[AdvertKind] `json:"kind" swaggertype:"string"`
	Price       Optional[int]        `json:"price" swaggertype:"integer"`
}

func (p AdvertPatch) Changes() map[string]any {
	changes := make(map[string]any, 4)
	if p.Title.Set {
		changes["title"] = p.Title.Value
	}
	if p.Description.Set {
		changes["description"] = p.Description.Value
	}
	if p.Kind.Set {
		changes["kind"] = p.Kind.Value
	}
	if p.Price.Set {
		changes["price"] = p.Price.Value
	}
	return changes
}
