package models

import "time"

// Feedback is a review left on an advert by someone other than its owner.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AdvertID  uint      `gorm:"not null;index" json:"advert_id"`
	Advert    *Advert   `gorm:"foreignKey:AdvertID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) PrimaryKey() uint       { return f.ID }
func (f *Feedback) OwnerID() *uint         { return f.UserID }
func (f *Feedback) SetOwnerID(userID uint) { f.UserID = &userID }

// Complaint is a report about an advert; only superusers may read complaints.
type Complaint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AdvertID  uint      `gorm:"not null;index" json:"advert_id"`
	Advert    *Advert   `gorm:"foreignKey:AdvertID;constraint:OnDelete:CASCADE" json:"-"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Complaint) TableName() string { return "complaints" }

func (c *Complaint) PrimaryKey() uint       { return c.ID }
func (c *Complaint) OwnerID() *uint         { return c.UserID }
func (c *Complaint) SetOwnerID(userID uint) { c.UserID = &userID }

// ReviewCreate is the request body for creating feedback or a complaint.
type ReviewCreate struct {
	Text     string `json:"text" validate:"required"`
	AdvertID uint   `json:"advert_id" validate:"required,gt=0"`
}

// ReviewPatch is the request body for a partial feedback or complaint update.
type ReviewPatch struct {
	Text Optional[string] `json:"text" swaggertype:"string"`
}

func (p ReviewPatch) Changes() map[string]any {
	changes := make(map[string]any, 1)
	if p.Text.Set {
		changes["text"] = p.Text.Value
	}
	return changes
}
