package guest

import (
	"time"
)

// Guest represents the person a booking is held for
type Guest struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string  `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(255);not null" json:"last_name"`
	Email     *string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Country   *string `gorm:"type:varchar(100)" json:"country,omitempty"`
	Notes     *string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// FullName joins first and last name for display and search.
func (g Guest) FullName() string {
	if g.FirstName == "" {
		return g.LastName
	}
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}
