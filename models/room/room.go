package room

import (
	"time"
)

// Room represents a rentable unit of the lodge
type Room struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Number      string  `gorm:"type:varchar(20);not null;unique" json:"number"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Capacity    int     `gorm:"type:int;not null;default:2" json:"capacity"`
	Floor       *int    `gorm:"type:int" json:"floor,omitempty"`
	IsActive    bool    `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Label returns the display label used on the calendar rows.
func (r Room) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Number
}
