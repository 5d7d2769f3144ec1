package models

import "time"

type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(12)" json:"phone"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Avatar    *string   `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Tasks  []Task          `gorm:"foreignKey:UserID" json:"-"`
	Tokens []PersonalToken `gorm:"foreignKey:UserID" json:"-"`
}
