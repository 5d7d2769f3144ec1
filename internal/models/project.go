package models

import "time"

type Project struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	ProjectName string     `gorm:"type:varchar(255);not null" json:"project_name"`
	StartDate   time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:ProjectID" json:"-"`
}
