package domain

import "time"

type Task struct {
	Id        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:500;not null" json:"name"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	Username  string     `gorm:"size:200;not null;index" json:"username"`
	CreatedAt *time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
