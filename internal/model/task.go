package model

import "time"

// Task is one logged unit of work.
type Task struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"not null;check:username <> ''"`
	Title     string `gorm:"not null;check:title <> ''"`
	TotalTime int    `gorm:"not null"` // minutes
	Notes     string
	Timestamp time.Time `gorm:"not null;index"`
}

// TableName keeps the table named after the record rather than gorm's plural.
func (Task) TableName() string {
	return "task"
}
