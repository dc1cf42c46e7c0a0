package models

import "time"

type Task struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title     string `gorm:"not null"`
	Completed bool   `gorm:"not null;default:false"`
	ProjectID uint   `gorm:"not null;index"` // Immutable after creation

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
