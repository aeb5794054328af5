package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	EventScheduled = "scheduled"
	EventCompleted = "completed"
)

type TestingEvent struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `json:"name" gorm:"not null"` // "Fall Belt Testing"
	Date         time.Time      `json:"date" gorm:"not null"`
	Time         *string        `json:"time,omitempty"` // "18:00", optional
	Location     *string        `json:"location,omitempty"`
	StyleID      uint           `json:"style_id" gorm:"not null;index"`
	Style        Style          `json:"style,omitempty" gorm:"foreignKey:StyleID"`
	Status       string         `json:"status" gorm:"default:'scheduled'"`
	Participants []Participant  `json:"participants,omitempty" gorm:"foreignKey:TestingEventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
