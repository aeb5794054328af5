package model

import (
	"time"

	"gorm.io/gorm"
)

// RankTest is the curriculum for a single rank within a style: an ordered
// set of categories, each an ordered set of test items.
type RankTest struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	Name       string         `json:"name" gorm:"not null"` // "Yellow Belt Test"
	StyleID    uint           `json:"style_id" gorm:"not null;index"`
	RankID     uint           `json:"rank_id" gorm:"not null;index"`
	Categories []Category     `json:"categories,omitempty" gorm:"foreignKey:RankTestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

type Category struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	RankTestID  uint           `json:"rank_test_id" gorm:"not null;index"`
	Name        string         `json:"name" gorm:"not null"` // "Kicks", "Forms"
	OrderInTest int            `json:"order_in_test" gorm:"not null"`
	Items       []Item         `json:"items,omitempty" gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

type Item struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CategoryID      uint           `json:"category_id" gorm:"not null;index"`
	Name            string         `json:"name" gorm:"not null"`
	Type            string         `json:"type" gorm:"default:'skill'"` // "skill", "form", "time_trial", ...
	Required        bool           `json:"required" gorm:"default:false"`
	OrderInCategory int            `json:"order_in_category" gorm:"not null"`
	Reps            *int           `json:"reps,omitempty"`
	Sets            *int           `json:"sets,omitempty"`
	DurationSeconds *int           `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64       `json:"distance_meters,omitempty"`
	TimeLimit       *string        `json:"time_limit,omitempty"`    // "2:30"
	TimeOperator    *string        `json:"time_operator,omitempty"` // "under", "over"
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
