package model

import (
	"time"

	"gorm.io/gorm"
)

// NamingConvention controls which rank name keys a participant's curriculum
// lookup: the rank being tested into (default) or the rank tested from.
type NamingConvention string

const (
	IntoRank NamingConvention = "into_rank"
	FromRank NamingConvention = "from_rank"
)

type Style struct {
	ID               uint             `gorm:"primarykey" json:"id"`
	Name             string           `json:"name" gorm:"not null;uniqueIndex"` // "Brazilian Jiu-Jitsu"
	NamingConvention NamingConvention `json:"naming_convention" gorm:"default:'into_rank'"`
	Ranks            []Rank           `json:"ranks,omitempty" gorm:"foreignKey:StyleID"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
}

type Rank struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	StyleID      uint           `json:"style_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"` // "Yellow Belt", unique per style
	OrderInStyle int            `json:"order_in_style" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
