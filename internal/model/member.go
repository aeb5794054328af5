package model

import (
	"time"

	"gorm.io/gorm"
)

type Member struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	FirstName   string           `json:"first_name" gorm:"not null"`
	LastName    string           `json:"last_name" gorm:"not null"`
	Email       *string          `json:"email,omitempty"`
	StyleID     *uint            `json:"style_id,omitempty" gorm:"index"`
	CurrentRank string           `json:"current_rank"`
	Documents   []MemberDocument `json:"documents,omitempty" gorm:"foreignKey:MemberID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

// MemberDocument is a reference to an uploaded file in a member's record.
// DisplayName is the sole de-duplication key: saving a document with a
// name that already exists replaces that entry.
type MemberDocument struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	MemberID    uint           `json:"member_id" gorm:"not null;index"`
	DisplayName string         `json:"display_name" gorm:"not null"`
	URL         string         `json:"url" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
