package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ParticipantRegistered = "registered"
	ParticipantPassed     = "passed"
	ParticipantFailed     = "failed"
	ParticipantNoShow     = "no_show"
	ParticipantIncomplete = "incomplete"
)

// Participant is one member's registration in a testing event. Rank names
// are copied from the member at registration time so later rank edits do
// not rewrite history.
type Participant struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	TestingEventID    uint           `json:"testing_event_id" gorm:"not null;index"`
	MemberID          uint           `json:"member_id" gorm:"not null;index"`
	Member            Member         `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	CurrentRank       string         `json:"current_rank"`
	TestingForRank    string         `json:"testing_for_rank"`
	Status            string         `json:"status" gorm:"default:'registered'"`
	Score             *int           `json:"score,omitempty"`                        // 0-100, nil until graded
	ItemScores        string         `json:"item_scores,omitempty" gorm:"type:text"` // serialized score map
	Notes             string         `json:"notes,omitempty" gorm:"type:text"`       // participant-facing, restricted markup
	AdminNotes        string         `json:"admin_notes,omitempty" gorm:"type:text"` // internal
	ResultDocumentURL *string        `json:"result_document_url,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}
