package dto

import "time"

// EventCreateDTO schedules a testing event for a style.
type EventCreateDTO struct {
	Name     string    `json:"name" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Time     *string   `json:"time"`
	Location *string   `json:"location"`
	StyleID  uint      `json:"style_id" binding:"required"`
}

// ParticipantAddDTO registers a member for an event. Rank fields are
// computed from the member's record at registration time.
type ParticipantAddDTO struct {
	MemberID uint `json:"member_id" binding:"required"`
}

// ParticipantStatusDTO edits a participant's status directly, outside
// grading (e.g. marking a no-show).
type ParticipantStatusDTO struct {
	Status string `json:"status" binding:"required,oneof=registered passed failed no_show incomplete"`
}

// MemberCreateDTO enrolls a member.
type MemberCreateDTO struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Email       *string `json:"email" binding:"omitempty,email"`
	StyleID     *uint   `json:"style_id"`
	CurrentRank string  `json:"current_rank"`
}
