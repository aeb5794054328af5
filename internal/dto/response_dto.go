package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type RankResponseDTO struct {
	ID           uint   `json:"id"`
	StyleID      uint   `json:"style_id"`
	Name         string `json:"name"`
	OrderInStyle int    `json:"order_in_style"`
}

type StyleResponseDTO struct {
	ID               uint              `json:"id"`
	Name             string            `json:"name"`
	NamingConvention string            `json:"naming_convention"`
	Ranks            []RankResponseDTO `json:"ranks,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

type ItemResponseDTO struct {
	ID              uint     `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Required        bool     `json:"required"`
	OrderInCategory int      `json:"order_in_category"`
	Reps            *int     `json:"reps,omitempty"`
	Sets            *int     `json:"sets,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64 `json:"distance_meters,omitempty"`
	TimeLimit       *string  `json:"time_limit,omitempty"`
	TimeOperator    *string  `json:"time_operator,omitempty"`
}

type CategoryResponseDTO struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	OrderInTest int               `json:"order_in_test"`
	Items       []ItemResponseDTO `json:"items,omitempty"`
}

type RankTestResponseDTO struct {
	ID         uint                  `json:"id"`
	Name       string                `json:"name"`
	StyleID    uint                  `json:"style_id"`
	RankID     uint                  `json:"rank_id"`
	Categories []CategoryResponseDTO `json:"categories,omitempty"`
	CreatedAt  time.Time             `json:"created_at"`
}

type ParticipantResponseDTO struct {
	ID                uint    `json:"id"`
	TestingEventID    uint    `json:"testing_event_id"`
	MemberID          uint    `json:"member_id"`
	MemberName        string  `json:"member_name,omitempty"`
	CurrentRank       string  `json:"current_rank"`
	TestingForRank    string  `json:"testing_for_rank"`
	Status            string  `json:"status"`
	Score             *int    `json:"score,omitempty"`
	ResultDocumentURL *string `json:"result_document_url,omitempty"`
}

type EventResponseDTO struct {
	ID           uint                     `json:"id"`
	Name         string                   `json:"name"`
	Date         time.Time                `json:"date"`
	Time         *string                  `json:"time,omitempty"`
	Location     *string                  `json:"location,omitempty"`
	StyleID      uint                     `json:"style_id"`
	Status       string                   `json:"status"`
	Participants []ParticipantResponseDTO `json:"participants,omitempty"`
}
