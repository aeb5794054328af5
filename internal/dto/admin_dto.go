package dto

// RankCreateDTO is used within StyleCreateDTO.
type RankCreateDTO struct {
	Name         string `json:"name" binding:"required"`
	OrderInStyle int    `json:"order_in_style" binding:"required,min=1"`
}

// StyleCreateDTO is for admin creation of a style with its rank ladder.
type StyleCreateDTO struct {
	Name             string          `json:"name" binding:"required"`
	NamingConvention string          `json:"naming_convention" binding:"omitempty,oneof=into_rank from_rank"`
	Ranks            []RankCreateDTO `json:"ranks" binding:"omitempty,dive"`
}

// ItemCreateDTO is one checklist entry within a category.
type ItemCreateDTO struct {
	Name            string   `json:"name" binding:"required"`
	Type            string   `json:"type" binding:"omitempty,oneof=skill form sparring time_trial conditioning"`
	Required        bool     `json:"required"`
	OrderInCategory int      `json:"order_in_category" binding:"required,min=1"`
	Reps            *int     `json:"reps"`
	Sets            *int     `json:"sets"`
	DurationSeconds *int     `json:"duration_seconds"`
	DistanceMeters  *float64 `json:"distance_meters"`
	TimeLimit       *string  `json:"time_limit"`
	TimeOperator    *string  `json:"time_operator" binding:"omitempty,oneof=under over"`
}

// CategoryCreateDTO groups items under a named banner on the test sheet.
type CategoryCreateDTO struct {
	Name        string          `json:"name" binding:"required"`
	OrderInTest int             `json:"order_in_test" binding:"required,min=1"`
	Items       []ItemCreateDTO `json:"items" binding:"required,min=1,dive"`
}

// RankTestCreateDTO is for admin creation of a complete curriculum.
type RankTestCreateDTO struct {
	Name       string              `json:"name" binding:"required"`
	StyleID    uint                `json:"style_id" binding:"required"`
	RankID     uint                `json:"rank_id" binding:"required"`
	Categories []CategoryCreateDTO `json:"categories" binding:"required,min=1,dive"`
}
