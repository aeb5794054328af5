package dto

// ItemScoreDTO is the live score of one item on the grading sheet.
type ItemScoreDTO struct {
	ItemID uint   `json:"item_id"`
	State  string `json:"state"` // "incomplete", "passed", "failed"
	Notes  string `json:"notes,omitempty"`
}

// SummaryDTO is the live aggregate shown while grading.
type SummaryDTO struct {
	TotalItems        int    `json:"total_items"`
	PassedItems       int    `json:"passed_items"`
	Percent           int    `json:"percent"`
	RequiredRemaining int    `json:"required_remaining"`
	FinalStatus       string `json:"final_status"`
}

// GradingSheetDTO is the full grading screen payload for one
// participant. When no curriculum resolves, CurriculumFound is false,
// Curriculum is nil and SaveEnabled is false; the client renders the
// empty state instead of a sheet.
type GradingSheetDTO struct {
	ParticipantID   uint                 `json:"participant_id"`
	MemberName      string               `json:"member_name"`
	CurrentRank     string               `json:"current_rank"`
	TestingForRank  string               `json:"testing_for_rank"`
	CurriculumFound bool                 `json:"curriculum_found"`
	SaveEnabled     bool                 `json:"save_enabled"`
	Curriculum      *RankTestResponseDTO `json:"curriculum,omitempty"`
	Scores          []ItemScoreDTO       `json:"scores,omitempty"`
	Summary         SummaryDTO           `json:"summary"`
	Notes           string               `json:"notes,omitempty"`
	AdminNotes      string               `json:"admin_notes,omitempty"`
}

// ToggleResponseDTO is returned after one tap on an item.
type ToggleResponseDTO struct {
	ItemID  uint       `json:"item_id"`
	State   string     `json:"state"`
	Summary SummaryDTO `json:"summary"`
}

// AnnotateRequestDTO sets an item's free-text note. AsTime applies the
// M(M):SS time formatting used for timed items.
type AnnotateRequestDTO struct {
	Notes  string `json:"notes"`
	AsTime bool   `json:"as_time"`
}

// SaveRequestDTO saves one participant's grades. Result is the grader's
// explicit final decision; empty leaves the participant incomplete.
type SaveRequestDTO struct {
	Result     string `json:"result" binding:"omitempty,oneof=passed failed"`
	Notes      string `json:"notes"`
	AdminNotes string `json:"admin_notes"`
}

// GradeResultDTO is one participant's outcome from a save, alone or in
// bulk. OK is false when the score save itself failed; a missing
// DocumentURL with OK true means only the report upload failed, which
// intentionally does not fail the save.
type GradeResultDTO struct {
	ParticipantID uint   `json:"participant_id"`
	MemberName    string `json:"member_name,omitempty"`
	OK            bool   `json:"ok"`
	Percent       int    `json:"percent"`
	Status        string `json:"status"`
	DocumentURL   string `json:"document_url,omitempty"`
	Error         string `json:"error,omitempty"`
}

// BulkGradeRequestDTO grades every participant of an event in one pass.
type BulkGradeRequestDTO struct {
	// Overrides maps participant ID to "passed" or "failed". Absent
	// participants are saved as incomplete.
	Overrides map[uint]string `json:"overrides"`
}

// BulkGradeSummaryDTO reports the bulk outcome, failures included.
type BulkGradeSummaryDTO struct {
	EventID     uint             `json:"event_id"`
	Total       int              `json:"total"`
	FailedCount int              `json:"failed_count"`
	Results     []GradeResultDTO `json:"results"`
}
