package repository

import (
	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

// GradingUpdate is the partial update written when a participant is
// saved from the grading screen. Only these fields change; the rest of
// the record is left alone.
type GradingUpdate struct {
	ItemScores string
	Score      *int
	Status     string
	Notes      string
	AdminNotes string
}

type ParticipantRepository interface {
	Create(p *model.Participant) error
	FindByID(id uint) (*model.Participant, error)
	FindByIDWithMember(id uint) (*model.Participant, error)
	UpdateGrading(id uint, upd GradingUpdate) error
	UpdateDocumentURL(id uint, url string) error
	UpdateStatus(id uint, status string) error
	Delete(id uint) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(p *model.Participant) error {
	return r.db.Create(p).Error
}

func (r *participantRepository) FindByID(id uint) (*model.Participant, error) {
	var p model.Participant
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) FindByIDWithMember(id uint) (*model.Participant, error) {
	var p model.Participant
	if err := r.db.Preload("Member").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *participantRepository) UpdateGrading(id uint, upd GradingUpdate) error {
	return r.db.Model(&model.Participant{}).Where("id = ?", id).Updates(map[string]interface{}{
		"item_scores": upd.ItemScores,
		"score":       upd.Score,
		"status":      upd.Status,
		"notes":       upd.Notes,
		"admin_notes": upd.AdminNotes,
	}).Error
}

func (r *participantRepository) UpdateDocumentURL(id uint, url string) error {
	return r.db.Model(&model.Participant{}).Where("id = ?", id).
		Update("result_document_url", url).Error
}

func (r *participantRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&model.Participant{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *participantRepository) Delete(id uint) error {
	return r.db.Delete(&model.Participant{}, id).Error
}
