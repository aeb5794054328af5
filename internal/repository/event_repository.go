package repository

import (
	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(event *model.TestingEvent) error
	FindByID(id uint) (*model.TestingEvent, error)
	FindByIDWithParticipants(id uint) (*model.TestingEvent, error)
	FindAll() ([]model.TestingEvent, error)
	Update(event *model.TestingEvent) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.TestingEvent) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) FindByID(id uint) (*model.TestingEvent, error) {
	var event model.TestingEvent
	if err := r.db.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindByIDWithParticipants(id uint) (*model.TestingEvent, error) {
	var event model.TestingEvent
	err := r.db.
		Preload("Style.Ranks", func(db *gorm.DB) *gorm.DB {
			return db.Order("ranks.order_in_style ASC")
		}).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.created_at ASC")
		}).
		Preload("Participants.Member").
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll() ([]model.TestingEvent, error) {
	var events []model.TestingEvent
	err := r.db.Order("date DESC").Find(&events).Error
	return events, err
}

func (r *eventRepository) Update(event *model.TestingEvent) error {
	return r.db.Save(event).Error
}
