package repository

import (
	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

type StyleRepository interface {
	Create(style *model.Style) error
	FindByID(id uint) (*model.Style, error)
	FindByIDWithRanks(id uint) (*model.Style, error)
	FindAll() ([]model.Style, error)
}

type styleRepository struct {
	db *gorm.DB
}

func NewStyleRepository(db *gorm.DB) StyleRepository {
	return &styleRepository{db: db}
}

func (r *styleRepository) Create(style *model.Style) error {
	// GORM creates the associated ranks when style.Ranks is populated.
	return r.db.Create(style).Error
}

func (r *styleRepository) FindByID(id uint) (*model.Style, error) {
	var style model.Style
	if err := r.db.First(&style, id).Error; err != nil {
		return nil, err
	}
	return &style, nil
}

func (r *styleRepository) FindByIDWithRanks(id uint) (*model.Style, error) {
	var style model.Style
	err := r.db.Preload("Ranks", func(db *gorm.DB) *gorm.DB {
		return db.Order("ranks.order_in_style ASC")
	}).First(&style, id).Error
	if err != nil {
		return nil, err
	}
	return &style, nil
}

func (r *styleRepository) FindAll() ([]model.Style, error) {
	var styles []model.Style
	if err := r.db.Order("name ASC").Find(&styles).Error; err != nil {
		return nil, err
	}
	return styles, nil
}
