package repository

import (
	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(m *model.Member) error
	FindByID(id uint) (*model.Member, error)
	FindByIDWithDocuments(id uint) (*model.Member, error)
	Update(m *model.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(m *model.Member) error {
	return r.db.Create(m).Error
}

func (r *memberRepository) FindByID(id uint) (*model.Member, error) {
	var m model.Member
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) FindByIDWithDocuments(id uint) (*model.Member, error) {
	var m model.Member
	err := r.db.Preload("Documents", func(db *gorm.DB) *gorm.DB {
		return db.Order("member_documents.created_at DESC")
	}).First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) Update(m *model.Member) error {
	return r.db.Save(m).Error
}
