package repository

import (
	"errors"

	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

type MemberDocumentRepository interface {
	// UpsertByDisplayName replaces the entry whose display name matches
	// exactly, or appends a new one. Display name is the only dedupe
	// key; URL and date are ignored when matching.
	UpsertByDisplayName(memberID uint, displayName, url string) error
}

type memberDocumentRepository struct {
	db *gorm.DB
}

func NewMemberDocumentRepository(db *gorm.DB) MemberDocumentRepository {
	return &memberDocumentRepository{db: db}
}

func (r *memberDocumentRepository) UpsertByDisplayName(memberID uint, displayName, url string) error {
	var doc model.MemberDocument
	err := r.db.Where("member_id = ? AND display_name = ?", memberID, displayName).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(&model.MemberDocument{
			MemberID:    memberID,
			DisplayName: displayName,
			URL:         url,
		}).Error
	}
	if err != nil {
		return err
	}
	doc.URL = url
	return r.db.Save(&doc).Error
}
