package repository

import (
	"github.com/thepit/dojorank/internal/model"
	"gorm.io/gorm"
)

type RankTestRepository interface {
	Create(test *model.RankTest) error
	FindByIDWithItems(id uint) (*model.RankTest, error)
	FindByRankAndStyle(rankID, styleID uint) ([]model.RankTest, error)
	FindByStyleID(styleID uint) ([]model.RankTest, error)
}

type rankTestRepository struct {
	db *gorm.DB
}

func NewRankTestRepository(db *gorm.DB) RankTestRepository {
	return &rankTestRepository{db: db}
}

func (r *rankTestRepository) Create(test *model.RankTest) error {
	// Categories and their items are created along with the test.
	return r.db.Create(test).Error
}

func (r *rankTestRepository) FindByIDWithItems(id uint) (*model.RankTest, error) {
	var test model.RankTest
	err := r.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.order_in_test ASC")
		}).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.order_in_category ASC")
		}).
		First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

// FindByRankAndStyle returns every test stored for the (rank, style)
// pair, oldest first. Curriculum resolution takes the first when the
// data holds more than one.
func (r *rankTestRepository) FindByRankAndStyle(rankID, styleID uint) ([]model.RankTest, error) {
	var tests []model.RankTest
	err := r.db.
		Where("rank_id = ? AND style_id = ?", rankID, styleID).
		Order("created_at ASC").
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.order_in_test ASC")
		}).
		Preload("Categories.Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.order_in_category ASC")
		}).
		Find(&tests).Error
	return tests, err
}

func (r *rankTestRepository) FindByStyleID(styleID uint) ([]model.RankTest, error) {
	var tests []model.RankTest
	err := r.db.Where("style_id = ?", styleID).Order("created_at ASC").Find(&tests).Error
	return tests, err
}
