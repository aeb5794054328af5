package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/repository"
)

// AdminCurriculumService covers the admin record-keeping around the
// grading engine: styles with their rank ladders, and the rank tests
// graded against them.
type AdminCurriculumService interface {
	CreateStyle(req dto.StyleCreateDTO) (*dto.StyleResponseDTO, error)
	GetStyle(styleID uint) (*dto.StyleResponseDTO, error)
	ListStyles() ([]dto.StyleResponseDTO, error)
	CreateRankTest(req dto.RankTestCreateDTO) (*dto.RankTestResponseDTO, error)
	GetRankTest(testID uint) (*dto.RankTestResponseDTO, error)
}

type adminCurriculumService struct {
	styleRepo    repository.StyleRepository
	rankTestRepo repository.RankTestRepository
}

func NewAdminCurriculumService(styleRepo repository.StyleRepository, rankTestRepo repository.RankTestRepository) AdminCurriculumService {
	return &adminCurriculumService{styleRepo: styleRepo, rankTestRepo: rankTestRepo}
}

func (s *adminCurriculumService) CreateStyle(req dto.StyleCreateDTO) (*dto.StyleResponseDTO, error) {
	style := model.Style{
		Name:             req.Name,
		NamingConvention: model.IntoRank,
	}
	if req.NamingConvention != "" {
		style.NamingConvention = model.NamingConvention(req.NamingConvention)
	}
	seen := make(map[int]bool)
	for _, r := range req.Ranks {
		if seen[r.OrderInStyle] {
			return nil, fmt.Errorf("duplicate rank order %d in style", r.OrderInStyle)
		}
		seen[r.OrderInStyle] = true
		style.Ranks = append(style.Ranks, model.Rank{Name: r.Name, OrderInStyle: r.OrderInStyle})
	}

	if err := s.styleRepo.Create(&style); err != nil {
		log.Error().Err(err).Msg("CreateStyle: failed to create style")
		return nil, fmt.Errorf("creating style: %w", err)
	}
	return s.styleDTO(&style)
}

func (s *adminCurriculumService) GetStyle(styleID uint) (*dto.StyleResponseDTO, error) {
	style, err := s.styleRepo.FindByIDWithRanks(styleID)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", styleID, err)
	}
	return s.styleDTO(style)
}

func (s *adminCurriculumService) ListStyles() ([]dto.StyleResponseDTO, error) {
	styles, err := s.styleRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing styles: %w", err)
	}
	out := make([]dto.StyleResponseDTO, 0, len(styles))
	for i := range styles {
		resp, err := s.styleDTO(&styles[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *adminCurriculumService) CreateRankTest(req dto.RankTestCreateDTO) (*dto.RankTestResponseDTO, error) {
	style, err := s.styleRepo.FindByIDWithRanks(req.StyleID)
	if err != nil {
		return nil, fmt.Errorf("style %d: %w", req.StyleID, err)
	}
	rankOK := false
	for _, r := range style.Ranks {
		if r.ID == req.RankID {
			rankOK = true
			break
		}
	}
	if !rankOK {
		return nil, fmt.Errorf("rank %d does not belong to style %d", req.RankID, req.StyleID)
	}

	test := model.RankTest{Name: req.Name, StyleID: req.StyleID, RankID: req.RankID}
	for _, c := range req.Categories {
		cat := model.Category{Name: c.Name, OrderInTest: c.OrderInTest}
		for _, it := range c.Items {
			item := model.Item{
				Name:            it.Name,
				Type:            it.Type,
				Required:        it.Required,
				OrderInCategory: it.OrderInCategory,
				Reps:            it.Reps,
				Sets:            it.Sets,
				DurationSeconds: it.DurationSeconds,
				DistanceMeters:  it.DistanceMeters,
				TimeLimit:       it.TimeLimit,
				TimeOperator:    it.TimeOperator,
			}
			if item.Type == "" {
				item.Type = "skill"
			}
			cat.Items = append(cat.Items, item)
		}
		test.Categories = append(test.Categories, cat)
	}

	if err := s.rankTestRepo.Create(&test); err != nil {
		log.Error().Err(err).Msg("CreateRankTest: failed to create rank test")
		return nil, fmt.Errorf("creating rank test: %w", err)
	}
	return s.rankTestDTO(&test)
}

func (s *adminCurriculumService) GetRankTest(testID uint) (*dto.RankTestResponseDTO, error) {
	test, err := s.rankTestRepo.FindByIDWithItems(testID)
	if err != nil {
		return nil, fmt.Errorf("rank test %d: %w", testID, err)
	}
	return s.rankTestDTO(test)
}

func (s *adminCurriculumService) styleDTO(style *model.Style) (*dto.StyleResponseDTO, error) {
	var resp dto.StyleResponseDTO
	if err := copier.Copy(&resp, style); err != nil {
		return nil, fmt.Errorf("preparing style response: %w", err)
	}
	resp.NamingConvention = string(style.NamingConvention)
	return &resp, nil
}

func (s *adminCurriculumService) rankTestDTO(test *model.RankTest) (*dto.RankTestResponseDTO, error) {
	var resp dto.RankTestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		return nil, fmt.Errorf("preparing rank test response: %w", err)
	}
	return &resp, nil
}
