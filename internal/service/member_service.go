package service

import (
	"fmt"

	"github.com/thepit/dojorank/internal/dto"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/repository"
)

type MemberService interface {
	CreateMember(req dto.MemberCreateDTO) (*model.Member, error)
	GetMember(memberID uint) (*model.Member, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) CreateMember(req dto.MemberCreateDTO) (*model.Member, error) {
	m := model.Member{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		StyleID:     req.StyleID,
		CurrentRank: req.CurrentRank,
	}
	if err := s.memberRepo.Create(&m); err != nil {
		return nil, fmt.Errorf("creating member: %w", err)
	}
	return &m, nil
}

func (s *memberService) GetMember(memberID uint) (*model.Member, error) {
	m, err := s.memberRepo.FindByIDWithDocuments(memberID)
	if err != nil {
		return nil, fmt.Errorf("member %d: %w", memberID, err)
	}
	return m, nil
}
