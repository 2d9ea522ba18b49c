package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gccoffee/member-api/internal/apperror"
	"github.com/gccoffee/member-api/internal/dto"
	"github.com/gccoffee/member-api/internal/entity"
	"github.com/gccoffee/member-api/internal/repository"
)

// AdminCodeChecker validates administrator registration codes.
type AdminCodeChecker interface {
	Verify(code string) bool
}

// MemberService encapsulates member registration and management rules.
type MemberService struct {
	repo       repository.MembersRepository
	adminCodes AdminCodeChecker
	normalizer *ProfileNormalizer
}

// NewMemberService builds a new MemberService instance.
func NewMemberService(repo repository.MembersRepository, adminCodes AdminCodeChecker, normalizer *ProfileNormalizer) *MemberService {
	if normalizer == nil {
		normalizer = NewProfileNormalizer("")
	}
	return &MemberService{repo: repo, adminCodes: adminCodes, normalizer: normalizer}
}

// CreateMember registers a customer, or an administrator when the admin code checks out.
func (s *MemberService) CreateMember(ctx context.Context, req dto.MemberRequest) (*dto.MemberResponse, error) {
	memberType := entity.MemberType(strings.ToUpper(strings.TrimSpace(req.MemberType)))
	if !memberType.Valid() {
		return nil, apperror.InvalidInput("invalid member profile", map[string]string{
			"memberType": "must be one of CUSTOMER, ADMIN",
		})
	}

	problems := fieldErrors{}
	member := repository.NewMember{MemberType: memberType}
	member.Name = problems.check("name", req.Name, s.normalizer.Text)
	member.Email = problems.check("email", req.Email, s.normalizer.Email)
	member.Address = problems.check("address", req.Address, s.normalizer.Text)
	member.Postcode = problems.check("postcode", req.Postcode, s.normalizer.Text)
	if phone := problems.checkPtr("phone", req.Phone, s.normalizer.Phone); phone != nil && *phone != "" {
		member.Phone = phone
	}
	if err := problems.err(); err != nil {
		return nil, err
	}

	if memberType == entity.MemberTypeAdmin {
		if s.adminCodes == nil || !s.adminCodes.Verify(req.AdminCode) {
			return nil, apperror.ErrInvalidAdminCode
		}
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, apperror.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create member: %w", err)
	}

	resp := toMemberResponse(*created)
	return &resp, nil
}

// GetMemberByID loads a single member.
func (s *MemberService) GetMemberByID(ctx context.Context, id int64) (*dto.MemberResponse, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, apperror.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member %d: %w", id, err)
	}

	resp := toMemberResponse(*member)
	return &resp, nil
}

// GetAllMembers returns one page of members, provided actingID belongs to an administrator.
func (s *MemberService) GetAllMembers(ctx context.Context, page dto.MemberPageRequest, actingID int64) ([]dto.MemberResponse, error) {
	acting, err := s.repo.FindByID(ctx, actingID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, apperror.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get acting member %d: %w", actingID, err)
	}
	if !acting.IsAdmin() {
		return nil, apperror.ErrMemberNotAdmin
	}

	if page.Page < 1 {
		page.Page = dto.DefaultPage
	}
	if page.Size < 1 {
		page.Size = dto.DefaultPageSize
	}

	members, err := s.repo.List(ctx, page.Offset(), page.Size)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, toMemberResponse(m))
	}
	return responses, nil
}

// UpdateMember patches the fields present in req.
func (s *MemberService) UpdateMember(ctx context.Context, req dto.MemberUpdateRequest) (*dto.MemberResponse, error) {
	problems := fieldErrors{}
	patch := repository.MemberPatch{
		Name:     problems.checkPtr("name", req.Name, s.normalizer.Text),
		Email:    problems.checkPtr("email", req.Email, s.normalizer.Email),
		Phone:    problems.checkPtr("phone", req.Phone, s.normalizer.Phone),
		Address:  problems.checkPtr("address", req.Address, s.normalizer.Text),
		Postcode: problems.checkPtr("postcode", req.Postcode, s.normalizer.Text),
	}
	if err := problems.err(); err != nil {
		return nil, err
	}

	member, err := s.repo.Update(ctx, req.ID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMemberNotFound):
			return nil, apperror.ErrMemberNotFound
		case errors.Is(err, repository.ErrEmailDuplicate):
			return nil, apperror.ErrDuplicateEmail
		default:
			return nil, fmt.Errorf("update member %d: %w", req.ID, err)
		}
	}

	resp := toMemberResponse(*member)
	return &resp, nil
}

// DeleteMember removes a member by id.
func (s *MemberService) DeleteMember(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return apperror.ErrMemberNotFound
		}
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	return nil
}

func toMemberResponse(m entity.Member) dto.MemberResponse {
	return dto.MemberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		Postcode:   m.Postcode,
		MemberType: string(m.MemberType),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// fieldErrors collects per-field normalization failures.
type fieldErrors map[string]string

func (f fieldErrors) check(field, raw string, normalize func(string) (string, error)) string {
	value, err := normalize(raw)
	if err != nil {
		f[field] = err.Error()
		return ""
	}
	return value
}

func (f fieldErrors) checkPtr(field string, raw *string, normalize func(string) (string, error)) *string {
	if raw == nil {
		return nil
	}
	value, err := normalize(*raw)
	if err != nil {
		f[field] = err.Error()
		return nil
	}
	return &value
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperror.InvalidInput("invalid member profile", map[string]string(f))
}
