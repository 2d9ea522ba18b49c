package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gccoffee/member-api/internal/apperror"
	"github.com/gccoffee/member-api/internal/dto"
	"github.com/gccoffee/member-api/internal/service"
)

// MemberService is the collaborator the member endpoints delegate to.
type MemberService interface {
	CreateMember(ctx context.Context, req dto.MemberRequest) (*dto.MemberResponse, error)
	GetMemberByID(ctx context.Context, id int64) (*dto.MemberResponse, error)
	GetAllMembers(ctx context.Context, page dto.MemberPageRequest, actingID int64) ([]dto.MemberResponse, error)
	UpdateMember(ctx context.Context, req dto.MemberUpdateRequest) (*dto.MemberResponse, error)
	DeleteMember(ctx context.Context, id int64) error
}

var _ MemberService = (*service.MemberService)(nil)

// MemberHandler exposes the /api/v1/members endpoints.
type MemberHandler struct {
	members MemberService
}

// NewMemberHandler constructs a handler instance.
func NewMemberHandler(members MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// Register handles POST /api/v1/members.
func (h *MemberHandler) Register(c echo.Context) error {
	var req dto.MemberRequest
	if err := c.Bind(&req); err != nil {
		return apperror.InvalidInput("invalid payload", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.members.CreateMember(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Read handles GET /api/v1/members/:memberId.
func (h *MemberHandler) Read(c echo.Context) error {
	memberID, err := memberIDParam(c)
	if err != nil {
		return err
	}

	member, err := h.members.GetMemberByID(c.Request().Context(), memberID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// List handles GET /api/v1/members/admin/:memberId, where memberId is the
// administrator asking for the listing.
func (h *MemberHandler) List(c echo.Context) error {
	memberID, err := memberIDParam(c)
	if err != nil {
		return err
	}

	page := dto.NewMemberPageRequest()
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &page); err != nil {
		return apperror.InvalidInput("invalid pagination parameters", nil)
	}
	if err := c.Validate(&page); err != nil {
		return err
	}

	members, err := h.members.GetAllMembers(c.Request().Context(), page, memberID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// Modify handles PUT /api/v1/members/:memberId. The body must target the
// same member as the path.
func (h *MemberHandler) Modify(c echo.Context) error {
	memberID, err := memberIDParam(c)
	if err != nil {
		return err
	}

	var req dto.MemberUpdateRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperror.InvalidInput("invalid payload", nil)
	}
	if req.ID != memberID {
		return apperror.ErrMemberNotMatched
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.members.UpdateMember(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, member)
}

// Remove handles DELETE /api/v1/members/:memberId.
func (h *MemberHandler) Remove(c echo.Context) error {
	memberID, err := memberIDParam(c)
	if err != nil {
		return err
	}

	if err := h.members.DeleteMember(c.Request().Context(), memberID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ResultSuccess)
}

func memberIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ErrInvalidMemberID
	}
	return id, nil
}
