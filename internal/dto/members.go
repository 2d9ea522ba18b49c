package dto

import "time"

// Pagination defaults for member listings.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// MemberRequest captures member registration payloads. AdminCode is only
// required when registering an administrator.
type MemberRequest struct {
	Name       string  `json:"name" validate:"required,max=50"`
	Email      string  `json:"email" validate:"required,email,max=254"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address    string  `json:"address" validate:"required,max=200"`
	Postcode   string  `json:"postcode" validate:"required,max=10"`
	MemberType string  `json:"memberType" validate:"required,oneof=CUSTOMER ADMIN"`
	AdminCode  string  `json:"adminCode,omitempty" validate:"required_if=MemberType ADMIN"`
}

// MemberUpdateRequest carries the target id plus the fields to change.
// Nil fields are left untouched.
type MemberUpdateRequest struct {
	ID       int64   `json:"id" validate:"required,gt=0"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address  *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	Postcode *string `json:"postcode,omitempty" validate:"omitempty,min=1,max=10"`
}

// MemberResponse represents member data returned to clients.
type MemberResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	Address    string    `json:"address"`
	Postcode   string    `json:"postcode"`
	MemberType string    `json:"memberType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MemberPageRequest contains query parameters for the admin member listing.
type MemberPageRequest struct {
	Page int `query:"page" json:"page" validate:"min=1"`
	Size int `query:"size" json:"size" validate:"min=1,max=100"`
}

// NewMemberPageRequest returns a page request populated with defaults.
func NewMemberPageRequest() MemberPageRequest {
	return MemberPageRequest{Page: DefaultPage, Size: DefaultPageSize}
}

// Offset returns the number of rows to skip for this page.
func (p MemberPageRequest) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// ResultResponse is the acknowledgement returned by delete.
type ResultResponse struct {
	Result string `json:"result"`
}

// ResultSuccess is the fixed payload for successful removals.
var ResultSuccess = ResultResponse{Result: "success"}
