package entity

import "time"

// MemberType distinguishes customers from administrators.
type MemberType string

const (
	MemberTypeCustomer MemberType = "CUSTOMER"
	MemberTypeAdmin    MemberType = "ADMIN"
)

// Valid reports whether t is one of the known member types.
func (t MemberType) Valid() bool {
	return t == MemberTypeCustomer || t == MemberTypeAdmin
}

// Member represents a registered customer or administrator.
type Member struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      *string    `json:"phone,omitempty"`
	Address    string     `json:"address"`
	Postcode   string     `json:"postcode"`
	MemberType MemberType `json:"member_type"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the member holds the administrator role.
func (m Member) IsAdmin() bool {
	return m.MemberType == MemberTypeAdmin
}
