package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gccoffee/member-api/internal/entity"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrEmailDuplicate = errors.New("email already exists")
)

const (
	uniqueViolation  = "23505"
	emailUniqueIndex = "members_email_key"
	memberColumns    = "id, name, email, phone, address, postcode, member_type, created_at, updated_at"
	defaultListLimit = 10
	maximumListLimit = 100
)

// pgxPool is the subset of *pgxpool.Pool used by the repositories.
type pgxPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// NewMember holds the values needed to insert a member row.
type NewMember struct {
	Name       string
	Email      string
	Phone      *string
	Address    string
	Postcode   string
	MemberType entity.MemberType
}

// MemberPatch lists the columns to change. Nil fields are left untouched.
type MemberPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	Postcode *string
}

// Empty reports whether the patch changes nothing.
func (p MemberPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Address == nil && p.Postcode == nil
}

// MembersRepository declares persistence operations for members.
type MembersRepository interface {
	Create(ctx context.Context, member NewMember) (*entity.Member, error)
	FindByID(ctx context.Context, id int64) (*entity.Member, error)
	List(ctx context.Context, offset, limit int) ([]entity.Member, error)
	Update(ctx context.Context, id int64, patch MemberPatch) (*entity.Member, error)
	Delete(ctx context.Context, id int64) error
}

// PGXMembersRepository implements MembersRepository with pgx.
type PGXMembersRepository struct {
	pool pgxPool
}

// NewPGXMembersRepository instantiates a members repository.
func NewPGXMembersRepository(pool *pgxpool.Pool) *PGXMembersRepository {
	return &PGXMembersRepository{pool: pool}
}

// Create inserts a new member row.
func (r *PGXMembersRepository) Create(ctx context.Context, member NewMember) (*entity.Member, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO members (name, email, phone, address, postcode, member_type)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+memberColumns,
		member.Name, member.Email, member.Phone, member.Address, member.Postcode, string(member.MemberType))

	created, err := scanMember(row)
	if err != nil {
		if isEmailDuplicate(err) {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, err)
		}
		return nil, fmt.Errorf("insert member: %w", err)
	}
	return created, nil
}

// FindByID retrieves a member by identifier.
func (r *PGXMembersRepository) FindByID(ctx context.Context, id int64) (*entity.Member, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id = $1`, id)

	member, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("query member by id: %w", err)
	}
	return member, nil
}

// List returns one page of members, newest first.
func (r *PGXMembersRepository) List(ctx context.Context, offset, limit int) ([]entity.Member, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maximumListLimit {
		limit = maximumListLimit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]entity.Member, 0, limit)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member row: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

// Update patches member attributes.
func (r *PGXMembersRepository) Update(ctx context.Context, id int64, patch MemberPatch) (*entity.Member, error) {
	if patch.Empty() {
		return r.FindByID(ctx, id)
	}

	setClauses := make([]string, 0, 6)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	// An empty phone clears the column.
	if patch.Phone != nil {
		if *patch.Phone == "" {
			add("phone", nil)
		} else {
			add("phone", *patch.Phone)
		}
	}
	if patch.Address != nil {
		add("address", *patch.Address)
	}
	if patch.Postcode != nil {
		add("postcode", *patch.Postcode)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE members SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), len(args), memberColumns)

	member, err := scanMember(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		if isEmailDuplicate(err) {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, err)
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return member, nil
}

// Delete removes a member by id.
func (r *PGXMembersRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete member: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrMemberNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*entity.Member, error) {
	var (
		member     entity.Member
		memberType string
	)
	if err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.Phone,
		&member.Address,
		&member.Postcode,
		&memberType,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return nil, err
	}
	member.MemberType = entity.MemberType(memberType)
	return &member, nil
}

func isEmailDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return pgErr.ConstraintName == emailUniqueIndex || strings.Contains(pgErr.Message, emailUniqueIndex)
}
