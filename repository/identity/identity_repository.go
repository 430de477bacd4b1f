package identity

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/esports-tournament/model"
)

type IdentityRepository interface {
	// Get returns nil, nil when no identity exists for phone.
	Get(ctx context.Context, phone string) (*model.IdentityEntity, error)
	UpsertCredential(ctx context.Context, cred *model.CredentialUpdate) error
	// UpdateCredential replaces the code of an existing identity and reports whether one existed.
	UpdateCredential(ctx context.Context, cred *model.CredentialUpdate) (bool, error)
	// ConsumeCredential clears the code only if codeHash is still stored and unexpired at now.
	ConsumeCredential(ctx context.Context, phone, codeHash string, now time.Time) (bool, error)
	UpdateProfile(ctx context.Context, req *model.ProfileUpdate) error
	SetActive(ctx context.Context, phone string, active bool) error
	List(ctx context.Context, filter *model.IdentityFilter) ([]model.IdentityEntity, int64, error)
	Count(ctx context.Context) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewIdentityRepository(conn *sqlx.DB) IdentityRepository {
	return &SQL{conn: conn}
}

const (
	identityColumns = `phone, name, age, consent_given, otp_hash, otp_expires_at, is_active, created_at, updated_at`

	getIdentityQuery = `SELECT ` + identityColumns + ` FROM identity WHERE phone = ?`

	upsertCredentialQuery = `INSERT INTO identity (phone, otp_hash, otp_expires_at, consent_given, is_active, created_at)
VALUES (?, ?, ?, FALSE, TRUE, UTC_TIMESTAMP())
ON DUPLICATE KEY UPDATE otp_hash = VALUES(otp_hash), otp_expires_at = VALUES(otp_expires_at), updated_at = UTC_TIMESTAMP()`

	updateCredentialQuery = `UPDATE identity SET otp_hash = ?, otp_expires_at = ?, updated_at = UTC_TIMESTAMP() WHERE phone = ?`

	consumeCredentialQuery = `UPDATE identity SET otp_hash = NULL, otp_expires_at = NULL, updated_at = UTC_TIMESTAMP()
WHERE phone = ? AND otp_hash = ? AND otp_expires_at > ?`

	updateProfileQuery = `UPDATE identity SET name = ?, age = ?, consent_given = ?, updated_at = UTC_TIMESTAMP() WHERE phone = ?`

	setActiveQuery = `UPDATE identity SET is_active = ?, updated_at = UTC_TIMESTAMP() WHERE phone = ?`

	listIdentityBase  = `SELECT ` + identityColumns + ` FROM identity WHERE true`
	countIdentityBase = `SELECT COUNT(*) FROM identity WHERE true`
)

func (s *SQL) Get(ctx context.Context, phone string) (*model.IdentityEntity, error) {
	var entity model.IdentityEntity
	if err := s.conn.QueryRowxContext(ctx, getIdentityQuery, phone).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpsertCredential(ctx context.Context, cred *model.CredentialUpdate) error {
	_, err := s.conn.ExecContext(ctx, upsertCredentialQuery, cred.Phone, cred.CodeHash, cred.ExpiresAt)
	return err
}

func (s *SQL) UpdateCredential(ctx context.Context, cred *model.CredentialUpdate) (bool, error) {
	res, err := s.conn.ExecContext(ctx, updateCredentialQuery, cred.CodeHash, cred.ExpiresAt, cred.Phone)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQL) ConsumeCredential(ctx context.Context, phone, codeHash string, now time.Time) (bool, error) {
	res, err := s.conn.ExecContext(ctx, consumeCredentialQuery, phone, codeHash, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, req *model.ProfileUpdate) error {
	_, err := s.conn.ExecContext(ctx, updateProfileQuery, req.Name, req.Age, req.ConsentGiven, req.Phone)
	return err
}

func (s *SQL) SetActive(ctx context.Context, phone string, active bool) error {
	_, err := s.conn.ExecContext(ctx, setActiveQuery, active, phone)
	return err
}

func (s *SQL) List(ctx context.Context, filter *model.IdentityFilter) ([]model.IdentityEntity, int64, error) {
	where := ""
	args := make([]any, 0, 4)
	if filter.Search != "" {
		where = " AND (name LIKE ? OR phone LIKE ?)"
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countIdentityBase+where, args...); err != nil {
		return nil, 0, err
	}

	query := listIdentityBase + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	rows, err := s.conn.QueryxContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.IdentityEntity, 0)
	for rows.Next() {
		var it model.IdentityEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, 0, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countIdentityBase); err != nil {
		return 0, err
	}
	return total, nil
}

func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
