package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/ironlady/leadbot/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// The column backing CurrentRole is named role: current_role is a
// reserved keyword in PostgreSQL.
const leadColumns = `
	id, name, email, phone, experience, role, career_goals, challenges,
	interested_programs, session_id, status, source, notes, created_at, updated_at
`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	goals, err := json.Marshal(lead.CareerGoals)
	if err != nil {
		return err
	}
	challenges, err := json.Marshal(lead.Challenges)
	if err != nil {
		return err
	}
	programs, err := json.Marshal(lead.InterestedPrograms)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err = r.DB.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Experience, lead.CurrentRole,
		goals, challenges, programs, nullString(lead.SessionID),
		lead.Status, lead.Source, lead.Notes, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		log.Error().Err(err).Str("email", lead.Email).Msg("db: failed to insert lead")
		return err
	}

	return nil
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE lower(email) = lower($1)`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

func (r *LeadRepository) List(ctx context.Context, status string, limit, page int) ([]entity.Lead, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		where = "WHERE status = $1"
		args = append(args, status)
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leads %s`, where)
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	listQuery := fmt.Sprintf(
		`SELECT %s FROM leads %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		leadColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, 0, err
		}
		leads = append(leads, *lead)
	}
	return leads, total, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET status = $2, notes = $3, updated_at = $4
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query, lead.ID, lead.Status, lead.Notes, lead.UpdatedAt)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'contacted'),
			COUNT(*) FILTER (WHERE status = 'enrolled'),
			COUNT(*) FILTER (WHERE status = 'not_interested'),
			COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
		FROM leads
	`

	var stats entity.LeadStats
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total,
		&stats.New,
		&stats.Contacted,
		&stats.Enrolled,
		&stats.NotInterested,
		&stats.Last7Days,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *LeadRepository) scanOne(row *sql.Row) (*entity.Lead, error) {
	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead       entity.Lead
		goals      []byte
		challenges []byte
		programs   []byte
		sessionID  sql.NullString
	)

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Experience, &lead.CurrentRole,
		&goals, &challenges, &programs, &sessionID,
		&lead.Status, &lead.Source, &lead.Notes, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.SessionID = sessionID.String
	if err := json.Unmarshal(goals, &lead.CareerGoals); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(challenges, &lead.Challenges); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(programs, &lead.InterestedPrograms); err != nil {
		return nil, err
	}
	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
