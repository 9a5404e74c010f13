package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

// Contracts returns the non-terminated contracts the profile takes part
// in, newest first.
func (r *Repository) Contracts(ctx context.Context, profileID uuid.UUID) ([]entity.Contract, error) {
	stmt := sq.Select("id", "client_id", "contractor_id", "status", "terms", "created_at").
		From("contracts").
		Where(sq.Or{sq.Eq{"client_id": profileID}, sq.Eq{"contractor_id": profileID}}).
		Where(sq.NotEq{"status": entity.ContractStatusTerminated}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var contracts []entity.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}

		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// UnpaidJobs returns the unpaid jobs of the profile's in-progress
// contracts, oldest first.
func (r *Repository) UnpaidJobs(ctx context.Context, profileID uuid.UUID) ([]entity.Job, error) {
	stmt := sq.Select("j.id", "j.contract_id", "j.description", "j.price", "j.paid", "j.payment_date", "j.created_at").
		From("jobs j").
		Join("contracts c ON c.id = j.contract_id").
		Where(sq.Eq{"j.paid": false}).
		Where(sq.Eq{"c.status": entity.ContractStatusInProgress}).
		Where(sq.Or{sq.Eq{"c.client_id": profileID}, sq.Eq{"c.contractor_id": profileID}}).
		OrderBy("j.created_at ASC").
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var jobs []entity.Job

	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

func (r *Repository) CreateProfile(ctx context.Context, p entity.Profile) error {
	const q = `
	INSERT INTO profiles (id, type, first_name, last_name, profession, balance, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, q,
		p.ID,
		p.Type,
		p.FirstName,
		p.LastName,
		p.Profession,
		p.Balance,
		p.CreatedAt,
		p.UpdatedAt,
	)

	return err
}

func (r *Repository) CreateContract(ctx context.Context, c entity.Contract) error {
	const q = `
	INSERT INTO contracts (id, client_id, contractor_id, status, terms, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, q,
		c.ID,
		c.ClientID,
		c.ContractorID,
		c.Status,
		c.Terms,
		c.CreatedAt,
	)

	return err
}

func (r *Repository) CreateJob(ctx context.Context, j entity.Job) error {
	const q = `
	INSERT INTO jobs (id, contract_id, description, price, paid, payment_date, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		j.ID,
		j.ContractID,
		j.Description,
		j.Price,
		j.Paid,
		j.PaymentDate,
		j.CreatedAt,
	)

	return err
}

func (r *Repository) Job(ctx context.Context, id uuid.UUID) (entity.Job, error) {
	q := selectJob + " WHERE id = $1"
	return scanJob(r.db.QueryRow(ctx, q, id))
}
