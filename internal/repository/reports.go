package repository

import (
	"context"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

// BestProfession returns the profession that earned the most over jobs
// paid within the window, payment date bounds inclusive. Ties break on
// profession name so the result is deterministic.
func (r *Repository) BestProfession(ctx context.Context, w entity.ReportWindow) (entity.ProfessionEarnings, error) {
	stmt := sq.Select("p.profession", "SUM(j.price) AS earned").
		From("jobs j").
		Join("contracts c ON c.id = j.contract_id").
		Join("profiles p ON p.id = c.contractor_id").
		Where(sq.Eq{"j.paid": true}).
		Where(sq.GtOrEq{"j.payment_date": w.Start}).
		Where(sq.LtOrEq{"j.payment_date": w.End}).
		GroupBy("p.profession").
		OrderBy("earned DESC", "p.profession ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return entity.ProfessionEarnings{}, err
	}

	var res entity.ProfessionEarnings

	err = r.db.QueryRow(ctx, sql, args...).Scan(&res.Profession, &res.Earned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ProfessionEarnings{}, entity.ErrNotFound
		}

		return entity.ProfessionEarnings{}, err
	}

	return res, nil
}

// BestClients returns up to limit clients ordered by the total price of
// their paid jobs, windowed on the contract creation date.
func (r *Repository) BestClients(ctx context.Context, w entity.ReportWindow, limit uint64) ([]entity.ClientSpend, error) {
	stmt := sq.Select("p.id", "p.first_name", "p.last_name", "SUM(j.price) AS paid").
		From("jobs j").
		Join("contracts c ON c.id = j.contract_id").
		Join("profiles p ON p.id = c.client_id").
		Where(sq.Eq{"j.paid": true}).
		Where(sq.GtOrEq{"c.created_at": w.Start}).
		Where(sq.LtOrEq{"c.created_at": w.End}).
		GroupBy("p.id", "p.first_name", "p.last_name").
		OrderBy("paid DESC").
		Limit(limit).
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

	clients := make([]entity.ClientSpend, 0, limit)

	for rows.Next() {
		var (
			cs                  entity.ClientSpend
			firstName, lastName string
		)

		err = rows.Scan(&cs.ID, &firstName, &lastName, &cs.Paid)
		if err != nil {
			return nil, err
		}

		cs.FullName = strings.TrimSpace(firstName + " " + lastName)

		clients = append(clients, cs)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return clients, nil
}

// LedgerTotals reads the whole-ledger sums used by the periodic
// reconcile job.
func (r *Repository) LedgerTotals(ctx context.Context) (entity.LedgerTotals, error) {
	var totals entity.LedgerTotals

	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM profiles`).Scan(&totals.Balances)
	if err != nil {
		return entity.LedgerTotals{}, err
	}

	var paidVolume decimal.Decimal

	err = r.db.QueryRow(ctx, `SELECT COUNT(*), COALESCE(SUM(price), 0) FROM jobs WHERE paid`).
		Scan(&totals.PaidJobs, &paidVolume)
	if err != nil {
		return entity.LedgerTotals{}, err
	}

	totals.PaidVolume = paidVolume

	return totals, nil
}
