package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

func (r *Repository) Profile(ctx context.Context, id uuid.UUID) (entity.Profile, error) {
	q := selectProfile + " WHERE id = $1"
	return scanProfile(r.db.QueryRow(ctx, q, id))
}

func (r *Repository) Contract(ctx context.Context, id uuid.UUID) (entity.Contract, error) {
	q := selectContract + " WHERE id = $1"
	return scanContract(r.db.QueryRow(ctx, q, id))
}

// PayJob transfers the job price from the contract's client to its
// contractor and marks the job paid, all in one transaction. The job row
// and both profile rows are locked before any check runs, so two
// concurrent attempts on the same job serialize and the loser sees
// ErrAlreadyPaid.
func (r *Repository) PayJob(ctx context.Context, callerID, jobID uuid.UUID, paidAt time.Time) (entity.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	defer tx.Rollback(ctx)

	const lockJob = `
	SELECT j.contract_id, j.price, j.paid, c.client_id, c.contractor_id
	FROM jobs j
	JOIN contracts c ON c.id = j.contract_id
	WHERE j.id = $1
	FOR UPDATE OF j`

	var (
		contractID             uuid.UUID
		price                  decimal.Decimal
		paid                   bool
		clientID, contractorID uuid.UUID
	)

	err = tx.QueryRow(ctx, lockJob, jobID).Scan(&contractID, &price, &paid, &clientID, &contractorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Payment{}, entity.ErrNotFound
		}

		return entity.Payment{}, err
	}

	if paid {
		return entity.Payment{}, entity.ErrAlreadyPaid
	}

	if callerID != clientID {
		return entity.Payment{}, entity.ErrForbidden
	}

	clientBalance, contractorBalance, err := lockBalances(ctx, tx, clientID, contractorID)
	if err != nil {
		return entity.Payment{}, err
	}

	if clientBalance.LessThan(price) {
		return entity.Payment{}, entity.ErrInsufficientFunds
	}

	const updateBalance = `UPDATE profiles SET balance = $1, updated_at = $2 WHERE id = $3`

	_, err = tx.Exec(ctx, updateBalance, clientBalance.Sub(price), paidAt, clientID)
	if err != nil {
		return entity.Payment{}, err
	}

	_, err = tx.Exec(ctx, updateBalance, contractorBalance.Add(price), paidAt, contractorID)
	if err != nil {
		return entity.Payment{}, err
	}

	_, err = tx.Exec(ctx, `UPDATE jobs SET paid = TRUE, payment_date = $1 WHERE id = $2`, paidAt, jobID)
	if err != nil {
		return entity.Payment{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	return entity.Payment{
		JobID:        jobID,
		ContractID:   contractID,
		ClientID:     clientID,
		ContractorID: contractorID,
		Amount:       price,
		PaidAt:       paidAt,
	}, nil
}

// lockBalances locks both profile rows in id order so that concurrent
// payments touching the same pair never deadlock.
func lockBalances(ctx context.Context, tx pgx.Tx, clientID, contractorID uuid.UUID) (decimal.Decimal, decimal.Decimal, error) {
	const q = `SELECT id, balance FROM profiles WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`

	rows, err := tx.Query(ctx, q, clientID, contractorID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	defer rows.Close()

	balances := make(map[uuid.UUID]decimal.Decimal, 2)

	for rows.Next() {
		var (
			id      uuid.UUID
			balance decimal.Decimal
		)

		err = rows.Scan(&id, &balance)
		if err != nil {
			return decimal.Zero, decimal.Zero, err
		}

		balances[id] = balance
	}

	err = rows.Err()
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	clientBalance, ok := balances[clientID]
	if !ok {
		return decimal.Zero, decimal.Zero, entity.ErrNotFound
	}

	contractorBalance, ok := balances[contractorID]
	if !ok {
		return decimal.Zero, decimal.Zero, entity.ErrNotFound
	}

	return clientBalance, contractorBalance, nil
}

// Deposit credits a client balance after checking the deposit ceiling
// against the outstanding sum of their unpaid jobs. The profile row is
// locked first, so the ceiling check and the credit see one consistent
// view of the ledger.
func (r *Repository) Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, at time.Time) (entity.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Profile{}, err
	}

	defer tx.Rollback(ctx)

	profile, err := scanProfile(tx.QueryRow(ctx, selectProfile+" WHERE id = $1 FOR UPDATE", clientID))
	if err != nil {
		return entity.Profile{}, err
	}

	if !profile.IsClient() {
		return entity.Profile{}, entity.ErrNotFound
	}

	const outstandingQ = `
	SELECT COALESCE(SUM(j.price), 0)
	FROM jobs j
	JOIN contracts c ON c.id = j.contract_id
	WHERE c.client_id = $1 AND NOT j.paid`

	var outstanding decimal.Decimal

	err = tx.QueryRow(ctx, outstandingQ, clientID).Scan(&outstanding)
	if err != nil {
		return entity.Profile{}, err
	}

	if amount.GreaterThan(entity.DepositCeiling(outstanding)) {
		return entity.Profile{}, entity.ErrDepositLimitExceeded
	}

	_, err = tx.Exec(ctx, `UPDATE profiles SET balance = balance + $1, updated_at = $2 WHERE id = $3`,
		amount, at, clientID)
	if err != nil {
		return entity.Profile{}, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Profile{}, err
	}

	profile.Balance = profile.Balance.Add(amount)
	profile.UpdatedAt = at

	return profile, nil
}

func scanProfile(row pgx.Row) (p entity.Profile, err error) {
	err = row.Scan(
		&p.ID,
		&p.Type,
		&p.FirstName,
		&p.LastName,
		&p.Profession,
		&p.Balance,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Profile{}, entity.ErrNotFound
		}

		return entity.Profile{}, err
	}

	return p, nil
}

func scanContract(row pgx.Row) (c entity.Contract, err error) {
	err = row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ContractorID,
		&c.Status,
		&c.Terms,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Contract{}, entity.ErrNotFound
		}

		return entity.Contract{}, err
	}

	return c, nil
}

func scanJob(row pgx.Row) (j entity.Job, err error) {
	err = row.Scan(
		&j.ID,
		&j.ContractID,
		&j.Description,
		&j.Price,
		&j.Paid,
		&j.PaymentDate,
		&j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Job{}, entity.ErrNotFound
		}

		return entity.Job{}, err
	}

	return j, nil
}
