package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/DimaSavchenko/brokerage/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	Profile(ctx context.Context, id uuid.UUID) (entity.Profile, error)
	Contract(ctx context.Context, id uuid.UUID) (entity.Contract, error)
	Contracts(ctx context.Context, profileID uuid.UUID) ([]entity.Contract, error)
	UnpaidJobs(ctx context.Context, profileID uuid.UUID) ([]entity.Job, error)
	PayJob(ctx context.Context, callerID, jobID uuid.UUID, paidAt time.Time) (entity.Payment, error)
	Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal, at time.Time) (entity.Profile, error)
	BestProfession(ctx context.Context, w entity.ReportWindow) (entity.ProfessionEarnings, error)
	BestClients(ctx context.Context, w entity.ReportWindow, limit uint64) ([]entity.ClientSpend, error)
	LedgerTotals(ctx context.Context) (entity.LedgerTotals, error)
}

type Producer interface {
	SendBalanceUpdated(ctx context.Context, profileID uuid.UUID, amount decimal.Decimal)
}

type Service struct {
	repo     Repository
	producer Producer
}

func New(repo Repository, producer Producer) *Service {
	return &Service{
		repo:     repo,
		producer: producer,
	}
}

// PayJob pays the job on behalf of the caller profile. Validation and
// the transfer itself happen inside one repository transaction; events
// are emitted only after the commit.
func (s *Service) PayJob(ctx context.Context, jobID uuid.UUID) (entity.Payment, error) {
	caller, err := entity.ProfileFromCtx(ctx)
	if err != nil {
		return entity.Payment{}, err
	}

	payment, err := s.repo.PayJob(ctx, caller.ID, jobID, time.Now())
	if err != nil {
		return entity.Payment{}, fmt.Errorf("pay job %s by profile %s: %w", jobID, caller.ID, err)
	}

	s.producer.SendBalanceUpdated(ctx, payment.ClientID, payment.Amount.Neg())
	s.producer.SendBalanceUpdated(ctx, payment.ContractorID, payment.Amount)

	slog.InfoContext(ctx, fmt.Sprintf("job %s paid: %s moved from client %s to contractor %s",
		payment.JobID, payment.Amount, payment.ClientID, payment.ContractorID))

	return payment, nil
}

// Deposit credits the client balance. The amount must be positive and
// must not exceed the deposit ceiling checked by the repository inside
// the same transaction as the credit.
func (s *Service) Deposit(ctx context.Context, clientID uuid.UUID, amount decimal.Decimal) (entity.Profile, error) {
	if !amount.IsPositive() {
		return entity.Profile{}, fmt.Errorf("%w: deposit amount %s is not positive", entity.ErrInvalidArgument, amount)
	}

	profile, err := s.repo.Deposit(ctx, clientID, amount, time.Now())
	if err != nil {
		return entity.Profile{}, fmt.Errorf("deposit %s to client %s: %w", amount, clientID, err)
	}

	s.producer.SendBalanceUpdated(ctx, profile.ID, amount)

	slog.InfoContext(ctx, fmt.Sprintf("client %s deposited %s, balance is now %s",
		profile.ID, amount, profile.Balance))

	return profile, nil
}

// Contract returns the contract by id if the caller is one of its
// parties. Contracts of other parties are indistinguishable from
// missing ones.
func (s *Service) Contract(ctx context.Context, id uuid.UUID) (entity.Contract, error) {
	caller, err := entity.ProfileFromCtx(ctx)
	if err != nil {
		return entity.Contract{}, err
	}

	contract, err := s.repo.Contract(ctx, id)
	if err != nil {
		return entity.Contract{}, fmt.Errorf("get contract %s: %w", id, err)
	}

	if !contract.IsParty(caller.ID) {
		return entity.Contract{}, fmt.Errorf("contract %s: %w", id, entity.ErrNotFound)
	}

	return contract, nil
}

func (s *Service) Contracts(ctx context.Context) ([]entity.Contract, error) {
	caller, err := entity.ProfileFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	contracts, err := s.repo.Contracts(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("get contracts of profile %s: %w", caller.ID, err)
	}

	return contracts, nil
}

func (s *Service) UnpaidJobs(ctx context.Context) ([]entity.Job, error) {
	caller, err := entity.ProfileFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := s.repo.UnpaidJobs(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("get unpaid jobs of profile %s: %w", caller.ID, err)
	}

	return jobs, nil
}

func (s *Service) BestProfession(ctx context.Context, w entity.ReportWindow) (entity.ProfessionEarnings, error) {
	res, err := s.repo.BestProfession(ctx, w)
	if err != nil {
		return entity.ProfessionEarnings{}, fmt.Errorf("best profession in [%s, %s]: %w", w.Start, w.End, err)
	}

	return res, nil
}

func (s *Service) BestClients(ctx context.Context, w entity.ReportWindow, limit uint64) ([]entity.ClientSpend, error) {
	clients, err := s.repo.BestClients(ctx, w, limit)
	if err != nil {
		return nil, fmt.Errorf("best clients in [%s, %s]: %w", w.Start, w.End, err)
	}

	return clients, nil
}

// ReconcileLedger logs whole-ledger totals. Ran periodically so that a
// balance drifting away from the paid-jobs volume shows up in the logs.
func (s *Service) ReconcileLedger(ctx context.Context) error {
	totals, err := s.repo.LedgerTotals(ctx)
	if err != nil {
		return fmt.Errorf("get ledger totals: %w", err)
	}

	slog.InfoContext(ctx, "ledger totals",
		"balances", totals.Balances.String(),
		"paid_jobs", totals.PaidJobs,
		"paid_volume", totals.PaidVolume.String(),
	)

	return nil
}
