package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/DimaSavchenko/brokerage/internal/api"
	"github.com/DimaSavchenko/brokerage/internal/entity"
	"github.com/DimaSavchenko/brokerage/internal/mocks"
	"github.com/DimaSavchenko/brokerage/internal/service"
)

type testAPI struct {
	repo     *mocks.MockRepository
	producer *mocks.MockProducer
	srv      *httptest.Server
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	h := api.NewHandler(service.New(repo, producer))
	mw := api.NewMiddleware(repo)

	srv := httptest.NewServer(api.NewRouter(h, mw))
	t.Cleanup(srv.Close)

	return &testAPI{
		repo:     repo,
		producer: producer,
		srv:      srv,
	}
}

// do performs a request as the given caller. The caller profile is
// resolved by the auth middleware through the repository mock.
func (a *testAPI) do(t *testing.T, method, path string, caller *entity.Profile, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)

		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, a.srv.URL+path, reqBody)
	require.NoError(t, err)

	if caller != nil {
		req.Header.Set(api.ProfileIDHeader, caller.ID.String())
		a.repo.EXPECT().Profile(gomock.Any(), caller.ID).Return(*caller, nil)
	}

	resp, err := a.srv.Client().Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T

	err := json.NewDecoder(resp.Body).Decode(&v)
	require.NoError(t, err)

	return v
}

func testClient() entity.Profile {
	return entity.Profile{
		ID:        uuid.Must(uuid.NewV4()),
		Type:      entity.ProfileTypeClient,
		FirstName: "Harry",
		LastName:  "Potter",
		Balance:   decimal.RequireFromString("1150.00"),
	}
}

func TestHandler_PayJob(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	payment := entity.Payment{
		JobID:        uuid.Must(uuid.NewV4()),
		ContractID:   uuid.Must(uuid.NewV4()),
		ClientID:     caller.ID,
		ContractorID: uuid.Must(uuid.NewV4()),
		Amount:       decimal.RequireFromString("200.00"),
		PaidAt:       time.Now(),
	}

	a.repo.EXPECT().PayJob(gomock.Any(), caller.ID, payment.JobID, gomock.Any()).Return(payment, nil)
	a.producer.EXPECT().SendBalanceUpdated(gomock.Any(), payment.ClientID, payment.Amount.Neg())
	a.producer.EXPECT().SendBalanceUpdated(gomock.Any(), payment.ContractorID, payment.Amount)

	resp := a.do(t, http.MethodPost, "/api/jobs/"+payment.JobID.String()+"/pay", &caller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.PayJobResponse](t, resp)
	require.Equal(t, payment.JobID.String(), got.JobID)
	require.Equal(t, "200", got.Amount)
}

func TestHandler_PayJob_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		repoErr     error
		wantMessage string
	}{
		{
			name:        "job not found",
			repoErr:     entity.ErrNotFound,
			wantMessage: "Job not found",
		},
		{
			name:        "already paid",
			repoErr:     entity.ErrAlreadyPaid,
			wantMessage: "Already paid",
		},
		{
			name:        "caller is not the contract client",
			repoErr:     entity.ErrForbidden,
			wantMessage: "Wrong job id",
		},
		{
			name:        "insufficient funds",
			repoErr:     entity.ErrInsufficientFunds,
			wantMessage: "Insufficient funds",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAPI(t)
			caller := testClient()
			jobID := uuid.Must(uuid.NewV4())

			a.repo.EXPECT().PayJob(gomock.Any(), caller.ID, jobID, gomock.Any()).
				Return(entity.Payment{}, tt.repoErr)

			resp := a.do(t, http.MethodPost, "/api/jobs/"+jobID.String()+"/pay", &caller, nil)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			got := decodeJSON[api.ErrorResponse](t, resp)
			require.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestHandler_PayJob_NoProfileHeader(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)

	resp := a.do(t, http.MethodPost, "/api/jobs/"+uuid.Must(uuid.NewV4()).String()+"/pay", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandler_Deposit(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	amount := decimal.RequireFromString("250.00")

	credited := caller
	credited.Balance = caller.Balance.Add(amount)

	a.repo.EXPECT().Deposit(gomock.Any(), caller.ID, amount, gomock.Any()).Return(credited, nil)
	a.producer.EXPECT().SendBalanceUpdated(gomock.Any(), caller.ID, amount)

	resp := a.do(t, http.MethodPost, "/api/balances/deposit/"+caller.ID.String(), &caller,
		api.DepositRequest{Amount: amount})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.DepositResponse](t, resp)
	require.Equal(t, credited.Balance.String(), got.Balance)
}

func TestHandler_Deposit_LimitExceeded(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	amount := decimal.RequireFromString("250.01")

	a.repo.EXPECT().Deposit(gomock.Any(), caller.ID, amount, gomock.Any()).
		Return(entity.Profile{}, entity.ErrDepositLimitExceeded)

	resp := a.do(t, http.MethodPost, "/api/balances/deposit/"+caller.ID.String(), &caller,
		api.DepositRequest{Amount: amount})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decodeJSON[api.ErrorResponse](t, resp)
	require.Equal(t, "Deposit amount exceeds the maximum allowed", got.Message)
}

func TestHandler_Deposit_NotPositive(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	resp := a.do(t, http.MethodPost, "/api/balances/deposit/"+caller.ID.String(), &caller,
		api.DepositRequest{Amount: decimal.Zero})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	got := decodeJSON[api.ErrorResponse](t, resp)
	require.Equal(t, "Deposit amount must be positive", got.Message)
}

func TestHandler_BestProfession(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	res := entity.ProfessionEarnings{
		Profession: "wizard",
		Earned:     decimal.RequireFromString("1500.00"),
	}

	a.repo.EXPECT().BestProfession(gomock.Any(), gomock.Any()).Return(res, nil)

	resp := a.do(t, http.MethodGet, "/api/admin/best-profession?start=2024-01-01&end=2024-12-31", &caller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.BestProfessionResponse](t, resp)
	require.Equal(t, "wizard", got.BestProfession)
}

func TestHandler_BestProfession_NoData(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	a.repo.EXPECT().BestProfession(gomock.Any(), gomock.Any()).
		Return(entity.ProfessionEarnings{}, entity.ErrNotFound)

	resp := a.do(t, http.MethodGet, "/api/admin/best-profession?start=2024-01-01&end=2024-12-31", &caller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.BestProfessionResponse](t, resp)
	require.Equal(t, "no data", got.Message)
	require.Empty(t, got.BestProfession)
}

func TestHandler_Reports_MissingWindow(t *testing.T) {
	t.Parallel()

	// No repository expectations: missing bounds must fail before any
	// query executes.
	for _, path := range []string{
		"/api/admin/best-profession",
		"/api/admin/best-profession?start=2024-01-01",
		"/api/admin/best-clients?end=2024-12-31",
		"/api/admin/best-clients",
	} {
		a := newTestAPI(t)
		caller := testClient()

		resp := a.do(t, http.MethodGet, path, &caller, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)

		got := decodeJSON[api.ErrorResponse](t, resp)
		require.Equal(t, "Both start and end parameters are required", got.Message, path)
	}
}

func TestHandler_BestClients_DefaultLimit(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	clients := []entity.ClientSpend{
		{
			ID:       uuid.Must(uuid.NewV4()),
			FullName: "Ash Kethcum",
			Paid:     decimal.RequireFromString("500.00"),
		},
		{
			ID:       uuid.Must(uuid.NewV4()),
			FullName: "Harry Potter",
			Paid:     decimal.RequireFromString("300.00"),
		},
	}

	a.repo.EXPECT().BestClients(gomock.Any(), gomock.Any(), uint64(2)).Return(clients, nil)

	resp := a.do(t, http.MethodGet, "/api/admin/best-clients?start=2024-01-01&end=2024-12-31", &caller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.BestClientsResponse](t, resp)
	require.Len(t, got.Clients, 2)
	require.Equal(t, clients[0].ID.String(), got.Clients[0].ID)
	require.Equal(t, "500", got.Clients[0].Paid)
}

func TestHandler_Contracts(t *testing.T) {
	t.Parallel()

	a := newTestAPI(t)
	caller := testClient()

	contracts := []entity.Contract{
		{
			ID:           uuid.Must(uuid.NewV4()),
			ClientID:     caller.ID,
			ContractorID: uuid.Must(uuid.NewV4()),
			Status:       entity.ContractStatusInProgress,
			Terms:        "some terms",
			CreatedAt:    time.Now(),
		},
	}

	a.repo.EXPECT().Contracts(gomock.Any(), caller.ID).Return(contracts, nil)

	resp := a.do(t, http.MethodGet, "/api/contracts", &caller, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeJSON[api.ContractsResponse](t, resp)
	require.Len(t, got.Contracts, 1)
	require.Equal(t, contracts[0].ID.String(), got.Contracts[0].ID)
}
