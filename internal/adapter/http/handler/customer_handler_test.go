package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrivas/bancario/internal/domain"
	"github.com/mrivas/bancario/internal/usecase"
)

type stubCustomerService struct {
	CreateCustomerFunc             func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error)
	CreateCustomerWithAccountsFunc func(ctx context.Context, input usecase.CreateCustomerInput, accounts []domain.AccountSpec) (*domain.Customer, error)
	GetCustomerFunc                func(ctx context.Context, id int64) (*domain.Customer, error)
	GetCustomerByCustomerIDFunc    func(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomersFunc              func(ctx context.Context) ([]*domain.Customer, error)
	UpdateCustomerFunc             func(ctx context.Context, id int64, input usecase.UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomerFunc             func(ctx context.Context, id int64) error
}

func (s *stubCustomerService) CreateCustomer(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
	return s.CreateCustomerFunc(ctx, input)
}

func (s *stubCustomerService) CreateCustomerWithAccounts(ctx context.Context, input usecase.CreateCustomerInput, accounts []domain.AccountSpec) (*domain.Customer, error) {
	return s.CreateCustomerWithAccountsFunc(ctx, input, accounts)
}

func (s *stubCustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.GetCustomerFunc(ctx, id)
}

func (s *stubCustomerService) GetCustomerByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.GetCustomerByCustomerIDFunc(ctx, customerID)
}

func (s *stubCustomerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.ListCustomersFunc(ctx)
}

func (s *stubCustomerService) UpdateCustomer(ctx context.Context, id int64, input usecase.UpdateCustomerInput) (*domain.Customer, error) {
	return s.UpdateCustomerFunc(ctx, id, input)
}

func (s *stubCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.DeleteCustomerFunc(ctx, id)
}

func newCustomerRouter(svc CustomerService) http.Handler {
	h := NewCustomerHandler(svc)

	r := chi.NewRouter()
	r.Post("/clientes", h.Create)
	r.Post("/clientes/con-cuentas", h.CreateWithAccounts)
	r.Get("/clientes/{id}", h.Get)
	r.Delete("/clientes/{id}", h.Delete)

	return r
}

func TestCustomerHandler_Create(t *testing.T) {
	svc := &stubCustomerService{
		CreateCustomerFunc: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			require.Equal(t, "cli-1", input.CustomerID)
			require.Equal(t, "Jose Lema", input.Name)
			require.Equal(t, "1234", input.Password)

			return &domain.Customer{
				ID:         1,
				CustomerID: input.CustomerID,
				Name:       input.Name,
				Password:   input.Password,
				Active:     true,
			}, nil
		},
	}

	body := `{"clienteId":"cli-1","nombre":"Jose Lema","identificacion":"098254785","contrasena":"1234"}`
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newCustomerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clienteId":"cli-1"`)
	assert.NotContains(t, rec.Body.String(), "contrasena")
	assert.NotContains(t, rec.Body.String(), "1234")
}

func TestCustomerHandler_CreateWithAccounts(t *testing.T) {
	svc := &stubCustomerService{
		CreateCustomerWithAccountsFunc: func(ctx context.Context, input usecase.CreateCustomerInput, accounts []domain.AccountSpec) (*domain.Customer, error) {
			require.Len(t, accounts, 1)
			require.Equal(t, "478758", accounts[0].Number)

			return &domain.Customer{ID: 1, CustomerID: input.CustomerID, Active: true}, nil
		},
	}

	body := `{"cliente":{"clienteId":"cli-1","nombre":"Jose Lema","identificacion":"098254785"},"cuentas":[{"numeroCuenta":"478758","tipoCuenta":"AHORRO","saldoInicial":2000}]}`
	req := httptest.NewRequest(http.MethodPost, "/clientes/con-cuentas", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newCustomerRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCustomerHandler_Create_Conflict(t *testing.T) {
	svc := &stubCustomerService{
		CreateCustomerFunc: func(ctx context.Context, input usecase.CreateCustomerInput) (*domain.Customer, error) {
			return nil, domain.ErrCustomerExists
		},
	}

	body := `{"clienteId":"cli-1","identificacion":"098254785"}`
	req := httptest.NewRequest(http.MethodPost, "/clientes", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newCustomerRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomerHandler_Delete(t *testing.T) {
	deleted := int64(0)
	svc := &stubCustomerService{
		DeleteCustomerFunc: func(ctx context.Context, id int64) error {
			if id != 7 {
				return domain.ErrCustomerNotFound
			}

			deleted = id

			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/clientes/7", nil)
	rec := httptest.NewRecorder()
	newCustomerRouter(svc).ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), deleted)

	req = httptest.NewRequest(http.MethodDelete, "/clientes/8", nil)
	rec = httptest.NewRecorder()
	newCustomerRouter(svc).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
