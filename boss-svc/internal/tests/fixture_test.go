package tests

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "bistro-boss/boss-svc/internal/api/http"
	"bistro-boss/boss-svc/internal/auth"
	"bistro-boss/boss-svc/internal/domain"
	"bistro-boss/boss-svc/internal/mocks"
	"bistro-boss/boss-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testSecret    = "test-secret"
	adminEmail    = "admin@bistro.com"
	customerEmail = "guest@bistro.com"
)

type fixture struct {
	accounts  *mocks.AccountRepository
	menu      *mocks.MenuRepository
	carts     *mocks.CartRepository
	reviews   *mocks.ReviewRepository
	orders    *mocks.OrderRepository
	processor *mocks.PaymentProcessor
	publisher *mocks.PaymentPublisher
	webhooks  *mocks.WebhookVerifier
	throttle  *mocks.LoginThrottle
	qr        *mocks.QRGenerator
	stats     *mocks.PaymentStatsRepository

	issuer *auth.Issuer
	router *mux.Router
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithMinting(t, true)
}

func newFixtureWithMinting(t *testing.T, allowMinting bool) *fixture {
	t.Helper()
	f := &fixture{
		accounts:  mocks.NewAccountRepository(t),
		menu:      mocks.NewMenuRepository(t),
		carts:     mocks.NewCartRepository(t),
		reviews:   mocks.NewReviewRepository(t),
		orders:    mocks.NewOrderRepository(t),
		processor: mocks.NewPaymentProcessor(t),
		publisher: mocks.NewPaymentPublisher(t),
		webhooks:  mocks.NewWebhookVerifier(t),
		throttle:  mocks.NewLoginThrottle(t),
		qr:        mocks.NewQRGenerator(t),
		stats:     mocks.NewPaymentStatsRepository(t),
		issuer:    auth.NewIssuer(testSecret, time.Hour),
	}

	handler := httpapi.NewHandler(httpapi.Services{
		Accounts: service.NewAccountService(f.accounts, f.issuer, f.throttle),
		Menu:     service.NewMenuService(f.menu),
		Carts:    service.NewCartService(f.carts, f.accounts),
		Reviews:  service.NewReviewService(f.reviews),
		Payments: service.NewPaymentService(f.processor, f.webhooks, f.publisher, "usd"),
		Orders:   service.NewOrderService(f.orders, f.carts, f.processor, f.qr, "usd"),
		Stats:    service.NewStatsService(f.stats),
	}, f.issuer, auth.NewVerifier(testSecret), allowMinting)

	f.router = mux.NewRouter()
	handler.RegisterRoutes(f.router)
	return f
}

func (f *fixture) token(t *testing.T, email string) string {
	t.Helper()
	token, err := f.issuer.Issue(map[string]any{"email": email})
	require.NoError(t, err)
	return token
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) expectAccount(email string, account *domain.Account) {
	f.accounts.On("FindAccountByEmail", mock.Anything, email).Return(account, nil)
}

func (f *fixture) expectAdmin() {
	f.expectAccount(adminEmail, &domain.Account{Email: adminEmail, Role: domain.RoleAdmin})
}

func (f *fixture) expectCustomer() {
	f.expectAccount(customerEmail, &domain.Account{Email: customerEmail, Role: domain.RoleCustomer})
}

func assertStatus(t *testing.T, want int, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}

func newRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	return httptest.NewRequest(method, path, reader)
}

func serve(f *fixture, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}
