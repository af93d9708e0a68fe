package httpapi

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"bistro-boss/boss-svc/internal/auth"
	"bistro-boss/boss-svc/internal/domain"
	"bistro-boss/boss-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxWebhookBody = 64 << 10

type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type Handler struct {
	Accounts service.AccountServiceInterface
	Menu     service.MenuServiceInterface
	Carts    service.CartServiceInterface
	Reviews  service.ReviewServiceInterface
	Payments service.PaymentServiceInterface
	Orders   service.OrderServiceInterface
	Stats    service.StatsServiceInterface
	Tokens   TokenIssuer

	// AllowClaimMinting keeps POST /jwt signing arbitrary claims.
	AllowClaimMinting bool

	verify auth.Gate
	admin  auth.Gate
}

type Services struct {
	Accounts service.AccountServiceInterface
	Menu     service.MenuServiceInterface
	Carts    service.CartServiceInterface
	Reviews  service.ReviewServiceInterface
	Payments service.PaymentServiceInterface
	Orders   service.OrderServiceInterface
	Stats    service.StatsServiceInterface
}

func NewHandler(svc Services, tokens TokenIssuer, verifier auth.TokenVerifier, allowClaimMinting bool) *Handler {
	return &Handler{
		Accounts:          svc.Accounts,
		Menu:              svc.Menu,
		Carts:             svc.Carts,
		Reviews:           svc.Reviews,
		Payments:          svc.Payments,
		Orders:            svc.Orders,
		Stats:             svc.Stats,
		Tokens:            tokens,
		AllowClaimMinting: allowClaimMinting,
		verify:            auth.VerifyToken(verifier),
		admin:             auth.RequireAdmin(svc.Accounts),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/jwt", h.issueToken).Methods("POST")
	r.HandleFunc("/login", h.login).Methods("POST")

	r.HandleFunc("/users", h.guard(h.listUsers, h.verify, h.admin)).Methods("GET")
	r.HandleFunc("/users/admin/{email}", h.guard(h.checkAdmin, h.verify)).Methods("GET")
	r.HandleFunc("/users", h.createUser).Methods("POST")
	r.HandleFunc("/users/{id}", h.guard(h.promoteUser, h.verify, h.admin)).Methods("PATCH")
	r.HandleFunc("/users/{id}", h.guard(h.deleteUser, h.verify, h.admin)).Methods("DELETE")

	r.HandleFunc("/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/menu", h.guard(h.createMenuItem, h.verify, h.admin)).Methods("POST")
	r.HandleFunc("/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/menu/{id}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/menu/{id}", h.guard(h.deleteMenuItem, h.verify, h.admin)).Methods("DELETE")

	r.HandleFunc("/carts", h.guard(h.listCart, h.verify)).Methods("GET")
	r.HandleFunc("/carts", h.guard(h.addToCart, h.verify)).Methods("POST")
	r.HandleFunc("/carts/{id}", h.guard(h.removeFromCart, h.verify)).Methods("DELETE")

	r.HandleFunc("/reviews", h.listReviews).Methods("GET")

	r.HandleFunc("/create-payment-intent", h.createPaymentIntent).Methods("POST")
	r.HandleFunc("/webhooks/stripe", h.stripeWebhook).Methods("POST")

	r.HandleFunc("/orders", h.guard(h.checkout, h.verify)).Methods("POST")
	r.HandleFunc("/orders", h.guard(h.listOrders, h.verify)).Methods("GET")
	r.HandleFunc("/orders/{id}", h.guard(h.getOrder, h.verify)).Methods("GET")
	r.HandleFunc("/orders/{id}/qrcode", h.guard(h.getOrderQRCode, h.verify)).Methods("GET")
	r.HandleFunc("/orders/{id}/fulfill", h.guard(h.fulfillOrder, h.verify, h.admin)).Methods("PATCH")

	r.HandleFunc("/stats/payments", h.guard(h.paymentStats, h.verify, h.admin)).Methods("GET")
}

// guard runs the route's gates before next.
func (h *Handler) guard(next http.HandlerFunc, gates ...auth.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gated, err := auth.Run(r, gates...)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, gated)
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "Boss is sitting")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "boss-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	if !h.AllowClaimMinting {
		http.NotFound(w, r)
		return
	}

	var claims map[string]any
	if err := decodeJSON(r, &claims); err != nil {
		writeError(w, err)
		return
	}
	token, err := h.Tokens.Issue(claims)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	token, err := h.Accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Accounts.List(r.Context())
	respond(w, accounts, err)
}

func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if email != auth.CallerEmail(r.Context()) {
		writeError(w, domain.ErrAuthorization)
		return
	}
	admin, err := h.Accounts.IsAdmin(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": admin})
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Accounts.Register(r.Context(), req)
	respond(w, result, err)
}

func (h *Handler) promoteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.Accounts.Promote(r.Context(), mux.Vars(r)["id"])
	respond(w, result, err)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	result, err := h.Accounts.Delete(r.Context(), mux.Vars(r)["id"])
	respond(w, result, err)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(r.Context())
	respond(w, items, err)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Get(r.Context(), mux.Vars(r)["id"])
	respond(w, item, err)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Menu.Create(r.Context(), &item)
	respond(w, result, err)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var update domain.MenuUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Menu.Update(r.Context(), mux.Vars(r)["id"], update)
	respond(w, result, err)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	result, err := h.Menu.Delete(r.Context(), mux.Vars(r)["id"])
	respond(w, result, err)
}

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	items, err := h.Carts.List(r.Context(), r.URL.Query().Get("email"))
	respond(w, items, err)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := decodeJSON(r, &item); err != nil {
		writeError(w, err)
		return
	}
	result, err := h.Carts.Add(r.Context(), auth.CallerEmail(r.Context()), &item)
	respond(w, result, err)
}

func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	result, err := h.Carts.Remove(r.Context(), auth.CallerEmail(r.Context()), mux.Vars(r)["id"])
	respond(w, result, err)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.List(r.Context())
	respond(w, reviews, err)
}

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Price float64 `json:"price"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	secret, err := h.Payments.CreateIntent(r.Context(), payload.Price)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

func (h *Handler) stripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Message: "payload too large"})
		return
	}
	if err := h.Payments.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	order, secret, err := h.Orders.Checkout(r.Context(), auth.CallerEmail(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":        order,
		"clientSecret": secret,
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context(), auth.CallerEmail(r.Context()))
	respond(w, orders, err)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	h.withOrderID(w, r, func(ctx context.Context, id int) {
		order, err := h.Orders.Get(ctx, auth.CallerEmail(ctx), id)
		respond(w, order, err)
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	h.withOrderID(w, r, func(ctx context.Context, id int) {
		qr, err := h.Orders.QRCode(ctx, auth.CallerEmail(ctx), id)
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(qr)
	})
}

func (h *Handler) fulfillOrder(w http.ResponseWriter, r *http.Request) {
	h.withOrderID(w, r, func(ctx context.Context, id int) {
		order, err := h.Orders.Fulfill(ctx, id)
		respond(w, order, err)
	})
}

func (h *Handler) withOrderID(w http.ResponseWriter, r *http.Request, next func(ctx context.Context, id int)) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid order id"})
		return
	}
	next(r.Context(), id)
}

// respond writes v as JSON, which for a missing record is null.
func respond(w http.ResponseWriter, v interface{}, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) paymentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Daily(r.Context(), r.URL.Query().Get("date"))
	respond(w, stats, err)
}
