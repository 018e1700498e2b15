package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/internal/httpapi"
	"github.com/menuzap/menuzap/internal/menu"
	"github.com/menuzap/menuzap/internal/order"
	"github.com/menuzap/menuzap/internal/plan"
	"github.com/menuzap/menuzap/pkg/mercadopago"
)

type stubProvider struct {
	preapprovals map[string]*mercadopago.Preapproval
	payments     map[int64]*mercadopago.Payment
	initPoint    string
}

func (s *stubProvider) CreatePreapprovalPlan(_ context.Context, req mercadopago.PreapprovalPlanRequest) (*mercadopago.PreapprovalPlan, error) {
	return &mercadopago.PreapprovalPlan{
		ID:                "plan-1",
		InitPoint:         s.initPoint,
		ExternalReference: req.ExternalReference,
	}, nil
}

func (s *stubProvider) GetPreapproval(_ context.Context, id string) (*mercadopago.Preapproval, error) {
	pa, ok := s.preapprovals[id]
	if !ok {
		return nil, fmt.Errorf("preapproval %q not found", id)
	}
	return pa, nil
}

func (s *stubProvider) GetPayment(_ context.Context, id int64) (*mercadopago.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, fmt.Errorf("payment %d not found", id)
	}
	return p, nil
}

type apiFixture struct {
	chefStore  *chef.MemStore
	menuStore  *menu.MemStore
	orderStore *order.MemStore
	provider   *stubProvider
	chefs      *chef.Service
	handler    http.Handler
}

func newAPIFixture(t *testing.T, checks ...httpapi.HealthCheck) *apiFixture {
	t.Helper()

	f := &apiFixture{
		chefStore:  chef.NewMemStore(),
		menuStore:  menu.NewMemStore(),
		orderStore: order.NewMemStore(),
		provider: &stubProvider{
			preapprovals: make(map[string]*mercadopago.Preapproval),
			payments:     make(map[int64]*mercadopago.Payment),
			initPoint:    "https://mp.example/checkout/plan-1",
		},
	}
	f.chefs = chef.NewService(f.chefStore)
	menuSvc := menu.NewService(f.menuStore)
	orderSvc := order.NewService(f.orderStore, f.chefStore, f.menuStore)
	planSvc := plan.NewService(f.chefStore, f.provider, plan.DefaultCatalog())

	h := httpapi.NewHandlers(f.chefs, menuSvc, orderSvc, planSvc)
	f.handler = httpapi.NewRouter(h, checks...)
	return f
}

// seedChef creates a chef directly in the store, optionally with an active
// plan expiring a month out.
func (f *apiFixture) seedChef(t *testing.T, id, phone string, planActive bool) *chef.Chef {
	t.Helper()

	c := &chef.Chef{
		ID:             id,
		RestaurantName: "Cantina da Nona",
		Email:          id + "@example.com",
		Phone:          phone,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, f.chefStore.Create(context.Background(), c))
	if planActive {
		exp := time.Now().UTC().AddDate(0, 1, 0)
		require.NoError(t, f.chefStore.SetPlan(context.Background(), id, chef.PlanState{
			Active: true, ExpiresAt: &exp,
		}))
	}
	return c
}

func (f *apiFixture) seedItem(t *testing.T, chefID, name string, price float64, available bool) *menu.Item {
	t.Helper()

	item := &menu.Item{
		ID:          "item-" + name,
		ChefID:      chefID,
		Name:        name,
		Price:       price,
		IsAvailable: available,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, f.menuStore.Create(context.Background(), item))
	return item
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	} else {
		rd = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Error.Code
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	t.Run("register", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/api/beAChef", map[string]any{
			"restaurantName": "Cantina da Nona",
			"email":          "nona@example.com",
			"password":       "segredo",
			"phone":          "5511988887777",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		c := decodeData[chef.Chef](t, rec)
		assert.NotEmpty(t, c.ID)
		assert.False(t, c.PlanActive)
		assert.NotContains(t, rec.Body.String(), "passwordHash")
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		body := map[string]any{
			"restaurantName": "Cantina",
			"email":          "dup@example.com",
			"password":       "segredo",
		}
		require.Equal(t, http.StatusCreated, f.do(t, http.MethodPost, "/api/beAChef", body).Code)

		rec := f.do(t, http.MethodPost, "/api/beAChef", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "conflict", errorCode(t, rec))
	})

	t.Run("short password rejected", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/api/beAChef", map[string]any{
			"restaurantName": "Cantina",
			"email":          "a@example.com",
			"password":       "abc",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("login", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		_, err := f.chefs.Register(context.Background(), chef.RegisterInput{
			RestaurantName: "Cantina", Email: "login@example.com", Password: "segredo",
		})
		require.NoError(t, err)

		rec := f.do(t, http.MethodPost, "/api/loginChef", map[string]any{
			"email": "login@example.com", "password": "segredo",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "login@example.com", decodeData[chef.Chef](t, rec).Email)

		rec = f.do(t, http.MethodPost, "/api/loginChef", map[string]any{
			"email": "login@example.com", "password": "errada",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/api/loginChef", map[string]any{
			"email": "a@example.com", "password": "segredo", "isAdmin": true,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAccessGate(t *testing.T) {
	t.Parallel()

	t.Run("active plan passes", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)

		rec := f.do(t, http.MethodGet, "/api/chefs/c1/menuItems", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no plan is forbidden", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", false)

		rec := f.do(t, http.MethodGet, "/api/chefs/c1/menuItems", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "plan_inactive", errorCode(t, rec))
	})

	t.Run("expired plan is lazily deactivated", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", false)
		past := time.Now().UTC().Add(-time.Hour)
		require.NoError(t, f.chefStore.SetPlan(context.Background(), "c1", chef.PlanState{
			Active: true, ExpiresAt: &past,
		}))

		rec := f.do(t, http.MethodGet, "/api/chefs/c1/orders", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		c, err := f.chefStore.ByID(context.Background(), "c1")
		require.NoError(t, err)
		assert.False(t, c.PlanActive)
	})

	t.Run("unknown chef is not found", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodGet, "/api/chefs/ghost/menuItems", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("item route resolves the owning chef", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", false)
		f.seedItem(t, "c1", "Pizza", 30, true)

		rec := f.do(t, http.MethodGet, "/api/menuItems/item-Pizza", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodGet, "/api/menuItems/ghost", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMenuEndpoints(t *testing.T) {
	t.Parallel()

	t.Run("create list update delete", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)

		rec := f.do(t, http.MethodPost, "/api/chefs/c1/menuItems", map[string]any{
			"name": "Pizza Margherita", "description": "Clássica", "price": 42.50,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decodeData[menu.Item](t, rec)
		assert.Equal(t, "c1", created.ChefID)
		assert.True(t, created.IsAvailable)

		rec = f.do(t, http.MethodGet, "/api/chefs/c1/menuItems", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]menu.Item](t, rec), 1)

		rec = f.do(t, http.MethodPut, "/api/menuItems/"+created.ID, map[string]any{
			"price": 45.00,
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.InDelta(t, 45.00, decodeData[menu.Item](t, rec).Price, 0.001)

		rec = f.do(t, http.MethodDelete, "/api/menuItems/"+created.ID, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "deleted", decodeData[map[string]string](t, rec)["status"])
	})

	t.Run("invalid price rejected", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)

		rec := f.do(t, http.MethodPost, "/api/chefs/c1/menuItems", map[string]any{
			"name": "Pizza", "price": 0,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestPublicMenu(t *testing.T) {
	t.Parallel()

	t.Run("profile and available items", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)
		f.seedItem(t, "c1", "Pizza", 30, true)
		f.seedItem(t, "c1", "Esgotado", 20, false)

		rec := f.do(t, http.MethodGet, "/api/public/menu/c1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		profile := decodeData[chef.PublicProfile](t, rec)
		assert.Equal(t, "Cantina da Nona", profile.RestaurantName)
		assert.NotContains(t, rec.Body.String(), "email")

		rec = f.do(t, http.MethodGet, "/api/public/menu/c1/items", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeData[[]menu.Item](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "Pizza", items[0].Name)
	})

	t.Run("inactive plan hides the menu", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", false)

		assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodGet, "/api/public/menu/c1", nil).Code)
		assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodGet, "/api/public/menu/c1/items", nil).Code)
	})
}

func TestPublicOrders(t *testing.T) {
	t.Parallel()

	orderBody := func() map[string]any {
		return map[string]any{
			"chefId": "c1",
			"items": []map[string]any{
				{"menuItemId": "item-Pizza", "quantity": 2},
			},
			"clientName":  "Maria",
			"clientPhone": "5511977776666",
		}
	}

	t.Run("placement", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)
		f.seedItem(t, "c1", "Pizza", 30, true)

		rec := f.do(t, http.MethodPost, "/api/public/orders", orderBody())
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var envelope struct {
			Data struct {
				Order       order.Order `json:"order"`
				WhatsAppURL string      `json:"whatsappUrl"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.InDelta(t, 60.00, envelope.Data.Order.Total, 0.001)
		assert.Equal(t, order.StatusPending, envelope.Data.Order.Status)
		assert.True(t, strings.HasPrefix(envelope.Data.WhatsAppURL, "https://wa.me/5511999990000?text="))
	})

	t.Run("chef without phone", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "", true)
		f.seedItem(t, "c1", "Pizza", 30, true)

		rec := f.do(t, http.MethodPost, "/api/public/orders", orderBody())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "chef_phone_missing", errorCode(t, rec))

		// The order was still recorded.
		orders, err := f.orderStore.ByChef(context.Background(), "c1")
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("unknown chef", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/api/public/orders", orderBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown item", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)

		rec := f.do(t, http.MethodPost, "/api/public/orders", orderBody())
		assert.Equal(t, http.StatusNotFound, rec.Code)

		orders, err := f.orderStore.ByChef(context.Background(), "c1")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("zero quantity", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", true)
		f.seedItem(t, "c1", "Pizza", 30, true)

		body := orderBody()
		body["items"] = []map[string]any{{"menuItemId": "item-Pizza", "quantity": 0}}
		rec := f.do(t, http.MethodPost, "/api/public/orders", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestOrderManagement(t *testing.T) {
	t.Parallel()
	f := newAPIFixture(t)
	f.seedChef(t, "c1", "5511999990000", true)
	f.seedItem(t, "c1", "Pizza", 30, true)

	rec := f.do(t, http.MethodPost, "/api/public/orders", map[string]any{
		"chefId": "c1",
		"items": []map[string]any{
			{"menuItemId": "item-Pizza", "quantity": 1},
		},
		"clientName":  "Maria",
		"clientPhone": "5511977776666",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/chefs/c1/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decodeData[[]order.Order](t, rec)
	require.Len(t, orders, 1)
	orderID := orders[0].ID

	rec = f.do(t, http.MethodPut, "/api/orders/"+orderID, map[string]any{
		"status": "confirmed",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, order.StatusConfirmed, decodeData[order.Order](t, rec).Status)

	rec = f.do(t, http.MethodPut, "/api/orders/"+orderID, map[string]any{
		"status": "teleported",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "deleted", decodeData[map[string]string](t, rec)["status"])

	rec = f.do(t, http.MethodDelete, "/api/orders/"+orderID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEndpoints(t *testing.T) {
	t.Parallel()
	f := newAPIFixture(t)
	f.seedChef(t, "c1", "5511999990000", false)

	rec := f.do(t, http.MethodPost, "/api/planMensal", map[string]any{
		"emailChef": "c1@example.com",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Data struct {
			InitPoint string `json:"init_point"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "https://mp.example/checkout/plan-1", envelope.Data.InitPoint)

	rec = f.do(t, http.MethodPost, "/api/planAnual", map[string]any{
		"emailChef": "ghost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("authorized preapproval activates the plan", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.seedChef(t, "c1", "5511999990000", false)
		f.provider.preapprovals["pa-1"] = &mercadopago.Preapproval{
			ID:                "pa-1",
			Status:            mercadopago.PreapprovalStatusAuthorized,
			ExternalReference: "plano_mensal_premium_c1@example.com",
		}

		rec := f.do(t, http.MethodPost, "/api/mercadopago/webhook", map[string]any{
			"type": "preapproval",
			"data": map[string]any{"id": "pa-1"},
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		c, err := f.chefStore.ByID(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, c.PlanActive)
	})

	t.Run("extra provider fields tolerated", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/api/mercadopago/webhook", map[string]any{
			"type":         "plan",
			"action":       "updated",
			"date_created": "2026-03-10T12:00:00Z",
			"data":         map[string]any{"id": 123},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed reference is a bad request", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t)
		f.provider.preapprovals["pa-2"] = &mercadopago.Preapproval{
			ID:     "pa-2",
			Status: mercadopago.PreapprovalStatusAuthorized,
		}

		rec := f.do(t, http.MethodPost, "/api/mercadopago/webhook", map[string]any{
			"type": "preapproval",
			"data": map[string]any{"id": "pa-2"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGenerateQR(t *testing.T) {
	t.Parallel()
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/generate-qr", map[string]any{
		"url": "https://menuzap.com.br/menu/c1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			QRCodeURL string `json:"qrCodeUrl"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, strings.HasPrefix(envelope.Data.QRCodeURL, "data:image/png;base64,"))

	rec = f.do(t, http.MethodPost, "/api/generate-qr", map[string]any{"url": "  "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("healthy", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t, func(context.Context) error { return nil })
		assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", nil).Code)
	})

	t.Run("unhealthy dependency", func(t *testing.T) {
		t.Parallel()
		f := newAPIFixture(t, func(context.Context) error { return errors.New("mongo down") })
		assert.Equal(t, http.StatusServiceUnavailable, f.do(t, http.MethodGet, "/health", nil).Code)
	})
}
