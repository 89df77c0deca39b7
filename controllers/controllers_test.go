package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go-food-ordering/apperrors"
	"go-food-ordering/middleware"
	"go-food-ordering/models"
	"go-food-ordering/realtime"
	"go-food-ordering/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type foodStore struct {
	mu    sync.Mutex
	foods []models.Food
}

func (s *foodStore) Create(ctx context.Context, f *models.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = primitive.NewObjectID()
	s.foods = append(s.foods, *f)
	return nil
}

func (s *foodStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.foods {
		if f.ID.Hex() == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("Food not found.")
}

func (s *foodStore) List(ctx context.Context) ([]models.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Food(nil), s.foods...), nil
}

func (s *foodStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.foods)), nil
}

type categoryStore struct{ categories []models.Category }

func (s *categoryStore) Create(ctx context.Context, c *models.Category) error {
	c.ID = primitive.NewObjectID()
	s.categories = append(s.categories, *c)
	return nil
}

func (s *categoryStore) Delete(ctx context.Context, id string) error { return nil }

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

type orderStore struct{ orders []models.Order }

func (s *orderStore) Create(ctx context.Context, o *models.Order) error {
	o.ID = primitive.NewObjectID()
	s.orders = append(s.orders, *o)
	return nil
}

func (s *orderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	for _, o := range s.orders {
		if o.ID.Hex() == id {
			return &o, nil
		}
	}
	return nil, apperrors.NotFound("Order not found.")
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) { return s.orders, nil }

func (s *orderStore) ListByUser(ctx context.Context, uid string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == uid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id string, st models.Status) error {
	for i := range s.orders {
		if s.orders[i].ID.Hex() == id {
			s.orders[i].Status = st
			return nil
		}
	}
	return apperrors.NotFound("Order not found.")
}

type cartStore struct{ carts map[string]models.Cart }

func (s *cartStore) Get(ctx context.Context, key string) (models.Cart, error) {
	c := s.carts[key]
	c.Entries = append([]models.CartEntry(nil), c.Entries...)
	return c, nil
}

func (s *cartStore) Save(ctx context.Context, key string, c *models.Cart) error {
	s.carts[key] = *c
	return nil
}

func (s *cartStore) Delete(ctx context.Context, key string) error {
	delete(s.carts, key)
	return nil
}

type testEnv struct {
	router *gin.Engine
	foods  *foodStore
	orders *orderStore
}

// withUser stands in for Authentication.
func withUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.KeyUID, uid)
		c.Set(middleware.KeyEmail, uid+"@example.com")
		c.Next()
	}
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	feed := realtime.NewFeed()
	env := &testEnv{foods: &foodStore{}, orders: &orderStore{}}

	catalog := services.NewCatalogService(env.foods, &categoryStore{}, nil, feed, log)
	admin := services.NewAdminOrderService(env.orders, env.foods, feed, log)
	cart := services.NewCartService(&cartStore{carts: map[string]models.Cart{}}, 300)
	customer := services.NewCustomerOrderService(env.orders, cart, feed, log)

	fc := NewFoodController(catalog, log)
	oc := NewOrderController(admin, customer, log)
	cc := NewCartController(cart, log)

	r := gin.New()
	r.Use(middleware.CartSession(0))
	r.GET("/admin/foods", fc.GetFoods())
	r.POST("/admin/foods", fc.CreateFood())
	r.DELETE("/admin/foods/:food_id", fc.DeleteFood())
	r.PATCH("/admin/foods/:food_id", fc.UpdateFood())
	r.PATCH("/admin/orders/:order_id/status", oc.UpdateOrderStatus())
	r.POST("/cart/items", cc.AddItem())
	r.PATCH("/cart/items/:index", cc.ChangeQuantity())
	r.GET("/cart/summary", cc.GetSummary())
	r.POST("/orders", withUser("u1"), oc.CreateOrder())
	r.GET("/orders/me", withUser("u1"), oc.GetMyOrders())
	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateFoodMultipart(t *testing.T) {
	env := newTestEnv()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("name", "Kottu")
	_ = mw.WriteField("price", "abc")
	_ = mw.WriteField("category", "Rice")
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/admin/foods", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := env.do(t, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Equal(t, services.FoodAdded, out["message"])
	data := out["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["price"])
	assert.Equal(t, "available", data["availability"])
	require.Len(t, env.foods.foods, 1)
}

func TestDeleteFoodNeedsConfirm(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.foods.Create(context.Background(), &models.Food{Name: "Tea"}))
	id := env.foods.foods[0].ID.Hex()

	w := env.do(t, httptest.NewRequest(http.MethodDelete, "/admin/foods/"+id, nil))
	assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	assert.Equal(t, "ConfirmationRequired", decode(t, w)["error"])

	w = env.do(t, httptest.NewRequest(http.MethodDelete, "/admin/foods/"+id+"?confirm=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.foods.foods)
}

func TestEditFoodPlaceholder(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, httptest.NewRequest(http.MethodPatch, "/admin/foods/abc", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
	assert.Equal(t, services.EditComingSoon, decode(t, w)["message"])
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newTestEnv()
	require.NoError(t, env.orders.Create(context.Background(), &models.Order{Status: models.StatusPending}))
	id := env.orders.orders[0].ID.Hex()

	w := env.do(t, jsonRequest(http.MethodPatch, "/admin/orders/"+id+"/status", gin.H{"status": "Out for Delivery"}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusOutForDelivery, env.orders.orders[0].Status)

	w = env.do(t, jsonRequest(http.MethodPatch, "/admin/orders/"+id+"/status", gin.H{"status": "Teleported"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, jsonRequest(http.MethodPatch, "/admin/orders/65f1a2b3c4d5e6f708192a3b/status", gin.H{"status": "Delivered"}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartToCheckout(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, jsonRequest(http.MethodPost, "/cart/items", gin.H{"name": "A", "price": 100}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A added to cart!", decode(t, w)["message"])
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	session := cookies[0]

	env.do(t, jsonRequest(http.MethodPost, "/cart/items", gin.H{"name": "A", "price": 100}), session)
	env.do(t, jsonRequest(http.MethodPost, "/cart/items", gin.H{"name": "B", "price": 50}), session)

	w = env.do(t, jsonRequest(http.MethodPatch, "/cart/items/1", gin.H{"delta": -10}), session)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, httptest.NewRequest(http.MethodGet, "/cart/summary", nil), session)
	summary := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "250", summary["subtotal"])
	assert.Equal(t, "300", summary["deliveryFee"])
	assert.Equal(t, "550", summary["total"])

	w = env.do(t, jsonRequest(http.MethodPost, "/orders", gin.H{"name": "Nimal", "phone": "077", "address": ""}), session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, jsonRequest(http.MethodPost, "/orders", gin.H{"name": "Nimal", "phone": "077", "address": "Kandy"}), session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	out := decode(t, w)
	assert.Equal(t, "/dashboard", out["redirect"])
	require.Len(t, env.orders.orders, 1)
	assert.Equal(t, 550.0, env.orders.orders[0].Total)

	w = env.do(t, httptest.NewRequest(http.MethodGet, "/cart/summary", nil), session)
	summary = decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "0", summary["total"])

	w = env.do(t, httptest.NewRequest(http.MethodGet, "/orders/me", nil))
	mine := decode(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 1.0, mine["total"])
	assert.Equal(t, 1.0, mine["pending"])
}

func TestBadCartIndex(t *testing.T) {
	env := newTestEnv()
	w := env.do(t, jsonRequest(http.MethodPatch, "/cart/items/x", gin.H{"delta": 1}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(t, jsonRequest(http.MethodPatch, "/cart/items/4", gin.H{"delta": 1}))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
