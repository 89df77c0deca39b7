package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/database"
	"go-food-ordering/media"
	"go-food-ordering/models"
	"go-food-ordering/realtime"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memFoods struct {
	mu    sync.Mutex
	pub   realtime.Publisher
	foods []models.Food
}

func (m *memFoods) Create(ctx context.Context, food *models.Food) error {
	m.mu.Lock()
	food.ID = primitive.NewObjectID()
	m.foods = append(m.foods, *food)
	m.mu.Unlock()
	publish(m.pub, database.FoodCollection)
	return nil
}

func (m *memFoods) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, f := range m.foods {
		if f.ID.Hex() == id {
			m.foods = append(m.foods[:i], m.foods[i+1:]...)
			publish(m.pub, database.FoodCollection)
			return nil
		}
	}
	return apperrors.NotFound("Food not found.")
}

func (m *memFoods) List(ctx context.Context) ([]models.Food, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Food(nil), m.foods...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memFoods) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.foods)), nil
}

type memCategories struct {
	mu         sync.Mutex
	pub        realtime.Publisher
	categories []models.Category
}

func (m *memCategories) Create(ctx context.Context, c *models.Category) error {
	m.mu.Lock()
	c.ID = primitive.NewObjectID()
	m.categories = append(m.categories, *c)
	m.mu.Unlock()
	publish(m.pub, database.CategoryCollection)
	return nil
}

func (m *memCategories) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.categories {
		if c.ID.Hex() == id {
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			publish(m.pub, database.CategoryCollection)
			return nil
		}
	}
	return apperrors.NotFound("Category not found.")
}

func (m *memCategories) List(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Category(nil), m.categories...), nil
}

type memOrders struct {
	mu     sync.Mutex
	pub    realtime.Publisher
	orders []models.Order
}

func (m *memOrders) Create(ctx context.Context, o *models.Order) error {
	m.mu.Lock()
	o.ID = primitive.NewObjectID()
	m.orders = append(m.orders, *o)
	m.mu.Unlock()
	publish(m.pub, database.OrderCollection)
	return nil
}

func (m *memOrders) Get(ctx context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID.Hex() == id {
			return &o, nil
		}
	}
	return nil, apperrors.NotFound("Order not found.")
}

func (m *memOrders) List(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Order(nil), m.orders...), nil
}

func (m *memOrders) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID.Hex() == id {
			m.orders[i].Status = status
			publish(m.pub, database.OrderCollection)
			return nil
		}
	}
	return apperrors.NotFound("Order not found.")
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]models.UserProfile
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]models.UserProfile)}
}

func (m *memUsers) Create(ctx context.Context, u *models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

func (m *memUsers) Get(ctx context.Context, uid string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, apperrors.NotFound("User not found.")
	}
	return &u, nil
}

func (m *memUsers) UpdateProfile(ctx context.Context, uid, name, phone string) error {
	return m.update(uid, func(u *models.UserProfile) { u.Name, u.Phone = name, phone })
}

func (m *memUsers) UpdateAddress(ctx context.Context, uid, address string) error {
	return m.update(uid, func(u *models.UserProfile) { u.Address = address })
}

func (m *memUsers) update(uid string, fn func(*models.UserProfile)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return apperrors.NotFound("User not found.")
	}
	fn(&u)
	m.users[uid] = u
	return nil
}

type memCredentials struct {
	mu    sync.Mutex
	creds map[string]models.Credential
}

func newMemCredentials() *memCredentials {
	return &memCredentials{creds: make(map[string]models.Credential)}
}

func (m *memCredentials) Create(ctx context.Context, c *models.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[c.Email]; ok {
		return apperrors.Auth("The email address is already in use by another account.", nil)
	}
	c.ID = primitive.NewObjectID()
	m.creds[c.Email] = *c
	return nil
}

func (m *memCredentials) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[email]
	if !ok {
		return nil, apperrors.NotFound("user not found")
	}
	return &c, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]string)}
}

func (m *memSessions) Create(ctx context.Context, sessionID, uid string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = uid
	return nil
}

func (m *memSessions) Exists(ctx context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[sessionID]
	return ok, nil
}

func (m *memSessions) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

type memCarts struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{carts: make(map[string]models.Cart)}
}

func (m *memCarts) Get(ctx context.Context, key string) (models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.carts[key]
	c.Entries = append([]models.CartEntry(nil), c.Entries...)
	return c, nil
}

func (m *memCarts) Save(ctx context.Context, key string, cart *models.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[key] = *cart
	return nil
}

func (m *memCarts) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, key)
	return nil
}

type MockUploader struct{ mock.Mock }

func (m *MockUploader) Upload(ctx context.Context, file media.File) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func publish(pub realtime.Publisher, topic string) {
	if pub != nil {
		pub.Publish(topic)
	}
}
