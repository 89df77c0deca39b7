package repository

import (
	"testing"
	"time"

	"go-food-ordering/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeOrderAmountPriority(t *testing.T) {
	tests := []struct {
		name    string
		raw     bson.M
		amount  float64
		display string
	}{
		{"display string subtotal", bson.M{"subtotal": "Rs. 1,000.00", "total": 9}, 1000, "Rs. 1,000.00"},
		{"numeric subtotal", bson.M{"subtotal": int32(500)}, 500, "Rs. 500.00"},
		{"total when subtotal empty", bson.M{"subtotal": "", "total": 320.5}, 320.5, "Rs. 320.50"},
		{"totalAmount last", bson.M{"totalAmount": int64(250)}, 250, "Rs. 250.00"},
		{"nothing set", bson.M{}, 0, "Rs. 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := normalizeOrder(tt.raw)
			assert.Equal(t, tt.amount, o.Amount())
			assert.Equal(t, tt.display, o.DisplayTotal)
		})
	}
}

func TestNormalizeOrderLegacyFields(t *testing.T) {
	id := primitive.NewObjectID()
	at := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	raw := bson.M{
		"_id":           id,
		"userId":        "uid-7",
		"customerName":  "Dilani",
		"customerPhone": "0771234567",
		"address":       "12 Galle Rd",
		"status":        "pending",
		"createAt":      primitive.NewDateTimeFromTime(at),
		"subtotal":      "LKR 400",
		"items": bson.A{
			bson.M{"name": "Kottu", "price": int32(400), "qty": int32(1)},
			bson.D{{Key: "name", Value: "Tea"}, {Key: "price", Value: 0.0}},
			"junk",
		},
	}

	o := normalizeOrder(raw)
	assert.Equal(t, id, o.ID)
	assert.Equal(t, "uid-7", o.UserID)
	assert.Equal(t, "0771234567", o.Phone)
	assert.Equal(t, models.StatusPending, o.Status)
	require.NotNil(t, o.CreatedAt)
	assert.True(t, o.CreatedAt.Equal(at))
	require.Len(t, o.Items, 2)
	assert.Equal(t, models.OrderItem{Name: "Kottu", Price: 400, Quantity: 1}, o.Items[0])
	assert.Equal(t, 1, o.Items[1].Quantity)
	assert.Equal(t, 400.0, o.Total)
}

func TestNormalizeOrderDefaults(t *testing.T) {
	o := normalizeOrder(bson.M{})
	assert.Empty(t, o.Status)
	assert.Equal(t, models.StatusPending, o.DisplayStatus())
	assert.Nil(t, o.CreatedAt)
	assert.Empty(t, o.Items)

	unknown := normalizeOrder(bson.M{"status": "ready"})
	assert.Equal(t, models.Status("ready"), unknown.Status)
}

func TestNormalizeOrderCanonicalTotals(t *testing.T) {
	o := normalizeOrder(bson.M{"subtotal": 250.0, "deliveryFee": 300.0, "total": 550.0})
	assert.Equal(t, 250.0, o.Subtotal)
	assert.Equal(t, 300.0, o.DeliveryFee)
	assert.Equal(t, 550.0, o.Total)
}

func TestNormalizeUserNames(t *testing.T) {
	u := normalizeUser(bson.M{"_id": "uid-1", "fullName": "Ruwan Jay", "role": "admin"})
	assert.Equal(t, "uid-1", u.ID)
	assert.Equal(t, "Ruwan Jay", u.Name)
	assert.True(t, u.IsAdmin())

	u = normalizeUser(bson.M{"_id": "uid-2", "name": "Edited", "fullName": "Old"})
	assert.Equal(t, "Edited", u.Name)

	u = normalizeUser(bson.M{"_id": "uid-3", "firstName": "Kasun", "lastName": "Perera"})
	assert.Equal(t, "Kasun Perera", u.DisplayName())
}
