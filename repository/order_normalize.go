package repository

import (
	"fmt"

	"go-food-ordering/helpers"
	"go-food-ordering/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Older order documents disagree on field names. Each list is read in
// priority order.
var (
	amountKeys    = []string{"subtotal", "total", "totalAmount"}
	createdAtKeys = []string{"createdAt", "createAt"}
	phoneKeys     = []string{"phone", "customerPhone"}
	quantityKeys  = []string{"quantity", "qty"}
)

// normalizeOrder maps a raw order document onto the canonical Order. A
// missing status stays empty.
func normalizeOrder(raw bson.M) models.Order {
	order := models.Order{
		UserID:       helpers.String(raw, "userId"),
		CustomerName: helpers.String(raw, "customerName"),
		Phone:        helpers.String(raw, phoneKeys...),
		Address:      helpers.String(raw, "address"),
		CreatedAt:    helpers.Time(raw, createdAtKeys...),
	}
	if id, ok := raw["_id"].(primitive.ObjectID); ok {
		order.ID = id
	}
	if s := helpers.String(raw, "status"); s != "" {
		if st, ok := models.ParseStatus(s); ok {
			order.Status = st
		} else {
			order.Status = models.Status(s)
		}
	}

	if v, ok := helpers.FirstSet(raw, amountKeys...); ok {
		amount := helpers.ParseAmount(v)
		order.Subtotal = amount.InexactFloat64()
		if label, isString := v.(string); isString {
			order.DisplayTotal = label
		} else {
			order.DisplayTotal = helpers.FormatAmount("Rs.", amount)
		}
	} else {
		order.DisplayTotal = "Rs. 0"
	}
	if v, ok := helpers.FirstSet(raw, "deliveryFee"); ok {
		order.DeliveryFee = helpers.ParseAmount(v).InexactFloat64()
	}
	if v, ok := raw["total"]; ok && order.DeliveryFee > 0 {
		order.Total = helpers.ParseAmount(v).InexactFloat64()
	} else {
		order.Total = order.Subtotal + order.DeliveryFee
	}

	order.Items = normalizeItems(raw["items"])
	return order
}

func normalizeItems(v interface{}) []models.OrderItem {
	items := []models.OrderItem{}
	if v == nil {
		return items
	}
	list, ok := helpers.AsSlice(v)
	if !ok {
		// a lone item document counts as one line
		list = []interface{}{v}
	}
	for _, entry := range list {
		doc, ok := helpers.AsMap(entry)
		if !ok {
			continue
		}
		item := models.OrderItem{
			Name:     helpers.String(doc, "name"),
			Quantity: helpers.Int(doc, 1, quantityKeys...),
			Image:    helpers.String(doc, "image"),
		}
		if p, ok := helpers.FirstSet(doc, "price"); ok {
			item.Price = helpers.ParseAmount(p).InexactFloat64()
		}
		items = append(items, item)
	}
	return items
}

// normalizeUser maps a raw users document onto UserProfile; "name" and
// "fullName" both feed Name.
func normalizeUser(raw bson.M) models.UserProfile {
	user := models.UserProfile{
		FirstName: helpers.String(raw, "firstName"),
		LastName:  helpers.String(raw, "lastName"),
		Name:      helpers.String(raw, "name", "fullName"),
		Email:     helpers.String(raw, "email"),
		Phone:     helpers.String(raw, "phone"),
		Address:   helpers.String(raw, "address"),
		Role:      models.Role(helpers.String(raw, "role")),
	}
	switch id := raw["_id"].(type) {
	case string:
		user.ID = id
	case primitive.ObjectID:
		user.ID = id.Hex()
	default:
		user.ID = fmt.Sprint(id)
	}
	if t := helpers.Time(raw, "createdAt"); t != nil {
		user.CreatedAt = *t
	}
	return user
}
