package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrCartIndex = errors.New("cart entry does not exist")

// CartEntry is one cart line. Name is the identity key.
type CartEntry struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"qty"`
}

type Cart struct {
	Entries   []CartEntry `json:"items"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Add bumps the quantity of an entry with the same name by one, or appends a
// new entry with quantity 1. It returns the resulting entry.
func (c *Cart) Add(name string, price float64, image string) CartEntry {
	for i := range c.Entries {
		if c.Entries[i].Name == name {
			c.Entries[i].Quantity++
			return c.Entries[i]
		}
	}
	entry := CartEntry{Name: name, Price: price, Image: image, Quantity: 1}
	c.Entries = append(c.Entries, entry)
	return entry
}

// ChangeQuantity applies delta to the entry at index, never going below 1.
func (c *Cart) ChangeQuantity(index, delta int) error {
	if index < 0 || index >= len(c.Entries) {
		return ErrCartIndex
	}
	q := int64(c.Entries[index].Quantity) + int64(delta)
	if q < 1 {
		q = 1
	}
	if q > maxQuantity {
		q = maxQuantity
	}
	c.Entries[index].Quantity = int(q)
	return nil
}

const maxQuantity = 1 << 30

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Entries) {
		return ErrCartIndex
	}
	c.Entries = append(c.Entries[:index], c.Entries[index+1:]...)
	return nil
}

func (c Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

type CartSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
}

// Summary charges deliveryFee only when the subtotal is above zero.
func (c Cart) Summary(deliveryFee decimal.Decimal) CartSummary {
	subtotal := decimal.Zero
	for _, e := range c.Entries {
		subtotal = subtotal.Add(decimal.NewFromFloat(e.Price).Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	fee := decimal.Zero
	if subtotal.IsPositive() {
		fee = deliveryFee
	}
	return CartSummary{Subtotal: subtotal, DeliveryFee: fee, Total: subtotal.Add(fee)}
}

// OrderItems snapshots the cart for an order document.
func (c Cart) OrderItems() []OrderItem {
	items := make([]OrderItem, 0, len(c.Entries))
	for _, e := range c.Entries {
		items = append(items, OrderItem{Name: e.Name, Price: e.Price, Quantity: e.Quantity, Image: e.Image})
	}
	return items
}
