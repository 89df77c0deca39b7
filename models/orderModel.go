package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending        Status = "Pending"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// Statuses lists the canonical values in display order.
var Statuses = []Status{StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered}

const ErrorTone = "#ff4757"

type statusInfo struct {
	progress int
	tone     string
}

var statusTable = map[Status]statusInfo{
	StatusPending:        {progress: 20, tone: "#ffa502"},
	StatusPreparing:      {progress: 40, tone: "#ff7f50"},
	StatusOutForDelivery: {progress: 75, tone: "#3498db"},
	StatusDelivered:      {progress: 100, tone: "#00d9a5"},
}

// ParseStatus matches s case-insensitively against the canonical values.
func ParseStatus(s string) (Status, bool) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return Status(s), false
}

func (s Status) Known() bool {
	_, ok := statusTable[s]
	return ok
}

// Progress is the completion percentage shown on an order card. Unknown
// statuses have none.
func (s Status) Progress() (int, bool) {
	info, ok := statusTable[s]
	return info.progress, ok
}

func (s Status) Tone() string {
	if info, ok := statusTable[s]; ok {
		return info.tone
	}
	return ErrorTone
}

// IsPending compares against "pending" ignoring case, so legacy lowercase
// orders count too.
func (s Status) IsPending() bool {
	return strings.EqualFold(string(s), string(StatusPending))
}

func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Image    string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is the canonical order shape. Legacy documents that spell fields
// differently are normalised by the repository before they get here.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	DeliveryFee  float64            `bson:"deliveryFee" json:"deliveryFee"`
	Total        float64            `bson:"total" json:"total"`
	Status       Status             `bson:"status" json:"status"`
	CreatedAt    *time.Time         `bson:"createdAt,omitempty" json:"createdAt,omitempty"`

	// DisplayTotal keeps the stored label ("LKR 400") when one exists.
	DisplayTotal string `bson:"-" json:"displayTotal"`
}

// DisplayStatus is the status shown in tables. An order stored without one
// shows as Pending, though it is not counted as pending.
func (o Order) DisplayStatus() Status {
	if o.Status == "" {
		return StatusPending
	}
	return o.Status
}

// Amount is the value counted toward revenue and spend.
func (o Order) Amount() float64 {
	return o.Subtotal
}

func (o Order) ItemCount() int {
	return len(o.Items)
}

// ShortID is the customer facing reference, e.g. "FH-3A9C1F".
func (o Order) ShortID() string {
	hex := o.ID.Hex()
	return "FH-" + strings.ToUpper(hex[len(hex)-6:])
}

// AdminRef is the admin table reference, e.g. "#65f1a2".
func (o Order) AdminRef() string {
	return "#" + o.ID.Hex()[:6]
}
