package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
)

// ParseAvailability defaults to Available when nothing usable was selected.
func ParseAvailability(s string) Availability {
	if strings.EqualFold(strings.TrimSpace(s), string(Unavailable)) {
		return Unavailable
	}
	return Available
}

const PlaceholderImage = "https://placehold.co/300x200?text=No+Image"

type Food struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Subcategory  string             `bson:"subcategory" json:"subcategory"`
	Allergens    string             `bson:"allergens" json:"allergens"`
	Availability Availability       `bson:"availability" json:"availability" validate:"oneof=available unavailable"`
	Image        *string            `bson:"image" json:"image"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (f Food) IsAvailable() bool {
	return f.Availability == Available
}

// ImageURL falls back to the placeholder when no image was uploaded.
func (f Food) ImageURL() string {
	if f.Image == nil || *f.Image == "" {
		return PlaceholderImage
	}
	return *f.Image
}
