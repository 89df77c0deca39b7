package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CategoryRow is a category with the number of foods whose category string
// equals its name. The count is derived and never stored.
type CategoryRow struct {
	Category
	ItemCount int `json:"itemCount"`
}

func CountByCategory(categories []Category, foods []Food) []CategoryRow {
	counts := make(map[string]int, len(categories))
	for _, f := range foods {
		counts[f.Category]++
	}
	rows := make([]CategoryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryRow{Category: c, ItemCount: counts[c.Name]})
	}
	return rows
}
