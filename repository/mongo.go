package repository

import (
	"context"
	"time"

	"go-food-ordering/apperrors"
	"go-food-ordering/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultTimeout = 10 * time.Second

// base carries what every mongo repository shares: the change publisher and
// the per-call timeout.
type base struct {
	pub     realtime.Publisher
	topic   string
	timeout time.Duration
}

func newBase(pub realtime.Publisher, topic string) base {
	return base{pub: pub, topic: topic, timeout: defaultTimeout}
}

func (b base) ctx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, b.timeout)
}

func (b base) changed() {
	if b.pub != nil {
		b.pub.Publish(b.topic)
	}
}

func objectID(id, what string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound(what + " not found.")
	}
	return oid, nil
}
