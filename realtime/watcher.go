package realtime

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Publisher is the write side of a Feed.
type Publisher interface {
	Publish(topic string)
}

// WatchCollections forwards MongoDB change stream events to pub so writes
// made by other processes reach subscribers too. It needs a replica set and
// returns once ctx is done.
func WatchCollections(ctx context.Context, db *mongo.Database, pub Publisher, log *zap.Logger, names ...string) {
	for _, name := range names {
		go watch(ctx, db.Collection(name), pub, log)
	}
}

func watch(ctx context.Context, coll *mongo.Collection, pub Publisher, log *zap.Logger) {
	stream, err := coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		log.Warn("change stream unavailable", zap.String("collection", coll.Name()), zap.Error(err))
		return
	}
	defer stream.Close(context.Background())

	for stream.Next(ctx) {
		pub.Publish(coll.Name())
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Error("change stream stopped", zap.String("collection", coll.Name()), zap.Error(err))
	}
}
