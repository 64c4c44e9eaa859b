package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/common/errorz"
)

// translateErr maps driver errors onto the domain error kinds: a
// missing document is NotFound, anything else is a store failure.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errorz.NotFound
	}
	return fmt.Errorf("%w: %v", errorz.Store, err)
}

// Connect opens the client and pings the deployment.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	ensureIndexes(ctx, db)
	return db, nil
}

// ensureIndexes creates the indexes the storage layer relies on.
// Best-effort: failures surface on first query, not at startup.
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	_, _ = db.Collection("club_members").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "club_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = db.Collection("club_applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "status", Value: 1}},
	})
	_, _ = db.Collection("club_applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	_, _ = db.Collection("club_notices").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "is_pinned", Value: 1}, {Key: "created_at", Value: -1}},
	})
	_, _ = db.Collection("club_schedules").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "club_id", Value: 1}, {Key: "date", Value: 1}},
	})
	_, _ = db.Collection("credentials").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
}
