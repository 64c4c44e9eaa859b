package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type ApplicationStorage struct {
	col *mongo.Collection
}

func NewApplicationStorage(db *mongo.Database) *ApplicationStorage {
	return &ApplicationStorage{
		col: db.Collection("club_applications"),
	}
}

func (s *ApplicationStorage) Create(ctx context.Context, application *entity.ClubApplication) (*entity.ClubApplication, error) {
	_, err := s.col.InsertOne(ctx, application)
	return application, translateErr(err)
}

func (s *ApplicationStorage) Get(ctx context.Context, id string) (*entity.ClubApplication, error) {
	var application entity.ClubApplication
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		return nil, translateErr(err)
	}
	return &application, nil
}

func (s *ApplicationStorage) SetStatus(ctx context.Context, id string, status entity.ApplicationStatus) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	return translateErr(err)
}

func (s *ApplicationStorage) GetPendingByClubID(ctx context.Context, clubID string) ([]entity.ClubApplication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.M{
		"club_id": clubID,
		"status":  entity.ApplicationPending,
	}, opts)
	if err != nil {
		return nil, translateErr(err)
	}
	var applications []entity.ClubApplication
	if err = cursor.All(ctx, &applications); err != nil {
		return nil, translateErr(err)
	}
	return applications, nil
}
