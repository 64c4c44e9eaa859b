package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type ClubStorage struct {
	col *mongo.Collection
}

func NewClubStorage(db *mongo.Database) *ClubStorage {
	return &ClubStorage{
		col: db.Collection("clubs"),
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	if club.ID == "" {
		club.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	club.CreatedAt = now
	club.UpdatedAt = now
	_, err := s.col.InsertOne(ctx, club)
	return club, translateErr(err)
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&club)
	if err != nil {
		return nil, translateErr(err)
	}
	return &club, nil
}

func (s *ClubStorage) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: order, Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translateErr(err)
	}
	var clubs []entity.Club
	if err = cursor.All(ctx, &clubs); err != nil {
		return nil, translateErr(err)
	}
	return clubs, nil
}

func (s *ClubStorage) Update(ctx context.Context, id string, update dto.ClubUpdate) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"name":        update.Name,
			"short_desc":  update.ShortDesc,
			"description": update.Description,
			"image_url":   update.ImageURL,
			"photos":      update.Photos,
			"apply_form":  update.ApplyForm,
			"updated_at":  time.Now().UTC(),
		},
	})
	return translateErr(err)
}

func (s *ClubStorage) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	return count, translateErr(err)
}
