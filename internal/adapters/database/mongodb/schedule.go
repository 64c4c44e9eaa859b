package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type ScheduleStorage struct {
	col *mongo.Collection
}

func NewScheduleStorage(db *mongo.Database) *ScheduleStorage {
	return &ScheduleStorage{
		col: db.Collection("club_schedules"),
	}
}

func (s *ScheduleStorage) Create(ctx context.Context, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error) {
	_, err := s.col.InsertOne(ctx, entry)
	return entry, translateErr(err)
}

func (s *ScheduleStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.ScheduleEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := s.col.Find(ctx, bson.M{"club_id": clubID}, opts)
	if err != nil {
		return nil, translateErr(err)
	}
	var entries []entity.ScheduleEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, translateErr(err)
	}
	return entries, nil
}

func (s *ScheduleStorage) GetByDate(ctx context.Context, clubID, date string) ([]entity.ScheduleEntry, error) {
	cursor, err := s.col.Find(ctx, bson.M{"club_id": clubID, "date": date})
	if err != nil {
		return nil, translateErr(err)
	}
	var entries []entity.ScheduleEntry
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, translateErr(err)
	}
	return entries, nil
}

func (s *ScheduleStorage) Delete(ctx context.Context, clubID, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "club_id": clubID})
	return translateErr(err)
}
