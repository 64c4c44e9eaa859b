package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type NoticeStorage struct {
	col *mongo.Collection
}

func NewNoticeStorage(db *mongo.Database) *NoticeStorage {
	return &NoticeStorage{
		col: db.Collection("club_notices"),
	}
}

func (s *NoticeStorage) Create(ctx context.Context, notice *entity.Notice) (*entity.Notice, error) {
	_, err := s.col.InsertOne(ctx, notice)
	return notice, translateErr(err)
}

func (s *NoticeStorage) Get(ctx context.Context, clubID, id string) (*entity.Notice, error) {
	var notice entity.Notice
	err := s.col.FindOne(ctx, bson.M{"_id": id, "club_id": clubID}).Decode(&notice)
	if err != nil {
		return nil, translateErr(err)
	}
	return &notice, nil
}

func (s *NoticeStorage) GetPinned(ctx context.Context, clubID string) (*entity.Notice, error) {
	var notice entity.Notice
	err := s.col.FindOne(ctx, bson.M{"club_id": clubID, "is_pinned": true}).Decode(&notice)
	if err != nil {
		return nil, translateErr(err)
	}
	return &notice, nil
}

func (s *NoticeStorage) GetWithPagination(ctx context.Context, clubID string, offset, limit int) ([]entity.Notice, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := s.col.Find(ctx, bson.M{"club_id": clubID, "is_pinned": false}, opts)
	if err != nil {
		return nil, translateErr(err)
	}
	var notices []entity.Notice
	if err = cursor.All(ctx, &notices); err != nil {
		return nil, translateErr(err)
	}
	return notices, nil
}

func (s *NoticeStorage) CountUnpinned(ctx context.Context, clubID string) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"club_id": clubID, "is_pinned": false})
	return count, translateErr(err)
}

func (s *NoticeStorage) SetPinned(ctx context.Context, clubID, id string, pinned bool) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "club_id": clubID},
		bson.M{"$set": bson.M{"is_pinned": pinned}},
	)
	return translateErr(err)
}

func (s *NoticeStorage) Delete(ctx context.Context, clubID, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id, "club_id": clubID})
	return translateErr(err)
}
