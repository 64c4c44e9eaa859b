package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type UserStorage struct {
	col *mongo.Collection
}

func NewUserStorage(db *mongo.Database) *UserStorage {
	return &UserStorage{
		col: db.Collection("users"),
	}
}

func (s *UserStorage) Create(ctx context.Context, user *entity.UserProfile) (*entity.UserProfile, error) {
	_, err := s.col.InsertOne(ctx, user)
	return user, translateErr(err)
}

func (s *UserStorage) Get(ctx context.Context, id string) (*entity.UserProfile, error) {
	var user entity.UserProfile
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *UserStorage) Update(ctx context.Context, userID string, update dto.ProfileUpdate) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"name":       update.Name,
			"phone":      update.Phone,
			"major":      update.Major,
			"department": update.Department,
			"student_id": update.StudentID,
			"updated_at": time.Now().UTC(),
		},
	})
	return translateErr(err)
}

func (s *UserStorage) SetAffiliation(ctx context.Context, userID string, status entity.ClubStatus, clubID string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"my_club_status": status,
			"my_club_id":     clubID,
			"updated_at":     time.Now().UTC(),
		},
	})
	return translateErr(err)
}

func (s *UserStorage) SetPresidentOf(ctx context.Context, userID, clubID string) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{
			"president_of": clubID,
			"updated_at":   time.Now().UTC(),
		},
	})
	return translateErr(err)
}

func (s *UserStorage) Delete(ctx context.Context, id string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return translateErr(err)
}
