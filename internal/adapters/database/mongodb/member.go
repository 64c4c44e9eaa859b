package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shingu-dev/club-server/internal/domain/dto"
	"github.com/shingu-dev/club-server/internal/domain/entity"
)

// MemberStorage holds the per-club rosters. One document per
// (club_id, user_id) pair, kept unique by index.
type MemberStorage struct {
	col *mongo.Collection
}

func NewMemberStorage(db *mongo.Database) *MemberStorage {
	return &MemberStorage{
		col: db.Collection("club_members"),
	}
}

func (s *MemberStorage) Get(ctx context.Context, clubID, userID string) (*entity.MembershipRecord, error) {
	var record entity.MembershipRecord
	err := s.col.FindOne(ctx, bson.M{"club_id": clubID, "user_id": userID}).Decode(&record)
	if err != nil {
		return nil, translateErr(err)
	}
	return &record, nil
}

// Upsert is a merge write: creating the record if absent, otherwise
// overwriting its fields in place. Idempotent for retries.
func (s *MemberStorage) Upsert(ctx context.Context, record *entity.MembershipRecord) error {
	filter := bson.M{"club_id": record.ClubID, "user_id": record.UserID}
	_, err := s.col.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{
			"name":       record.Name,
			"student_id": record.StudentID,
			"department": record.Department,
			"phone":      record.Phone,
			"role":       record.Role,
			"joined_at":  record.JoinedAt,
		},
	}, options.Update().SetUpsert(true))
	return translateErr(err)
}

func (s *MemberStorage) UpdateRole(ctx context.Context, clubID, userID string, role entity.Role) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"club_id": clubID, "user_id": userID},
		bson.M{"$set": bson.M{"role": role}},
	)
	return translateErr(err)
}

// MergeProfile refreshes the denormalized profile fields, leaving role
// and joined_at untouched.
func (s *MemberStorage) MergeProfile(ctx context.Context, clubID, userID string, snapshot dto.ProfileSnapshot) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"club_id": clubID, "user_id": userID},
		bson.M{"$set": bson.M{
			"name":       snapshot.Name,
			"student_id": snapshot.StudentID,
			"department": snapshot.Department,
			"phone":      snapshot.Phone,
		}},
	)
	return translateErr(err)
}

func (s *MemberStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.MembershipRecord, error) {
	cursor, err := s.col.Find(ctx, bson.M{"club_id": clubID})
	if err != nil {
		return nil, translateErr(err)
	}
	var records []entity.MembershipRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, translateErr(err)
	}
	return records, nil
}

func (s *MemberStorage) Delete(ctx context.Context, clubID, userID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"club_id": clubID, "user_id": userID})
	return translateErr(err)
}
