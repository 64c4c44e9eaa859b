package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shingu-dev/club-server/internal/domain/entity"
)

type CredentialStorage struct {
	col *mongo.Collection
}

func NewCredentialStorage(db *mongo.Database) *CredentialStorage {
	return &CredentialStorage{
		col: db.Collection("credentials"),
	}
}

func (s *CredentialStorage) Create(ctx context.Context, credential *entity.Credential) error {
	_, err := s.col.InsertOne(ctx, credential)
	return translateErr(err)
}

func (s *CredentialStorage) Get(ctx context.Context, userID string) (*entity.Credential, error) {
	var credential entity.Credential
	err := s.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&credential)
	if err != nil {
		return nil, translateErr(err)
	}
	return &credential, nil
}

func (s *CredentialStorage) GetByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var credential entity.Credential
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&credential)
	if err != nil {
		return nil, translateErr(err)
	}
	return &credential, nil
}

func (s *CredentialStorage) UpdatePassword(ctx context.Context, userID string, hash []byte) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{
		"$set": bson.M{"password_hash": hash},
	})
	return translateErr(err)
}

func (s *CredentialStorage) Delete(ctx context.Context, userID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": userID})
	return translateErr(err)
}
