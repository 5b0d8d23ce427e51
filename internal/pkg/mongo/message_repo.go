package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MessageRepo interface {
	SaveMessage(ctx context.Context, msg *Message) error
	GetInbox(ctx context.Context, receiverID uint64, limit int) ([]*Message, error)
	GetConversation(ctx context.Context, userA uint64, userB uint64, limit int) ([]*Message, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, receiverID uint64) (bool, error)
}

type messageRepoImpl struct {
	col *mongo.Collection
}

func NewMessageRepo(db *mongo.Database) MessageRepo {
	return &messageRepoImpl{
		col: db.Collection("messages"),
	}
}

func (s *messageRepoImpl) SaveMessage(ctx context.Context, msg *Message) error {
	res, err := s.col.InsertOne(ctx, msg)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid
	}
	return nil
}

// GetInbox 收件箱，最新的在前
func (s *messageRepoImpl) GetInbox(ctx context.Context, receiverID uint64, limit int) ([]*Message, error) {
	filter := bson.M{"receiver_id": receiverID}
	return s.find(ctx, filter, limit)
}

// GetConversation 双方往来消息，最新的在前
func (s *messageRepoImpl) GetConversation(ctx context.Context, userA uint64, userB uint64, limit int) ([]*Message, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"sender_id": userA, "receiver_id": userB},
			bson.M{"sender_id": userB, "receiver_id": userA},
		},
	}
	return s.find(ctx, filter, limit)
}

// MarkRead 只有收件人能标记已读；未命中返回 false
func (s *messageRepoImpl) MarkRead(ctx context.Context, id primitive.ObjectID, receiverID uint64) (bool, error) {
	filter := bson.M{
		"_id":         id,
		"receiver_id": receiverID,
	}
	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *messageRepoImpl) find(ctx context.Context, filter bson.M, limit int) ([]*Message, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "send_date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var messages []*Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
