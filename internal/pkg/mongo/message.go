package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message 用户私信，整条明细存 MongoDB
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID   uint64             `bson:"sender_id" json:"sender_id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiver_id"`
	Text       string             `bson:"text" json:"text"`
	IsRead     bool               `bson:"is_read" json:"is_read"`
	SendDate   time.Time          `bson:"send_date" json:"send_date"`
}
