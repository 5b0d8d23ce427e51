package dto

type MessageSendDTO struct {
	ReceiverID uint64 `json:"receiver_id" binding:"required"`
	Text       string `json:"text" binding:"required" validate:"min=1,max=1000"`
}
