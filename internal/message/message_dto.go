package message

import "time"

type SendMessageRequest struct {
	ReceiverID  string `json:"receiver_id" binding:"omitempty,uuid"`
	MessageText string `json:"message_text" binding:"required"`
}

type MessageResponse struct {
	ID           string    `json:"id"`
	SenderType   string    `json:"sender_type"`
	SenderID     string    `json:"sender_id,omitempty"`
	ReceiverType string    `json:"receiver_type"`
	ReceiverID   string    `json:"receiver_id,omitempty"`
	MessageText  string    `json:"message_text"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}
