package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is one row of the admin and company conversation. The admin side
// has no database identity, so its sender or receiver ID is the zero UUID.
type Message struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderType   string    `gorm:"type:varchar(20);not null"`
	SenderID     uuid.UUID `gorm:"type:uuid;not null"`
	ReceiverType string    `gorm:"type:varchar(20);not null;index:idx_message_receiver"`
	ReceiverID   uuid.UUID `gorm:"type:uuid;not null;index:idx_message_receiver"`
	MessageText  string    `gorm:"type:text;not null"`
	IsRead       bool      `gorm:"default:false"`
	CreatedAt    time.Time
}

func (Message) TableName() string { return "messages" }
