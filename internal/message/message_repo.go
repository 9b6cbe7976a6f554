package message

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=message_repo.go -destination=mock/message_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, m *Message) error
	FindConversation(ctx context.Context, companyID string) ([]Message, error)
	FindAllForAdmin(ctx context.Context, companyID string) ([]Message, error)
	CountUnread(ctx context.Context, receiverType, receiverID string) (int64, error)
	MarkRead(ctx context.Context, id, receiverType, receiverID string) (int64, error)
	MarkAllRead(ctx context.Context, receiverType, receiverID string) error
	CompanyExists(ctx context.Context, companyID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindConversation returns both directions of the admin and company
// exchange for one company, oldest first.
func (r *repository) FindConversation(ctx context.Context, companyID string) ([]Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).
		Where("(sender_type = 'company' AND sender_id = ?) OR (receiver_type = 'company' AND receiver_id = ?)",
			companyID, companyID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllForAdmin(ctx context.Context, companyID string) ([]Message, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if companyID != "" {
		q = q.Where("(sender_type = 'company' AND sender_id = ?) OR (receiver_type = 'company' AND receiver_id = ?)",
			companyID, companyID)
	}
	var rows []Message
	err := q.Find(&rows).Error
	return rows, err
}

func (r *repository) CountUnread(ctx context.Context, receiverType, receiverID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("receiver_type = ? AND receiver_id = ? AND is_read = FALSE", receiverType, receiverID).
		Count(&count).Error
	return count, err
}

// MarkRead flips one message and reports how many rows matched, so the
// caller can tell a missing message from one addressed to someone else.
func (r *repository) MarkRead(ctx context.Context, id, receiverType, receiverID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Message{}).
		Where("id = ? AND receiver_type = ? AND receiver_id = ?", id, receiverType, receiverID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *repository) MarkAllRead(ctx context.Context, receiverType, receiverID string) error {
	return r.db.WithContext(ctx).
		Model(&Message{}).
		Where("receiver_type = ? AND receiver_id = ? AND is_read = FALSE", receiverType, receiverID).
		Update("is_read", true).Error
}

func (r *repository) CompanyExists(ctx context.Context, companyID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("companies").
		Where("id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}
