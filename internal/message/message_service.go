package message

import (
	"context"
	"strconv"
	"time"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	messageerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/message/errors"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	UnreadKeyPrefix = "messages:unread:"
	unreadCacheTTL  = 5 * time.Minute
)

func GetUnreadKey(receiverType, receiverID string) string {
	return UnreadKeyPrefix + receiverType + ":" + receiverID
}

//go:generate mockgen -source=message_service.go -destination=mock/message_service_mock.go -package=mock
type Service interface {
	Send(ctx context.Context, actor domain.Actor, req SendMessageRequest) (MessageResponse, error)
	ListForCompany(ctx context.Context, companyID string) ([]MessageResponse, error)
	ListForAdmin(ctx context.Context, companyID string) ([]MessageResponse, error)
	UnreadCount(ctx context.Context, actor domain.Actor) (int64, error)
	MarkRead(ctx context.Context, actor domain.Actor, id string) error
	MarkAllRead(ctx context.Context, actor domain.Actor) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("message.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("message.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// receiverOf resolves the other side of the conversation. Admin messages
// must name a company; company messages always go to the admin.
func receiverOf(actor domain.Actor, req SendMessageRequest) (string, uuid.UUID, error) {
	switch actor.Type {
	case domain.PrincipalAdmin:
		if req.ReceiverID == "" {
			return "", uuid.Nil, messageerrors.ErrReceiverRequired
		}
		id, err := uuid.Parse(req.ReceiverID)
		if err != nil {
			return "", uuid.Nil, messageerrors.ErrReceiverNotFound
		}
		return string(domain.PrincipalCompany), id, nil
	case domain.PrincipalCompany:
		return string(domain.PrincipalAdmin), uuid.Nil, nil
	default:
		return "", uuid.Nil, messageerrors.ErrNotParticipant
	}
}

func (s *service) Send(ctx context.Context, actor domain.Actor, req SendMessageRequest) (MessageResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("send message requested",
		zap.String("request_id", rid),
		zap.String("sender_type", string(actor.Type)),
	)

	receiverType, receiverID, err := receiverOf(actor, req)
	if err != nil {
		return MessageResponse{}, err
	}

	if actor.Type == domain.PrincipalAdmin {
		exists, err := s.repo.CompanyExists(ctx, receiverID.String())
		if err != nil {
			return MessageResponse{}, err
		}
		if !exists {
			return MessageResponse{}, messageerrors.ErrReceiverNotFound
		}
	}

	senderID := uuid.Nil
	if actor.Type == domain.PrincipalCompany {
		senderID = uuid.MustParse(actor.UserID)
	}

	msg := &Message{
		ID:           uuid.New(),
		SenderType:   string(actor.Type),
		SenderID:     senderID,
		ReceiverType: receiverType,
		ReceiverID:   receiverID,
		MessageText:  req.MessageText,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error("send message failed", zap.String("request_id", rid), zap.Error(err))
		return MessageResponse{}, err
	}

	s.invalidateUnread(ctx, receiverType, receiverID.String())

	s.logger.Info("send message success",
		zap.String("request_id", rid),
		zap.String("message_id", msg.ID.String()),
		zap.String("receiver_type", receiverType),
	)
	return mapToResponse(*msg), nil
}

func (s *service) ListForCompany(ctx context.Context, companyID string) ([]MessageResponse, error) {
	rows, err := s.repo.FindConversation(ctx, companyID)
	if err != nil {
		s.logger.Error("list company messages failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListForAdmin(ctx context.Context, companyID string) ([]MessageResponse, error) {
	rows, err := s.repo.FindAllForAdmin(ctx, companyID)
	if err != nil {
		s.logger.Error("list admin messages failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) receiverKeyOf(actor domain.Actor) (string, string, error) {
	switch actor.Type {
	case domain.PrincipalAdmin:
		return string(domain.PrincipalAdmin), uuid.Nil.String(), nil
	case domain.PrincipalCompany:
		return string(domain.PrincipalCompany), actor.UserID, nil
	default:
		return "", "", messageerrors.ErrNotParticipant
	}
}

func (s *service) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	receiverType, receiverID, err := s.receiverKeyOf(actor)
	if err != nil {
		return 0, err
	}
	cacheKey := GetUnreadKey(receiverType, receiverID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			if n, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return n, nil
			}
		}
	}

	// Singleflight collapses the stampede when the cache is cold.
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		count, err := s.repo.CountUnread(ctx, receiverType, receiverID)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			s.rdb.Set(ctx, cacheKey, strconv.FormatInt(count, 10), unreadCacheTTL)
		}
		return count, nil
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

func (s *service) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return messageerrors.ErrInvalidMessageID
	}

	receiverType, receiverID, err := s.receiverKeyOf(actor)
	if err != nil {
		return err
	}

	affected, err := s.repo.MarkRead(ctx, id, receiverType, receiverID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return messageerrors.ErrMessageNotFound
	}

	s.invalidateUnread(ctx, receiverType, receiverID)
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, actor domain.Actor) error {
	receiverType, receiverID, err := s.receiverKeyOf(actor)
	if err != nil {
		return err
	}

	if err := s.repo.MarkAllRead(ctx, receiverType, receiverID); err != nil {
		return err
	}

	s.invalidateUnread(ctx, receiverType, receiverID)
	return nil
}

func (s *service) invalidateUnread(ctx context.Context, receiverType, receiverID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, GetUnreadKey(receiverType, receiverID)).Err(); err != nil {
		s.logger.Warn("unread cache invalidation failed",
			zap.String("receiver_type", receiverType),
			zap.Error(err),
		)
	}
}

func mapToResponse(m Message) MessageResponse {
	resp := MessageResponse{
		ID:           m.ID.String(),
		SenderType:   m.SenderType,
		ReceiverType: m.ReceiverType,
		MessageText:  m.MessageText,
		IsRead:       m.IsRead,
		CreatedAt:    m.CreatedAt,
	}
	if m.SenderID != uuid.Nil {
		resp.SenderID = m.SenderID.String()
	}
	if m.ReceiverID != uuid.Nil {
		resp.ReceiverID = m.ReceiverID.String()
	}
	return resp
}

func mapToListResponse(rows []Message) []MessageResponse {
	resp := make([]MessageResponse, 0, len(rows))
	for _, m := range rows {
		resp = append(resp, mapToResponse(m))
	}
	return resp
}
