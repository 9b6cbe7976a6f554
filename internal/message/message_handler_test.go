package message_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/domain"
	"github.com/Akhand-Replit/Akhand-office-v2/internal/message"
	messageerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/message/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMessageService struct {
	SendFn           func(ctx context.Context, actor domain.Actor, req message.SendMessageRequest) (message.MessageResponse, error)
	ListForCompanyFn func(ctx context.Context, companyID string) ([]message.MessageResponse, error)
	ListForAdminFn   func(ctx context.Context, companyID string) ([]message.MessageResponse, error)
	UnreadCountFn    func(ctx context.Context, actor domain.Actor) (int64, error)
	MarkReadFn       func(ctx context.Context, actor domain.Actor, id string) error
	MarkAllReadFn    func(ctx context.Context, actor domain.Actor) error
}

func (f *fakeMessageService) Send(ctx context.Context, actor domain.Actor, req message.SendMessageRequest) (message.MessageResponse, error) {
	return f.SendFn(ctx, actor, req)
}
func (f *fakeMessageService) ListForCompany(ctx context.Context, companyID string) ([]message.MessageResponse, error) {
	return f.ListForCompanyFn(ctx, companyID)
}
func (f *fakeMessageService) ListForAdmin(ctx context.Context, companyID string) ([]message.MessageResponse, error) {
	return f.ListForAdminFn(ctx, companyID)
}
func (f *fakeMessageService) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	return f.UnreadCountFn(ctx, actor)
}
func (f *fakeMessageService) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	return f.MarkReadFn(ctx, actor, id)
}
func (f *fakeMessageService) MarkAllRead(ctx context.Context, actor domain.Actor) error {
	return f.MarkAllReadFn(ctx, actor)
}

func TestMessageHandler_Send(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - admin actor forwarded", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakeMessageService{
			SendFn: func(ctx context.Context, actor domain.Actor, req message.SendMessageRequest) (message.MessageResponse, error) {
				assert.Equal(t, domain.PrincipalAdmin, actor.Type)
				assert.Equal(t, companyID, req.ReceiverID)
				return message.MessageResponse{
					ID:           uuid.New().String(),
					SenderType:   "admin",
					ReceiverType: "company",
					ReceiverID:   req.ReceiverID,
					MessageText:  req.MessageText,
				}, nil
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "admin")
		c.Set("user_id", "admin")

		body := `{"receiver_id":"` + companyID + `","message_text":"Quarterly audit next week"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Send(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Quarterly audit next week")
	})

	t.Run("fail - missing receiver maps to 400", func(t *testing.T) {
		svc := &fakeMessageService{
			SendFn: func(ctx context.Context, actor domain.Actor, req message.SendMessageRequest) (message.MessageResponse, error) {
				return message.MessageResponse{}, messageerrors.ErrReceiverRequired
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "admin")

		req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(`{"message_text":"Hi"}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Send(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMessageHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - admin sees all conversations", func(t *testing.T) {
		filterCompany := uuid.New().String()

		svc := &fakeMessageService{
			ListForAdminFn: func(ctx context.Context, companyID string) ([]message.MessageResponse, error) {
				assert.Equal(t, filterCompany, companyID)
				return []message.MessageResponse{
					{ID: uuid.New().String(), MessageText: "From a company"},
				}, nil
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "admin")
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/messages?company_id="+filterCompany, nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "From a company")
	})

	t.Run("success - company sees its own conversation", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakeMessageService{
			ListForCompanyFn: func(ctx context.Context, cid string) ([]message.MessageResponse, error) {
				assert.Equal(t, companyID, cid)
				return []message.MessageResponse{
					{ID: uuid.New().String(), MessageText: "From the admin"},
				}, nil
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "company")
		c.Set("company_id", companyID)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/messages", nil)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "From the admin")
	})
}

func TestMessageHandler_UnreadCount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeMessageService{
			UnreadCountFn: func(ctx context.Context, actor domain.Actor) (int64, error) {
				return 3, nil
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "company")
		c.Set("user_id", uuid.New().String())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/messages/unread", nil)

		h.UnreadCount(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"unread":3`)
	})
}

func TestMessageHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("fail - not the receiver maps to 404", func(t *testing.T) {
		svc := &fakeMessageService{
			MarkReadFn: func(ctx context.Context, actor domain.Actor, id string) error {
				return messageerrors.ErrMessageNotFound
			},
		}

		h := message.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("user_type", "company")
		c.Set("user_id", uuid.New().String())
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
		c.Request = httptest.NewRequest(http.MethodPatch, "/api/v1/messages/x/read", nil)

		h.MarkRead(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
