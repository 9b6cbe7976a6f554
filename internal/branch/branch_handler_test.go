package branch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/branch"
	brancherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/branch/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeBranchService struct {
	CreateFn      func(ctx context.Context, companyID string, req branch.CreateBranchRequest) (branch.BranchResponse, error)
	GetAllFn      func(ctx context.Context, companyID string) ([]branch.BranchResponse, error)
	GetByIDFn     func(ctx context.Context, companyID, id string) (branch.BranchResponse, error)
	UpdateFn      func(ctx context.Context, companyID, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error)
	PromoteMainFn func(ctx context.Context, companyID, id string) error
	SetActiveFn   func(ctx context.Context, companyID, id string, active bool) error
}

func (f *fakeBranchService) Create(ctx context.Context, companyID string, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeBranchService) GetAll(ctx context.Context, companyID string) ([]branch.BranchResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeBranchService) GetByID(ctx context.Context, companyID, id string) (branch.BranchResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeBranchService) Update(ctx context.Context, companyID, id string, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeBranchService) PromoteMain(ctx context.Context, companyID, id string) error {
	return f.PromoteMainFn(ctx, companyID, id)
}
func (f *fakeBranchService) SetActive(ctx context.Context, companyID, id string, active bool) error {
	return f.SetActiveFn(ctx, companyID, id, active)
}

func TestBranchHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeBranchService{
			CreateFn: func(ctx context.Context, cid string, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "Dhaka Office", req.BranchName)
				return branch.BranchResponse{
					ID:         uuid.New().String(),
					BranchName: req.BranchName,
					BranchType: branch.TypeBranch,
					IsActive:   true,
				}, nil
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)

		body := `{"branch_name":"Dhaka Office","location":"Dhaka"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Dhaka Office")
	})

	t.Run("fail - nesting too deep maps to 400", func(t *testing.T) {
		svc := &fakeBranchService{
			CreateFn: func(ctx context.Context, cid string, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
				return branch.BranchResponse{}, brancherrors.ErrNestingTooDeep
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", uuid.New().String())

		body := `{"branch_name":"Too Deep","parent_branch_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/branches", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "sub-branch")
	})
}

func TestBranchHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeBranchService{
			GetAllFn: func(ctx context.Context, cid string) ([]branch.BranchResponse, error) {
				assert.Equal(t, companyID, cid)
				return []branch.BranchResponse{
					{ID: uuid.New().String(), BranchName: "Main Office", IsMain: true, EmployeeCount: 12},
					{ID: uuid.New().String(), BranchName: "Dhaka Office", EmployeeCount: 4},
				}, nil
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", companyID)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/branches", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Main Office")
		assert.Contains(t, w.Body.String(), `"employee_count":12`)
	})
}

func TestBranchHandler_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeBranchService{
			SetActiveFn: func(ctx context.Context, companyID, gotID string, active bool) error {
				assert.Equal(t, id, gotID)
				assert.False(t, active)
				return nil
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", uuid.New().String())
		c.Params = gin.Params{{Key: "id", Value: id}}

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/branches/"+id+"/status", strings.NewReader(`{"is_active":false}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.SetStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fail - not found", func(t *testing.T) {
		svc := &fakeBranchService{
			SetActiveFn: func(ctx context.Context, companyID, id string, active bool) error {
				return brancherrors.ErrBranchNotFound
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", uuid.New().String())
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		req := httptest.NewRequest(http.MethodPatch, "/api/v1/branches/x/status", strings.NewReader(`{"is_active":true}`))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		h.SetStatus(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBranchHandler_PromoteMain(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		svc := &fakeBranchService{
			PromoteMainFn: func(ctx context.Context, companyID, gotID string) error {
				assert.Equal(t, id, gotID)
				return nil
			},
		}

		h := branch.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Set("company_id", uuid.New().String())
		c.Params = gin.Params{{Key: "id", Value: id}}
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/branches/"+id+"/promote-main", nil)

		h.PromoteMain(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_main":true`)
	})
}
