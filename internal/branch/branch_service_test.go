package branch_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Akhand-Replit/Akhand-office-v2/internal/branch"
	brancherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/branch/errors"
	branchMock "github.com/Akhand-Replit/Akhand-office-v2/internal/branch/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service branch.Service
	repo    *branchMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	repo := branchMock.NewMockRepository(ctrl)
	svc := branch.NewService(gormDB, repo)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestBranchService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success - plain branch", func(t *testing.T) {
		req := branch.CreateBranchRequest{BranchName: "Dhaka Office", Location: "Dhaka"}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, b *branch.Branch) error {
				assert.Equal(t, "Dhaka Office", b.BranchName)
				assert.Equal(t, branch.TypeBranch, b.BranchType)
				assert.Nil(t, b.ParentBranchID)
				assert.True(t, b.IsActive)
				assert.False(t, b.IsMain)
				return nil
			})

		resp, err := deps.service.Create(ctx, companyID, req)
		assert.NoError(t, err)
		assert.Equal(t, branch.TypeBranch, resp.BranchType)
	})

	t.Run("success - sub-branch under a branch", func(t *testing.T) {
		parentID := uuid.New()
		req := branch.CreateBranchRequest{
			BranchName:     "Uttara Desk",
			ParentBranchID: parentID.String(),
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, parentID.String()).
			Return(&branch.Branch{ID: parentID, BranchType: branch.TypeBranch}, nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, b *branch.Branch) error {
				assert.Equal(t, branch.TypeSubBranch, b.BranchType)
				assert.Equal(t, parentID, *b.ParentBranchID)
				return nil
			})

		resp, err := deps.service.Create(ctx, companyID, req)
		assert.NoError(t, err)
		assert.Equal(t, branch.TypeSubBranch, resp.BranchType)
		assert.Equal(t, parentID.String(), resp.ParentBranchID)
	})

	t.Run("fail - parent is already a sub-branch", func(t *testing.T) {
		parentID := uuid.New()
		req := branch.CreateBranchRequest{
			BranchName:     "Too Deep",
			ParentBranchID: parentID.String(),
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, parentID.String()).
			Return(&branch.Branch{ID: parentID, BranchType: branch.TypeSubBranch}, nil)

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, brancherrors.ErrNestingTooDeep)
	})

	t.Run("fail - parent from another company is invisible", func(t *testing.T) {
		parentID := uuid.New()
		req := branch.CreateBranchRequest{
			BranchName:     "Orphan",
			ParentBranchID: parentID.String(),
		}

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, parentID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, brancherrors.ErrBranchNotFound)
	})
}

func TestBranchService_SetActive(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New()

	t.Run("success - cascades to sub-branches and employees", func(t *testing.T) {
		subID := uuid.New().String()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, IsActive: true}, nil)

		deps.repo.EXPECT().
			FindSubBranchIDs(ctx, companyID, branchID.String()).
			Return([]string{subID}, nil)

		deps.repo.EXPECT().
			UpdateStatusBatch(ctx, companyID, []string{branchID.String(), subID}, false).
			Return(nil)

		deps.repo.EXPECT().
			CascadeEmployeeStatus(ctx, []string{branchID.String(), subID}, false).
			Return(nil)

		err := deps.service.SetActive(ctx, companyID, branchID.String(), false)
		assert.NoError(t, err)
	})

	t.Run("success - reactivation runs the same cascade", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, IsActive: true}, nil)

		deps.repo.EXPECT().
			FindSubBranchIDs(ctx, companyID, branchID.String()).
			Return(nil, nil)

		deps.repo.EXPECT().
			UpdateStatusBatch(ctx, companyID, []string{branchID.String()}, true).
			Return(nil)

		deps.repo.EXPECT().
			CascadeEmployeeStatus(ctx, []string{branchID.String()}, true).
			Return(nil)

		err := deps.service.SetActive(ctx, companyID, branchID.String(), true)
		assert.NoError(t, err)
	})

	t.Run("fail - branch not found", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.SetActive(ctx, companyID, branchID.String(), false)
		assert.ErrorIs(t, err, brancherrors.ErrBranchNotFound)
	})
}

func TestBranchService_PromoteMain(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New()

	t.Run("success - demotes the old main first", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		find := deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, BranchType: branch.TypeBranch}, nil)

		demote := deps.repo.EXPECT().
			DemoteMain(ctx, companyID).
			Return(nil).
			After(find)

		deps.repo.EXPECT().
			PromoteMain(ctx, companyID, branchID.String()).
			Return(nil).
			After(demote)

		err := deps.service.PromoteMain(ctx, companyID, branchID.String())
		assert.NoError(t, err)
	})

	t.Run("success - already main is a no-op", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, IsMain: true, BranchType: branch.TypeMain}, nil)

		err := deps.service.PromoteMain(ctx, companyID, branchID.String())
		assert.NoError(t, err)
	})
}

func TestBranchService_Update(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	branchID := uuid.New()

	t.Run("success - rename and relocate", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, BranchName: "Old", BranchType: branch.TypeBranch}, nil)

		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, b *branch.Branch) error {
				assert.Equal(t, "New Name", b.BranchName)
				assert.Equal(t, "Chattogram", b.Location)
				return nil
			})

		resp, err := deps.service.Update(ctx, companyID, branchID.String(), branch.UpdateBranchRequest{
			BranchName: "New Name",
			Location:   "Chattogram",
		})
		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.BranchName)
	})

	t.Run("fail - cannot retype the main branch", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByID(ctx, companyID, branchID.String()).
			Return(&branch.Branch{ID: branchID, IsMain: true, BranchType: branch.TypeMain}, nil)

		_, err := deps.service.Update(ctx, companyID, branchID.String(), branch.UpdateBranchRequest{
			BranchName: "Main",
			BranchType: branch.TypeBranch,
		})
		assert.ErrorIs(t, err, brancherrors.ErrCannotModifyMain)
	})
}
