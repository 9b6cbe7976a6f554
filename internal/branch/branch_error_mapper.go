package branch

import (
	"errors"

	brancherrors "github.com/Akhand-Replit/Akhand-office-v2/internal/branch/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return brancherrors.ErrBranchNotFound
	}

	return err
}
