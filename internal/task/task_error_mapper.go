package task

import (
	"errors"

	taskerrors "github.com/Akhand-Replit/Akhand-office-v2/internal/task/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}

	return err
}
