package persistence

import (
	"errors"

	"github.com/commercerack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM/driver failures to the domain taxonomy.
// Unique-constraint violations become Conflict; everything else from the
// store is wrapped as a StorageError so the cause stays inspectable.
// Callers handle gorm.ErrRecordNotFound themselves, since absence is only
// an error for mutations.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return shared.ErrConflict
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	return shared.NewStorageError(err)
}
