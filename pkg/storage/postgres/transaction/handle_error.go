package transaction

import (
	"fmt"
)

// HandleError wraps a step failure with the owning transaction's name so
// rollback logs identify which statement aborted it.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("transaction %s: %s: %w", operation, step, err)
}
