package cli

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// RunDelete soft-deletes a record. The tombstone stays in the local store
// and propagates to other devices on the next sync.
func (c *Cli) RunDelete(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: delete <resource> <id>")
	}
	resource, id := args[0], args[1]

	var err error
	switch resource {
	case models.ResourceQuizzes:
		err = c.dataService.DeleteQuiz(ctx, id)
	case models.ResourceResults:
		err = c.dataService.DeleteResult(ctx, id)
	default:
		return fmt.Errorf("cannot delete resource %q", resource)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", resource, id, err)
	}

	fmt.Printf("Deleted %s %s. The deletion propagates on the next sync.\n", resource, id)
	return nil
}
