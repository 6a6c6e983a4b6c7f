package cli

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// RunStatus shows the sync status and pending change count per resource.
func (c *Cli) RunStatus(ctx context.Context) error {
	fmt.Println("=== Sync Status ===")
	fmt.Println()

	for _, resource := range models.Resources {
		pending, err := c.syncService.PendingCount(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("failed to count pending changes: %w", err)
		}

		cursor, err := c.state.GetCursor(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("failed to read cursor: %w", err)
		}

		fmt.Printf("%s:\n", resource)
		fmt.Printf("  Status:          %s\n", c.syncService.Status(resource))
		fmt.Printf("  Pending changes: %d\n", pending)
		if cursor.IsZero() {
			fmt.Println("  Last sync:       never")
		} else {
			fmt.Printf("  Last sync:       %s\n", cursor.LastSyncedAt.Local().Format("2006-01-02 15:04:05"))
		}
		fmt.Println()
	}

	return nil
}
