package cli

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// RunDoctor inspects the per-resource cursor, pending-change and
// circuit-breaker state. With --clear-block <resource> it removes an
// active block; the operator is expected to have fixed the underlying
// cause (usually an app update) before clearing.
func (c *Cli) RunDoctor(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "--clear-block" {
		if len(args) < 2 {
			return fmt.Errorf("usage: doctor --clear-block <resource>")
		}
		resource := args[1]
		if !models.KnownResource(resource) {
			return fmt.Errorf("unknown resource %q", resource)
		}
		if err := c.state.ClearBlock(ctx, c.userID, resource); err != nil {
			return fmt.Errorf("failed to clear block: %w", err)
		}
		fmt.Printf("Block cleared for %s. The next sync will retry.\n", resource)
		return nil
	}

	resources := models.Resources
	if len(args) > 0 {
		if !models.KnownResource(args[0]) {
			return fmt.Errorf("unknown resource %q", args[0])
		}
		resources = []string{args[0]}
	}

	fmt.Println("=== Sync Doctor ===")
	fmt.Println()

	for _, resource := range resources {
		fmt.Printf("%s:\n", resource)

		cursor, err := c.state.GetCursor(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("failed to read cursor: %w", err)
		}
		if cursor.IsZero() {
			fmt.Println("  Cursor:  none (initial sync pending)")
		} else {
			fmt.Printf("  Cursor:  %s / %s\n", cursor.LastSyncedAt.Format("2006-01-02 15:04:05.000"), cursor.LastID)
		}

		pending, err := c.syncService.PendingCount(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("failed to count pending changes: %w", err)
		}
		fmt.Printf("  Pending: %d\n", pending)

		block, err := c.state.GetBlock(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("failed to read block state: %w", err)
		}
		if block == nil {
			fmt.Println("  Block:   none")
		} else {
			fmt.Printf("  Block:   ACTIVE (%s), since %s, ttl %s\n",
				block.Reason,
				block.BlockedAt.Local().Format("2006-01-02 15:04:05"),
				block.TTL())
			fmt.Printf("           clear with: certprep doctor --clear-block %s\n", resource)
		}
		fmt.Println()
	}

	return nil
}
