package cli

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/internal/sync"
)

// RunSync runs one sync cycle, for one resource or for all of them.
func (c *Cli) RunSync(ctx context.Context, args []string) error {
	fmt.Println("=== Synchronization ===")
	fmt.Println()

	if len(args) > 0 {
		resource := args[0]
		outcome, err := c.syncService.Sync(ctx, c.userID, resource)
		if err != nil {
			return fmt.Errorf("synchronization failed: %w", err)
		}
		printOutcome(resource, outcome)
		return nil
	}

	outcomes, err := c.syncService.SyncAll(ctx, c.userID)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}
	for _, resource := range models.Resources {
		printOutcome(resource, outcomes[resource])
		fmt.Println()
	}
	return nil
}

func printOutcome(resource string, outcome *sync.Outcome) {
	if outcome == nil {
		return
	}

	if !outcome.Complete {
		fmt.Printf("%s: incomplete (%s)\n", resource, outcome.Reason)
		switch outcome.Reason {
		case sync.ReasonBlocked:
			fmt.Println("  Sync is blocked by the circuit breaker.")
			fmt.Println("  Run 'certprep doctor' for details.")
		case sync.ReasonSchemaDrift:
			fmt.Println("  The server returned a page of records this client cannot read.")
			fmt.Println("  An app update is likely required.")
		case sync.ReasonNetworkError:
			fmt.Println("  The server was unreachable. Local changes are kept and will")
			fmt.Println("  be pushed on the next successful sync.")
		case sync.ReasonGateUnavailable:
			fmt.Println("  Another sync for this resource is already running.")
		}
		return
	}

	fmt.Printf("%s: ✓ completed\n", resource)
	fmt.Printf("  Pulled from server: %d\n", outcome.Pulled)
	fmt.Printf("  Applied locally:    %d\n", outcome.Applied)
	fmt.Printf("  Pushed to server:   %d\n", outcome.Pushed)
	if outcome.Deleted > 0 {
		fmt.Printf("  Deleted locally:    %d\n", outcome.Deleted)
	}
	if outcome.Conflicts > 0 {
		fmt.Printf("  Conflicts (local kept): %d\n", outcome.Conflicts)
	}
	if outcome.Skipped > 0 {
		fmt.Printf("  Skipped (invalid):  %d\n", outcome.Skipped)
	}
}
