// Package cli implements the command surface of the sync client.
package cli

import (
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/data"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/sync"
)

// Cli wires the command handlers to the client services
type Cli struct {
	userID      string
	dataService data.Service
	syncService sync.Service
	state       storage.SyncStateStorage
}

// New creates the CLI front-end
func New(userID string, dataService data.Service, syncService sync.Service, state storage.SyncStateStorage) *Cli {
	return &Cli{
		userID:      userID,
		dataService: dataService,
		syncService: syncService,
		state:       state,
	}
}

// PrintUsage prints command help
func PrintUsage() {
	fmt.Println("CertPrep Sync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  certprep [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: certprep-client.db)")
	fmt.Println("  --user ID        User id (default: CERTPREP_USER_ID environment variable)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync [resource]            Synchronize local data with the server")
	fmt.Println("                             (all resources when none is given)")
	fmt.Println("  status                     Show sync status and pending changes per resource")
	fmt.Println("  doctor [resource]          Show cursor, pending and circuit-breaker state")
	fmt.Println("  doctor --clear-block <res> Clear a circuit-breaker block after fixing the cause")
	fmt.Println("  add-quiz <title>           Create a quiz with the given title")
	fmt.Println("  list <resource>            List local records (quizzes, results, learning_states)")
	fmt.Println("  delete <resource> <id>     Soft-delete a record (quizzes or results)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  certprep sync")
	fmt.Println("  certprep sync quizzes")
	fmt.Println("  certprep doctor --clear-block quizzes")
	fmt.Println("  certprep list results")
}
