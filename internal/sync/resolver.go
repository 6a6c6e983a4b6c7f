package sync

import "github.com/TJZine/CertPrep.ai-sub000/internal/models"

// Winner identifies which side of a conflict pair survives.
type Winner string

const (
	WinnerLocal  Winner = "local"
	WinnerRemote Winner = "remote"
)

// Resolution is the resolver's decision for one entity id: which side
// wins and the exact record to persist.
type Resolution struct {
	Winner Winner
	Merged *models.Entity
}

// Resolve decides between a local entity (nullable) and a pulled remote
// record with the same id. Pure and synchronous; no I/O, no clock.
//
// Policy is last-writer-wins by version with two guards: a dirty local
// copy is never overwritten by an equal-or-older remote record (it is
// scheduled for push instead), and at equal versions a tombstoned side
// always beats a live one, so a delete cannot be undone by an
// equally-versioned concurrent update.
func Resolve(local, remote *models.Entity) Resolution {
	// No local copy: remote wins trivially.
	if local == nil {
		return Resolution{Winner: WinnerRemote, Merged: hydrate(remote)}
	}

	// Dirty local at or above the remote version keeps its changes.
	if local.Dirty() && local.Version >= remote.Version {
		return Resolution{Winner: WinnerLocal, Merged: local.Clone()}
	}

	if remote.Version > local.Version {
		return Resolution{Winner: WinnerRemote, Merged: hydrate(remote)}
	}

	if remote.Version == local.Version {
		if remote.Tombstoned() && !local.Tombstoned() {
			return Resolution{Winner: WinnerRemote, Merged: hydrate(remote)}
		}
		// Same version, no tombstone to propagate: both sides agree.
		// Mark the local copy clean.
		merged := local.Clone()
		version := local.Version
		merged.LastSyncedVersion = &version
		return Resolution{Winner: WinnerLocal, Merged: merged}
	}

	// Stale remote record (lower version than a clean local copy, e.g.
	// an old record arriving after a local tombstone): keep local.
	return Resolution{Winner: WinnerLocal, Merged: local.Clone()}
}

// hydrate turns a winning remote record into the local row to persist:
// version and last_synced_version both take the remote version, matching
// the hydrated-from-remote lifecycle state.
func hydrate(remote *models.Entity) *models.Entity {
	merged := remote.Clone()
	version := remote.Version
	merged.LastSyncedVersion = &version
	return merged
}
