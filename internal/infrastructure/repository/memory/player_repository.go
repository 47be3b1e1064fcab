package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

type PlayerRepository struct {
	mu        sync.RWMutex
	players   map[int64]player.Player
	snapshots map[int64][]player.AttributeSnapshot
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.PlayerAPIID] = p
	}

	return &PlayerRepository{
		players:   byID,
		snapshots: make(map[int64][]player.AttributeSnapshot),
	}
}

func (r *PlayerRepository) ListIndex(_ context.Context, limit int) ([]player.IndexEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]player.IndexEntry, 0, len(r.players))
	for id, p := range r.players {
		entry := player.IndexEntry{PlayerAPIID: id, Name: p.Name}
		if latest, ok := r.latestLocked(id); ok {
			entry.OverallRating = latest.OverallRating
			entry.LastUpdated = latest.Date
		}
		entries = append(entries, entry)
	}

	// Most recent first, matching the projection the real view serves.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].LastUpdated.Equal(entries[j].LastUpdated) {
			return entries[i].LastUpdated.After(entries[j].LastUpdated)
		}
		return entries[i].PlayerAPIID < entries[j].PlayerAPIID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries, nil
}

func (r *PlayerRepository) LatestAttributes(_ context.Context, playerAPIID int64) (player.AttributeSnapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	latest, ok := r.latestLocked(playerAPIID)
	if !ok {
		return player.AttributeSnapshot{}, false, nil
	}
	if p, known := r.players[playerAPIID]; known {
		latest.PlayerName = p.Name
	}

	return latest, true, nil
}

func (r *PlayerRepository) InsertAttributes(_ context.Context, snapshot player.AttributeSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.PlayerAPIID] = append(r.snapshots[snapshot.PlayerAPIID], snapshot)

	return nil
}

// SnapshotCount reports how many snapshot rows exist for a player.
// Test helper; the HTTP surface has no such operation.
func (r *PlayerRepository) SnapshotCount(playerAPIID int64) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.snapshots[playerAPIID])
}

func (r *PlayerRepository) latestLocked(playerAPIID int64) (player.AttributeSnapshot, bool) {
	history := r.snapshots[playerAPIID]
	if len(history) == 0 {
		return player.AttributeSnapshot{}, false
	}

	latest := history[0]
	for _, snapshot := range history[1:] {
		if snapshot.Date.After(latest.Date) {
			latest = snapshot
		}
	}

	return latest, true
}
