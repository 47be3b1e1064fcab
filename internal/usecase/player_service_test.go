package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
	"github.com/ruimonteiro/playerdesk/internal/infrastructure/repository/memory"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
)

func validSnapshot() player.AttributeSnapshot {
	return player.AttributeSnapshot{
		OverallRating:     94,
		Potential:         95,
		PreferredFoot:     player.FootLeft,
		AttackingWorkRate: "medium",
		DefensiveWorkRate: "low",
		Dribbling:         97,
		ShortPassing:      92,
	}
}

func TestPlayerService_SaveAttributes_StampsServerTime(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(repo, logging.NewNop())

	fixed := time.Date(2026, 8, 29, 10, 30, 45, 987654321, time.UTC)
	service.now = func() time.Time { return fixed }

	saved, err := service.SaveAttributes(context.Background(), memory.PlayerAPIIDMessi, validSnapshot())
	if err != nil {
		t.Fatalf("save attributes: %v", err)
	}
	if !saved.Date.Equal(fixed.Truncate(time.Second)) {
		t.Fatalf("expected date %s, got %s", fixed.Truncate(time.Second), saved.Date)
	}
	if saved.PlayerAPIID != memory.PlayerAPIIDMessi {
		t.Fatalf("unexpected player api id: %d", saved.PlayerAPIID)
	}
}

func TestPlayerService_SaveAttributes_AppendsOneRow(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(repo, logging.NewNop())

	if _, err := service.SaveAttributes(context.Background(), memory.PlayerAPIIDMessi, validSnapshot()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, err := service.SaveAttributes(context.Background(), memory.PlayerAPIIDMessi, validSnapshot()); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if got := repo.SnapshotCount(memory.PlayerAPIIDMessi); got != 2 {
		t.Fatalf("expected 2 snapshot rows, got %d", got)
	}
}

func TestPlayerService_SaveAttributes_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	badFoot := validSnapshot()
	badFoot.PreferredFoot = "ambidextrous"

	noAttacking := validSnapshot()
	noAttacking.AttackingWorkRate = "  "

	noDefensive := validSnapshot()
	noDefensive.DefensiveWorkRate = ""

	cases := []struct {
		name        string
		playerAPIID int64
		snapshot    player.AttributeSnapshot
	}{
		{name: "zero player id", playerAPIID: 0, snapshot: validSnapshot()},
		{name: "negative player id", playerAPIID: -7, snapshot: validSnapshot()},
		{name: "invalid preferred foot", playerAPIID: memory.PlayerAPIIDMessi, snapshot: badFoot},
		{name: "blank attacking work rate", playerAPIID: memory.PlayerAPIIDMessi, snapshot: noAttacking},
		{name: "blank defensive work rate", playerAPIID: memory.PlayerAPIIDMessi, snapshot: noDefensive},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := memory.NewPlayerRepository(memory.SeedPlayers())
			service := NewPlayerService(repo, logging.NewNop())

			_, err := service.SaveAttributes(context.Background(), tc.playerAPIID, tc.snapshot)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if got := repo.SnapshotCount(memory.PlayerAPIIDMessi); got != 0 {
				t.Fatalf("storage should not be reached, got %d rows", got)
			}
		})
	}
}

func TestPlayerService_LatestAttributes_ReturnsMostRecent(t *testing.T) {
	t.Parallel()

	repo := memory.NewPlayerRepository(memory.SeedPlayers())
	service := NewPlayerService(repo, logging.NewNop())

	current := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return current }

	first := validSnapshot()
	first.OverallRating = 90
	if _, err := service.SaveAttributes(context.Background(), memory.PlayerAPIIDMessi, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	current = current.Add(time.Hour)
	second := validSnapshot()
	second.OverallRating = 94
	if _, err := service.SaveAttributes(context.Background(), memory.PlayerAPIIDMessi, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	latest, found, err := service.LatestAttributes(context.Background(), memory.PlayerAPIIDMessi)
	if err != nil {
		t.Fatalf("latest attributes: %v", err)
	}
	if !found {
		t.Fatalf("expected a snapshot to exist")
	}
	if latest.OverallRating != 94 {
		t.Fatalf("expected the newer rating 94, got %d", latest.OverallRating)
	}
	if latest.PlayerName != "Lionel Messi" {
		t.Fatalf("unexpected player name: %q", latest.PlayerName)
	}
}

func TestPlayerService_LatestAttributes_AbsentIsNotAnError(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(memory.SeedPlayers()), logging.NewNop())

	_, found, err := service.LatestAttributes(context.Background(), memory.PlayerAPIIDIniesta)
	if err != nil {
		t.Fatalf("latest attributes: %v", err)
	}
	if found {
		t.Fatalf("expected no snapshot for an unedited player")
	}
}

func TestPlayerService_LatestAttributes_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	service := NewPlayerService(memory.NewPlayerRepository(nil), logging.NewNop())

	if _, _, err := service.LatestAttributes(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_ListPlayers_CapsAtTwenty(t *testing.T) {
	t.Parallel()

	players := make([]player.Player, 0, 25)
	for i := 0; i < 25; i++ {
		players = append(players, player.Player{
			PlayerAPIID: int64(1000 + i),
			Name:        fmt.Sprintf("Player %d", i),
		})
	}

	service := NewPlayerService(memory.NewPlayerRepository(players), logging.NewNop())

	entries, err := service.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected 20 entries, got %d", len(entries))
	}
}
