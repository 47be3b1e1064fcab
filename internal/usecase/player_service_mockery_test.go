package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
	playermock "github.com/ruimonteiro/playerdesk/internal/mocks/domain/player"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestPlayerService_ListPlayers_StorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("ListIndex", mock.Anything, 20).
		Return(nil, errors.New("connection refused")).
		Once()

	if _, err := service.ListPlayers(context.Background()); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}

func TestPlayerService_SaveAttributes_StorageErrorUsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("InsertAttributes", mock.Anything, mock.MatchedBy(func(s player.AttributeSnapshot) bool {
			return s.PlayerAPIID == 30981 && !s.Date.IsZero()
		})).
		Return(errors.New("foreign key violation")).
		Once()

	if _, err := service.SaveAttributes(context.Background(), 30981, validSnapshot()); err == nil {
		t.Fatalf("expected storage error to propagate")
	}
}

func TestPlayerService_LatestAttributes_UsingMockery(t *testing.T) {
	t.Parallel()

	repo := playermock.NewRepository(t)
	service := NewPlayerService(repo, logging.NewNop())

	repo.
		On("LatestAttributes", mock.Anything, int64(30893)).
		Return(player.AttributeSnapshot{PlayerAPIID: 30893, PlayerName: "Cristiano Ronaldo"}, true, nil).
		Once()

	snapshot, found, err := service.LatestAttributes(context.Background(), 30893)
	if err != nil {
		t.Fatalf("latest attributes: %v", err)
	}
	if !found {
		t.Fatalf("expected snapshot to be found")
	}
	if snapshot.PlayerName != "Cristiano Ronaldo" {
		t.Fatalf("unexpected player name: %q", snapshot.PlayerName)
	}
}
