package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
)

// playerIndexLimit caps the listing page. There is no pagination
// cursor; rows past the cap are simply not reachable.
const playerIndexLimit = 20

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		playerRepo: playerRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.IndexEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	entries, err := s.playerRepo.ListIndex(ctx, playerIndexLimit)
	if err != nil {
		return nil, fmt.Errorf("list player index: %w", err)
	}
	if len(entries) > playerIndexLimit {
		entries = entries[:playerIndexLimit]
	}

	s.logger.DebugContext(ctx, "listed players", "rows", len(entries))

	return entries, nil
}

func (s *PlayerService) LatestAttributes(ctx context.Context, playerAPIID int64) (player.AttributeSnapshot, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.LatestAttributes")
	defer span.End()

	if playerAPIID <= 0 {
		return player.AttributeSnapshot{}, false, fmt.Errorf("%w: player api id must be positive", ErrInvalidInput)
	}

	snapshot, found, err := s.playerRepo.LatestAttributes(ctx, playerAPIID)
	if err != nil {
		return player.AttributeSnapshot{}, false, fmt.Errorf("latest attributes for player %d: %w", playerAPIID, err)
	}

	return snapshot, found, nil
}

// SaveAttributes appends one snapshot row stamped with the current
// server time at second precision. Existence of the player is left to
// the storage foreign key; a violation surfaces as a storage error.
func (s *PlayerService) SaveAttributes(ctx context.Context, playerAPIID int64, snapshot player.AttributeSnapshot) (player.AttributeSnapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SaveAttributes")
	defer span.End()

	if playerAPIID <= 0 {
		return player.AttributeSnapshot{}, fmt.Errorf("%w: player api id must be positive", ErrInvalidInput)
	}
	if !snapshot.PreferredFoot.Valid() {
		return player.AttributeSnapshot{}, fmt.Errorf("%w: %s", ErrInvalidInput, player.ValidationError{
			Field: "preferred_foot",
			Rule:  "must be one of {left,right,none}",
		})
	}
	if strings.TrimSpace(snapshot.AttackingWorkRate) == "" {
		return player.AttributeSnapshot{}, fmt.Errorf("%w: %s", ErrInvalidInput, player.ValidationError{
			Field: "attacking_work_rate",
			Rule:  "is required",
		})
	}
	if strings.TrimSpace(snapshot.DefensiveWorkRate) == "" {
		return player.AttributeSnapshot{}, fmt.Errorf("%w: %s", ErrInvalidInput, player.ValidationError{
			Field: "defensive_work_rate",
			Rule:  "is required",
		})
	}

	snapshot.PlayerAPIID = playerAPIID
	snapshot.Date = s.now().Truncate(time.Second)

	if err := s.playerRepo.InsertAttributes(ctx, snapshot); err != nil {
		return player.AttributeSnapshot{}, fmt.Errorf("insert attribute snapshot for player %d: %w", playerAPIID, err)
	}

	s.logger.InfoContext(ctx, "attribute snapshot saved",
		"player_api_id", playerAPIID,
		"date", snapshot.Date,
	)

	return snapshot, nil
}
