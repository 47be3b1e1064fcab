package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

type PlayerRepository struct {
	db             *sqlx.DB
	acquireTimeout time.Duration
}

func NewPlayerRepository(db *sqlx.DB, acquireTimeout time.Duration) *PlayerRepository {
	return &PlayerRepository{
		db:             db,
		acquireTimeout: acquireTimeout,
	}
}

func (r *PlayerRepository) ListIndex(ctx context.Context, limit int) ([]player.IndexEntry, error) {
	ctx, cancel := withAcquireTimeout(ctx, r.acquireTimeout)
	defer cancel()

	// The view orders most recent first; this query adds no ordering of
	// its own.
	const query = `
SELECT player_api_id, player_name, overall_rating, last_updated
FROM players_index_view
LIMIT $1`

	var rows []playerIndexRow
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("select player index: %w", err)
	}

	out := make([]player.IndexEntry, 0, len(rows))
	for _, row := range rows {
		entry := player.IndexEntry{
			PlayerAPIID:   row.PlayerAPIID,
			Name:          row.PlayerName,
			OverallRating: nullInt(row.OverallRating),
		}
		if row.LastUpdated.Valid {
			entry.LastUpdated = row.LastUpdated.Time
		}
		out = append(out, entry)
	}

	return out, nil
}

func (r *PlayerRepository) LatestAttributes(ctx context.Context, playerAPIID int64) (player.AttributeSnapshot, bool, error) {
	ctx, cancel := withAcquireTimeout(ctx, r.acquireTimeout)
	defer cancel()

	const query = `
SELECT pa.player_api_id, p.player_name, pa.date,
       pa.overall_rating, pa.potential, pa.preferred_foot,
       pa.attacking_work_rate, pa.defensive_work_rate,
       pa.crossing, pa.finishing, pa.heading_accuracy, pa.short_passing,
       pa.volleys, pa.dribbling, pa.curve, pa.free_kick_accuracy,
       pa.long_passing, pa.ball_control, pa.acceleration, pa.sprint_speed,
       pa.agility, pa.reactions, pa.balance, pa.shot_power, pa.jumping,
       pa.stamina, pa.strength, pa.long_shots, pa.aggression,
       pa.interceptions, pa.positioning, pa.vision, pa.penalties,
       pa.marking, pa.standing_tackle, pa.sliding_tackle,
       pa.gk_diving, pa.gk_handling, pa.gk_kicking, pa.gk_positioning,
       pa.gk_reflexes
FROM player_attributes pa
JOIN player p ON p.player_api_id = pa.player_api_id
WHERE pa.player_api_id = $1
ORDER BY pa.date DESC
LIMIT 1`

	var row attributeRow
	if err := r.db.GetContext(ctx, &row, query, playerAPIID); err != nil {
		if isNotFound(err) {
			return player.AttributeSnapshot{}, false, nil
		}
		return player.AttributeSnapshot{}, false, fmt.Errorf("get latest attributes: %w", err)
	}

	return row.toSnapshot(), true, nil
}

func (r *PlayerRepository) InsertAttributes(ctx context.Context, snapshot player.AttributeSnapshot) error {
	ctx, cancel := withAcquireTimeout(ctx, r.acquireTimeout)
	defer cancel()

	const query = `
INSERT INTO player_attributes (
    player_api_id, date, overall_rating, potential, preferred_foot,
    attacking_work_rate, defensive_work_rate, crossing, finishing,
    heading_accuracy, short_passing, volleys, dribbling, curve,
    free_kick_accuracy, long_passing, ball_control, acceleration,
    sprint_speed, agility, reactions, balance, shot_power, jumping,
    stamina, strength, long_shots, aggression, interceptions,
    positioning, vision, penalties, marking, standing_tackle,
    sliding_tackle, gk_diving, gk_handling, gk_kicking,
    gk_positioning, gk_reflexes
) VALUES (
    :player_api_id, :date, :overall_rating, :potential, :preferred_foot,
    :attacking_work_rate, :defensive_work_rate, :crossing, :finishing,
    :heading_accuracy, :short_passing, :volleys, :dribbling, :curve,
    :free_kick_accuracy, :long_passing, :ball_control, :acceleration,
    :sprint_speed, :agility, :reactions, :balance, :shot_power, :jumping,
    :stamina, :strength, :long_shots, :aggression, :interceptions,
    :positioning, :vision, :penalties, :marking, :standing_tackle,
    :sliding_tackle, :gk_diving, :gk_handling, :gk_kicking,
    :gk_positioning, :gk_reflexes
)`

	if _, err := r.db.NamedExecContext(ctx, query, insertArgs(snapshot)); err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("player %d is not registered: %w", snapshot.PlayerAPIID, err)
		}
		return fmt.Errorf("insert attribute snapshot: %w", err)
	}

	return nil
}
