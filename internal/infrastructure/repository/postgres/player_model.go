package postgres

import (
	"database/sql"
	"time"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

type playerIndexRow struct {
	PlayerAPIID   int64         `db:"player_api_id"`
	PlayerName    string        `db:"player_name"`
	OverallRating sql.NullInt64 `db:"overall_rating"`
	LastUpdated   sql.NullTime  `db:"last_updated"`
}

// attributeRow mirrors player_attributes. Rating columns are nullable
// in the schema because historic rows imported from the source dataset
// carry gaps; rows written by this service always fill every column.
type attributeRow struct {
	PlayerAPIID int64     `db:"player_api_id"`
	PlayerName  string    `db:"player_name"`
	Date        time.Time `db:"date"`

	OverallRating     sql.NullInt64  `db:"overall_rating"`
	Potential         sql.NullInt64  `db:"potential"`
	PreferredFoot     sql.NullString `db:"preferred_foot"`
	AttackingWorkRate sql.NullString `db:"attacking_work_rate"`
	DefensiveWorkRate sql.NullString `db:"defensive_work_rate"`
	Crossing          sql.NullInt64  `db:"crossing"`
	Finishing         sql.NullInt64  `db:"finishing"`
	HeadingAccuracy   sql.NullInt64  `db:"heading_accuracy"`
	ShortPassing      sql.NullInt64  `db:"short_passing"`
	Volleys           sql.NullInt64  `db:"volleys"`
	Dribbling         sql.NullInt64  `db:"dribbling"`
	Curve             sql.NullInt64  `db:"curve"`
	FreeKickAccuracy  sql.NullInt64  `db:"free_kick_accuracy"`
	LongPassing       sql.NullInt64  `db:"long_passing"`
	BallControl       sql.NullInt64  `db:"ball_control"`
	Acceleration      sql.NullInt64  `db:"acceleration"`
	SprintSpeed       sql.NullInt64  `db:"sprint_speed"`
	Agility           sql.NullInt64  `db:"agility"`
	Reactions         sql.NullInt64  `db:"reactions"`
	Balance           sql.NullInt64  `db:"balance"`
	ShotPower         sql.NullInt64  `db:"shot_power"`
	Jumping           sql.NullInt64  `db:"jumping"`
	Stamina           sql.NullInt64  `db:"stamina"`
	Strength          sql.NullInt64  `db:"strength"`
	LongShots         sql.NullInt64  `db:"long_shots"`
	Aggression        sql.NullInt64  `db:"aggression"`
	Interceptions     sql.NullInt64  `db:"interceptions"`
	Positioning       sql.NullInt64  `db:"positioning"`
	Vision            sql.NullInt64  `db:"vision"`
	Penalties         sql.NullInt64  `db:"penalties"`
	Marking           sql.NullInt64  `db:"marking"`
	StandingTackle    sql.NullInt64  `db:"standing_tackle"`
	SlidingTackle     sql.NullInt64  `db:"sliding_tackle"`
	GkDiving          sql.NullInt64  `db:"gk_diving"`
	GkHandling        sql.NullInt64  `db:"gk_handling"`
	GkKicking         sql.NullInt64  `db:"gk_kicking"`
	GkPositioning     sql.NullInt64  `db:"gk_positioning"`
	GkReflexes        sql.NullInt64  `db:"gk_reflexes"`
}

func (row attributeRow) toSnapshot() player.AttributeSnapshot {
	return player.AttributeSnapshot{
		PlayerAPIID: row.PlayerAPIID,
		PlayerName:  row.PlayerName,
		Date:        row.Date,

		OverallRating:     nullInt(row.OverallRating),
		Potential:         nullInt(row.Potential),
		PreferredFoot:     player.PreferredFoot(nullString(row.PreferredFoot)),
		AttackingWorkRate: nullString(row.AttackingWorkRate),
		DefensiveWorkRate: nullString(row.DefensiveWorkRate),

		Crossing:         nullInt(row.Crossing),
		Finishing:        nullInt(row.Finishing),
		HeadingAccuracy:  nullInt(row.HeadingAccuracy),
		ShortPassing:     nullInt(row.ShortPassing),
		Volleys:          nullInt(row.Volleys),
		Dribbling:        nullInt(row.Dribbling),
		Curve:            nullInt(row.Curve),
		FreeKickAccuracy: nullInt(row.FreeKickAccuracy),
		LongPassing:      nullInt(row.LongPassing),
		BallControl:      nullInt(row.BallControl),
		Acceleration:     nullInt(row.Acceleration),
		SprintSpeed:      nullInt(row.SprintSpeed),
		Agility:          nullInt(row.Agility),
		Reactions:        nullInt(row.Reactions),
		Balance:          nullInt(row.Balance),
		ShotPower:        nullInt(row.ShotPower),
		Jumping:          nullInt(row.Jumping),
		Stamina:          nullInt(row.Stamina),
		Strength:         nullInt(row.Strength),
		LongShots:        nullInt(row.LongShots),
		Aggression:       nullInt(row.Aggression),
		Interceptions:    nullInt(row.Interceptions),
		Positioning:      nullInt(row.Positioning),
		Vision:           nullInt(row.Vision),
		Penalties:        nullInt(row.Penalties),
		Marking:          nullInt(row.Marking),
		StandingTackle:   nullInt(row.StandingTackle),
		SlidingTackle:    nullInt(row.SlidingTackle),
		GkDiving:         nullInt(row.GkDiving),
		GkHandling:       nullInt(row.GkHandling),
		GkKicking:        nullInt(row.GkKicking),
		GkPositioning:    nullInt(row.GkPositioning),
		GkReflexes:       nullInt(row.GkReflexes),
	}
}

// insertArgs feeds the named insert; every column is written, so the
// plain Go types are enough here.
func insertArgs(snapshot player.AttributeSnapshot) map[string]any {
	return map[string]any{
		"player_api_id":       snapshot.PlayerAPIID,
		"date":                snapshot.Date,
		"overall_rating":      snapshot.OverallRating,
		"potential":           snapshot.Potential,
		"preferred_foot":      string(snapshot.PreferredFoot),
		"attacking_work_rate": snapshot.AttackingWorkRate,
		"defensive_work_rate": snapshot.DefensiveWorkRate,
		"crossing":            snapshot.Crossing,
		"finishing":           snapshot.Finishing,
		"heading_accuracy":    snapshot.HeadingAccuracy,
		"short_passing":       snapshot.ShortPassing,
		"volleys":             snapshot.Volleys,
		"dribbling":           snapshot.Dribbling,
		"curve":               snapshot.Curve,
		"free_kick_accuracy":  snapshot.FreeKickAccuracy,
		"long_passing":        snapshot.LongPassing,
		"ball_control":        snapshot.BallControl,
		"acceleration":        snapshot.Acceleration,
		"sprint_speed":        snapshot.SprintSpeed,
		"agility":             snapshot.Agility,
		"reactions":           snapshot.Reactions,
		"balance":             snapshot.Balance,
		"shot_power":          snapshot.ShotPower,
		"jumping":             snapshot.Jumping,
		"stamina":             snapshot.Stamina,
		"strength":            snapshot.Strength,
		"long_shots":          snapshot.LongShots,
		"aggression":          snapshot.Aggression,
		"interceptions":       snapshot.Interceptions,
		"positioning":         snapshot.Positioning,
		"vision":              snapshot.Vision,
		"penalties":           snapshot.Penalties,
		"marking":             snapshot.Marking,
		"standing_tackle":     snapshot.StandingTackle,
		"sliding_tackle":      snapshot.SlidingTackle,
		"gk_diving":           snapshot.GkDiving,
		"gk_handling":         snapshot.GkHandling,
		"gk_kicking":          snapshot.GkKicking,
		"gk_positioning":      snapshot.GkPositioning,
		"gk_reflexes":         snapshot.GkReflexes,
	}
}
