package player

import (
	"context"
	"fmt"
	"time"
)

// PreferredFoot is the enumerated dominant-foot attribute.
type PreferredFoot string

const (
	FootLeft  PreferredFoot = "left"
	FootRight PreferredFoot = "right"
	FootNone  PreferredFoot = "none"
)

func (f PreferredFoot) Valid() bool {
	switch f {
	case FootLeft, FootRight, FootNone:
		return true
	default:
		return false
	}
}

// Player is owned externally; this service never creates or mutates one.
type Player struct {
	PlayerAPIID int64
	Name        string
}

// IndexEntry is one row of the players_index_view projection, most
// recent first. The view owns the ordering.
type IndexEntry struct {
	PlayerAPIID   int64
	Name          string
	OverallRating int
	LastUpdated   time.Time
}

// AttributeSnapshot is one timestamped row of a player's ratings.
// Snapshots are append-only: a save always produces a new row and
// never touches an existing one.
type AttributeSnapshot struct {
	PlayerAPIID int64
	PlayerName  string
	Date        time.Time

	OverallRating     int
	Potential         int
	PreferredFoot     PreferredFoot
	AttackingWorkRate string
	DefensiveWorkRate string

	Crossing         int
	Finishing        int
	HeadingAccuracy  int
	ShortPassing     int
	Volleys          int
	Dribbling        int
	Curve            int
	FreeKickAccuracy int
	LongPassing      int
	BallControl      int
	Acceleration     int
	SprintSpeed      int
	Agility          int
	Reactions        int
	Balance          int
	ShotPower        int
	Jumping          int
	Stamina          int
	Strength         int
	LongShots        int
	Aggression       int
	Interceptions    int
	Positioning      int
	Vision           int
	Penalties        int
	Marking          int
	StandingTackle   int
	SlidingTackle    int
	GkDiving         int
	GkHandling       int
	GkKicking        int
	GkPositioning    int
	GkReflexes       int
}

// ValidationError names the form field that failed and the rule it
// violated. The web layer maps it to a client error response.
type ValidationError struct {
	Field string
	Rule  string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Rule)
}

type Repository interface {
	// ListIndex returns at most limit rows from the index projection.
	ListIndex(ctx context.Context, limit int) ([]IndexEntry, error)
	// LatestAttributes returns the most recent snapshot for the player
	// joined with the player's display name. The bool is false when no
	// snapshot exists yet; that is not an error.
	LatestAttributes(ctx context.Context, playerAPIID int64) (AttributeSnapshot, bool, error)
	// InsertAttributes appends one snapshot row. Referential existence
	// of the player is enforced by the storage schema, not here.
	InsertAttributes(ctx context.Context, snapshot AttributeSnapshot) error
}
