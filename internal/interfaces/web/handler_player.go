package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

type playersIndexData struct {
	Title   string
	Players []player.IndexEntry
}

type playerUpdateData struct {
	Title    string
	Snapshot player.AttributeSnapshot
	Ratings  []ratingField
	Feet     []player.PreferredFoot
}

type ratingField struct {
	Name  string
	Label string
	Value int
}

func ratingFields(s player.AttributeSnapshot) []ratingField {
	fields := []ratingField{
		{Name: "overall_rating", Value: s.OverallRating},
		{Name: "potential", Value: s.Potential},
		{Name: "crossing", Value: s.Crossing},
		{Name: "finishing", Value: s.Finishing},
		{Name: "heading_accuracy", Value: s.HeadingAccuracy},
		{Name: "short_passing", Value: s.ShortPassing},
		{Name: "volleys", Value: s.Volleys},
		{Name: "dribbling", Value: s.Dribbling},
		{Name: "curve", Value: s.Curve},
		{Name: "free_kick_accuracy", Value: s.FreeKickAccuracy},
		{Name: "long_passing", Value: s.LongPassing},
		{Name: "ball_control", Value: s.BallControl},
		{Name: "acceleration", Value: s.Acceleration},
		{Name: "sprint_speed", Value: s.SprintSpeed},
		{Name: "agility", Value: s.Agility},
		{Name: "reactions", Value: s.Reactions},
		{Name: "balance", Value: s.Balance},
		{Name: "shot_power", Value: s.ShotPower},
		{Name: "jumping", Value: s.Jumping},
		{Name: "stamina", Value: s.Stamina},
		{Name: "strength", Value: s.Strength},
		{Name: "long_shots", Value: s.LongShots},
		{Name: "aggression", Value: s.Aggression},
		{Name: "interceptions", Value: s.Interceptions},
		{Name: "positioning", Value: s.Positioning},
		{Name: "vision", Value: s.Vision},
		{Name: "penalties", Value: s.Penalties},
		{Name: "marking", Value: s.Marking},
		{Name: "standing_tackle", Value: s.StandingTackle},
		{Name: "sliding_tackle", Value: s.SlidingTackle},
		{Name: "gk_diving", Value: s.GkDiving},
		{Name: "gk_handling", Value: s.GkHandling},
		{Name: "gk_kicking", Value: s.GkKicking},
		{Name: "gk_positioning", Value: s.GkPositioning},
		{Name: "gk_reflexes", Value: s.GkReflexes},
	}
	for i := range fields {
		fields[i].Label = strings.ReplaceAll(fields[i].Name, "_", " ")
	}
	return fields
}

// PlayerIndex shows up to 20 players from the index projection.
func (h *Handler) PlayerIndex(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerIndex")
	defer span.End()

	players, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		h.renderError(ctx, w, err)
		return
	}

	h.renderPage(ctx, w, http.StatusOK, "players_index", playersIndexData{
		Title:   "Players",
		Players: players,
	})
}

// PlayerUpdateView shows the edit form for the latest snapshot, with
// the player id taken from the path.
func (h *Handler) PlayerUpdateView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerUpdateView")
	defer span.End()

	playerAPIID, err := parsePlayerAPIID(r.PathValue("playerAPIID"))
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	h.renderUpdatePage(ctx, w, playerAPIID)
}

// PlayerUpdateLookup is the form-post variant of the edit view: the
// player id arrives in the request body instead of the path. Both
// variants dispatch to the same rendering path.
func (h *Handler) PlayerUpdateLookup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerUpdateLookup")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		h.renderError(ctx, w, player.ValidationError{Field: "player_api_id", Rule: "is required"})
		return
	}

	playerAPIID, err := parsePlayerAPIID(r.PostFormValue("player_api_id"))
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	h.renderUpdatePage(ctx, w, playerAPIID)
}

func (h *Handler) renderUpdatePage(ctx context.Context, w http.ResponseWriter, playerAPIID int64) {
	snapshot, found, err := h.playerService.LatestAttributes(ctx, playerAPIID)
	if err != nil {
		h.logger.ErrorContext(ctx, "latest attributes failed", "player_api_id", playerAPIID, "error", err)
		h.renderError(ctx, w, err)
		return
	}
	if !found {
		h.renderPage(ctx, w, http.StatusNotFound, "error", errorPageData{
			Title:   "Not Found",
			Status:  http.StatusNotFound,
			Message: "no attribute snapshot recorded for player " + strconv.FormatInt(playerAPIID, 10),
		})
		return
	}

	h.renderPage(ctx, w, http.StatusOK, "players_update", playerUpdateData{
		Title:    "Update " + snapshot.PlayerName,
		Snapshot: snapshot,
		Ratings:  ratingFields(snapshot),
		Feet:     []player.PreferredFoot{player.FootLeft, player.FootRight, player.FootNone},
	})
}

// PlayerUpdateSave validates the submitted attribute form and appends
// one new snapshot row, then sends the client back to the listing.
func (h *Handler) PlayerUpdateSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.PlayerUpdateSave")
	defer span.End()

	playerAPIID, err := parsePlayerAPIID(r.PathValue("playerAPIID"))
	if err != nil {
		h.renderError(ctx, w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(ctx, w, player.ValidationError{Field: "form", Rule: "is required"})
		return
	}

	form := decodeAttributeForm(r.PostForm)
	if err := h.validateAttributeForm(form); err != nil {
		h.logger.DebugContext(ctx, "attribute form rejected", "player_api_id", playerAPIID, "error", err)
		h.renderError(ctx, w, err)
		return
	}

	if _, err := h.playerService.SaveAttributes(ctx, playerAPIID, form.snapshot()); err != nil {
		h.logger.ErrorContext(ctx, "save attributes failed", "player_api_id", playerAPIID, "error", err)
		h.renderError(ctx, w, err)
		return
	}

	http.Redirect(w, r, "/players", http.StatusSeeOther)
}

func parsePlayerAPIID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, player.ValidationError{Field: "player_api_id", Rule: "must be an integer"}
	}
	return id, nil
}
