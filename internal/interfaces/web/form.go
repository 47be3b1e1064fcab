package web

import (
	"errors"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ruimonteiro/playerdesk/internal/domain/player"
)

// attributeForm carries the raw submitted strings for one snapshot.
// Decoding and validation are pure: nothing reaches a service until
// every field has passed.
//
// The work-rate fields deliberately accept any non-empty string; the
// upstream data mixes values like "high"/"medium"/"low" with free
// text, so only presence is enforced.
type attributeForm struct {
	OverallRating     string `form:"overall_rating" validate:"required,intstring"`
	Potential         string `form:"potential" validate:"required,intstring"`
	PreferredFoot     string `form:"preferred_foot" validate:"required,oneof=left right none"`
	AttackingWorkRate string `form:"attacking_work_rate" validate:"required"`
	DefensiveWorkRate string `form:"defensive_work_rate" validate:"required"`
	Crossing          string `form:"crossing" validate:"required,intstring"`
	Finishing         string `form:"finishing" validate:"required,intstring"`
	HeadingAccuracy   string `form:"heading_accuracy" validate:"required,intstring"`
	ShortPassing      string `form:"short_passing" validate:"required,intstring"`
	Volleys           string `form:"volleys" validate:"required,intstring"`
	Dribbling         string `form:"dribbling" validate:"required,intstring"`
	Curve             string `form:"curve" validate:"required,intstring"`
	FreeKickAccuracy  string `form:"free_kick_accuracy" validate:"required,intstring"`
	LongPassing       string `form:"long_passing" validate:"required,intstring"`
	BallControl       string `form:"ball_control" validate:"required,intstring"`
	Acceleration      string `form:"acceleration" validate:"required,intstring"`
	SprintSpeed       string `form:"sprint_speed" validate:"required,intstring"`
	Agility           string `form:"agility" validate:"required,intstring"`
	Reactions         string `form:"reactions" validate:"required,intstring"`
	Balance           string `form:"balance" validate:"required,intstring"`
	ShotPower         string `form:"shot_power" validate:"required,intstring"`
	Jumping           string `form:"jumping" validate:"required,intstring"`
	Stamina           string `form:"stamina" validate:"required,intstring"`
	Strength          string `form:"strength" validate:"required,intstring"`
	LongShots         string `form:"long_shots" validate:"required,intstring"`
	Aggression        string `form:"aggression" validate:"required,intstring"`
	Interceptions     string `form:"interceptions" validate:"required,intstring"`
	Positioning       string `form:"positioning" validate:"required,intstring"`
	Vision            string `form:"vision" validate:"required,intstring"`
	Penalties         string `form:"penalties" validate:"required,intstring"`
	Marking           string `form:"marking" validate:"required,intstring"`
	StandingTackle    string `form:"standing_tackle" validate:"required,intstring"`
	SlidingTackle     string `form:"sliding_tackle" validate:"required,intstring"`
	GkDiving          string `form:"gk_diving" validate:"required,intstring"`
	GkHandling        string `form:"gk_handling" validate:"required,intstring"`
	GkKicking         string `form:"gk_kicking" validate:"required,intstring"`
	GkPositioning     string `form:"gk_positioning" validate:"required,intstring"`
	GkReflexes        string `form:"gk_reflexes" validate:"required,intstring"`
}

// newFormValidator reports violations under the submitted field name
// (the form tag), not the Go field name.
func newFormValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("intstring", func(fl validator.FieldLevel) bool {
		_, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil
	})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("form")
		if name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

func decodeAttributeForm(values url.Values) attributeForm {
	var form attributeForm

	v := reflect.ValueOf(&form).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("form")
		if name == "" {
			continue
		}
		v.Field(i).SetString(strings.TrimSpace(values.Get(name)))
	}

	return form
}

// validateAttributeForm turns the first violation into a
// ValidationError naming the offending field and rule.
func (h *Handler) validateAttributeForm(form attributeForm) error {
	err := h.validator.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return player.ValidationError{
			Field: fieldErrs[0].Field(),
			Rule:  ruleMessage(fieldErrs[0].Tag()),
		}
	}

	return err
}

func ruleMessage(tag string) string {
	switch tag {
	case "required":
		return "is required"
	case "intstring":
		return "must be an integer"
	case "oneof":
		return "must be one of {left,right,none}"
	default:
		return "is invalid"
	}
}

// snapshot converts the validated form to the typed domain value. The
// timestamp is stamped by the service, not taken from the client.
func (f attributeForm) snapshot() player.AttributeSnapshot {
	return player.AttributeSnapshot{
		OverallRating:     atoi(f.OverallRating),
		Potential:         atoi(f.Potential),
		PreferredFoot:     player.PreferredFoot(f.PreferredFoot),
		AttackingWorkRate: f.AttackingWorkRate,
		DefensiveWorkRate: f.DefensiveWorkRate,
		Crossing:          atoi(f.Crossing),
		Finishing:         atoi(f.Finishing),
		HeadingAccuracy:   atoi(f.HeadingAccuracy),
		ShortPassing:      atoi(f.ShortPassing),
		Volleys:           atoi(f.Volleys),
		Dribbling:         atoi(f.Dribbling),
		Curve:             atoi(f.Curve),
		FreeKickAccuracy:  atoi(f.FreeKickAccuracy),
		LongPassing:       atoi(f.LongPassing),
		BallControl:       atoi(f.BallControl),
		Acceleration:      atoi(f.Acceleration),
		SprintSpeed:       atoi(f.SprintSpeed),
		Agility:           atoi(f.Agility),
		Reactions:         atoi(f.Reactions),
		Balance:           atoi(f.Balance),
		ShotPower:         atoi(f.ShotPower),
		Jumping:           atoi(f.Jumping),
		Stamina:           atoi(f.Stamina),
		Strength:          atoi(f.Strength),
		LongShots:         atoi(f.LongShots),
		Aggression:        atoi(f.Aggression),
		Interceptions:     atoi(f.Interceptions),
		Positioning:       atoi(f.Positioning),
		Vision:            atoi(f.Vision),
		Penalties:         atoi(f.Penalties),
		Marking:           atoi(f.Marking),
		StandingTackle:    atoi(f.StandingTackle),
		SlidingTackle:     atoi(f.SlidingTackle),
		GkDiving:          atoi(f.GkDiving),
		GkHandling:        atoi(f.GkHandling),
		GkKicking:         atoi(f.GkKicking),
		GkPositioning:     atoi(f.GkPositioning),
		GkReflexes:        atoi(f.GkReflexes),
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}
