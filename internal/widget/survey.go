package widget

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("rating out of range")

// Survey is the star-rating widget. Submitting is only possible once a rating
// has been chosen.
type Survey struct {
	rating    int // 0 means none selected
	submitted bool
	log       zerolog.Logger
}

func NewSurvey(log zerolog.Logger) *Survey {
	return &Survey{log: log}
}

// Select chooses a rating and hides any earlier confirmation.
func (s *Survey) Select(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating[%d] not in [%d,%d]: %w", rating, MinRating, MaxRating, ErrRatingOutOfRange)
	}

	s.rating = rating
	s.submitted = false
	s.log.Debug().Int("rating", rating).Msg("survey_rating_selected")
	return nil
}

func (s *Survey) Rating() (int, bool) {
	return s.rating, s.rating != 0
}

func (s *Survey) CanSubmit() bool {
	return s.rating != 0
}

func (s *Survey) Submit() bool {
	if !s.CanSubmit() {
		return false
	}
	s.submitted = true
	s.log.Debug().Int("rating", s.rating).Msg("survey_submitted")
	return true
}

func (s *Survey) Submitted() bool {
	return s.submitted
}

func (s *Survey) Reset() {
	s.rating = 0
	s.submitted = false
}

// Label is the "N estrellas" text for the current selection, empty if none.
func (s *Survey) Label() string {
	if s.rating == 0 {
		return ""
	}
	return starsLabel(s.rating)
}

// Confirmation is shown after a successful submit, empty otherwise.
func (s *Survey) Confirmation() string {
	if !s.submitted {
		return ""
	}
	return "¡Gracias por tu evaluación! Has calificado con " + starsLabel(s.rating) + "."
}

func starsLabel(n int) string {
	if n == 1 {
		return "1 estrella"
	}
	return strconv.Itoa(n) + " estrellas"
}
