package flashcard

import (
	"errors"
	"math/rand/v2"
	"time"
)

var (
	// ErrNothingToStudy is returned by Load when there are no cards.
	ErrNothingToStudy = errors.New("no vocabulary to study")
	// ErrSessionEmpty is returned by operations that need loaded cards.
	ErrSessionEmpty = errors.New("session has no cards loaded")
)

// State is the lifecycle position of a Session.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StateInProgress
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateLoaded:
		return "loaded"
	case StateInProgress:
		return "in_progress"
	default:
		return "unknown"
	}
}

// Card is one flashcard: the prompt word and the expected meaning.
type Card struct {
	ID      string
	Word    string
	Meaning string
}

// Session walks a shuffled snapshot of cards one at a time.
//
//	Empty --Load--> Loaded --Check/Advance--> InProgress
//	Loaded|InProgress --Advance on last card--> Empty
//	any --Reset--> Empty
//
// The session does not loop: finishing the last card ends it.
// A Session is not safe for concurrent use.
type Session struct {
	rnd           *rand.Rand
	cards         []Card
	cursor        int
	showingResult bool
	state         State
}

// NewSession creates an empty session. A nil rnd uses a time-seeded source.
func NewSession(rnd *rand.Rand) *Session {
	if rnd == nil {
		now := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(now, now>>32|1))
	}
	return &Session{rnd: rnd}
}

// Load replaces the session contents with a shuffled copy of cards.
// The caller's slice is never modified.
func (s *Session) Load(cards []Card) error {
	if len(cards) == 0 {
		s.Reset()
		return ErrNothingToStudy
	}

	s.cards = make([]Card, len(cards))
	copy(s.cards, cards)
	s.permute()
	s.cursor = 0
	s.showingResult = false
	s.state = StateLoaded
	return nil
}

// Shuffle re-permutes the loaded cards and restarts from the first one.
func (s *Session) Shuffle() error {
	if s.state == StateEmpty {
		return ErrSessionEmpty
	}
	s.permute()
	s.cursor = 0
	s.showingResult = false
	s.state = StateLoaded
	return nil
}

// Current returns the card under the cursor.
func (s *Session) Current() (Card, bool) {
	if s.state == StateEmpty {
		return Card{}, false
	}
	return s.cards[s.cursor], true
}

// Check grades answer against the current card and reveals the result.
func (s *Session) Check(answer string) (bool, error) {
	card, ok := s.Current()
	if !ok {
		return false, ErrSessionEmpty
	}
	s.showingResult = true
	s.state = StateInProgress
	return IsMatch(answer, card.Meaning), nil
}

// Advance moves to the next card. On the last card the session completes,
// returns completed=true and goes back to Empty.
func (s *Session) Advance() (completed bool, err error) {
	if s.state == StateEmpty {
		return false, ErrSessionEmpty
	}

	s.showingResult = false
	if s.cursor >= len(s.cards)-1 {
		s.Reset()
		return true, nil
	}

	s.cursor++
	s.state = StateInProgress
	return false, nil
}

// Reset drops all cards.
func (s *Session) Reset() {
	s.cards = nil
	s.cursor = 0
	s.showingResult = false
	s.state = StateEmpty
}

func (s *Session) Len() int            { return len(s.cards) }
func (s *Session) Position() int       { return s.cursor }
func (s *Session) State() State        { return s.state }
func (s *Session) ShowingResult() bool { return s.showingResult }

// Cards returns the current order of the loaded cards.
func (s *Session) Cards() []Card { return append([]Card(nil), s.cards...) }

// permute is an in-place Fisher–Yates shuffle.
func (s *Session) permute() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rnd.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}
