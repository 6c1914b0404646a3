package vocab

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/abhisek/pteprep/internal/store"
)

// Mode selects which words a study turn draws from.
type Mode string

const (
	ModeLearn  Mode = "learn"  // words not yet learned
	ModeReview Mode = "review" // learned words reviewed fewer than MaxReviews times
	ModeTest   Mode = "test"   // every word, with a running score
)

// Modes lists the study modes in display order.
var Modes = []Mode{ModeLearn, ModeReview, ModeTest}

// AllCategories disables the category filter.
const AllCategories = "all"

var (
	ErrNoWordAvailable = errors.New("no words match the current filter")
	ErrUnknownWord     = errors.New("unknown word")
	ErrUnknownMode     = errors.New("unknown study mode")
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if slices.Contains(Modes, m) {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Stats summarises the deck and the current session.
type Stats struct {
	Total     int
	Learned   int
	ToLearn   int
	Score     int // test-mode words marked learned this session
	Questions int // test-mode words drawn this session
}

// Deck owns the persisted vocabulary and the session counters.
type Deck struct {
	repo     store.Repo[[]Word]
	words    []Word
	mode     Mode
	category string
	current  string

	score     int
	questions int

	rng *rand.Rand
	now func() time.Time
}

// Option configures a Deck.
type Option func(*Deck)

// WithRand sets the random source used by Draw.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) { d.rng = rng }
}

// WithClock sets the clock used to stamp reviews.
func WithClock(now func() time.Time) Option {
	return func(d *Deck) { d.now = now }
}

// Load reads the stored words, seeding and saving the catalog when the
// store is empty.
func Load(ctx context.Context, repo store.Repo[[]Word], opts ...Option) (*Deck, error) {
	d := &Deck{
		repo:     repo,
		mode:     ModeLearn,
		category: AllCategories,
		now:      time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	stored, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	if stored != nil {
		d.words = *stored
		return d, nil
	}
	if err := d.commit(ctx, Catalog()); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Deck) Mode() Mode       { return d.mode }
func (d *Deck) Category() string { return d.category }
func (d *Deck) Words() []Word    { return slices.Clone(d.words) }

// SetMode switches the study mode and clears the drawn word.
func (d *Deck) SetMode(m Mode) {
	d.mode = m
	d.current = ""
}

// SetCategory filters draws to one category; "" or AllCategories clears it.
func (d *Deck) SetCategory(c string) {
	if c == "" {
		c = AllCategories
	}
	d.category = c
	d.current = ""
}

// Categories returns the distinct categories in catalog order.
func (d *Deck) Categories() []string {
	var out []string
	for _, w := range d.words {
		if !slices.Contains(out, w.Category) {
			out = append(out, w.Category)
		}
	}
	return out
}

// Filtered returns the words eligible for the current mode and category.
func (d *Deck) Filtered() []Word {
	var out []Word
	for _, w := range d.words {
		if d.category != AllCategories && w.Category != d.category {
			continue
		}
		switch d.mode {
		case ModeLearn:
			if w.Learned {
				continue
			}
		case ModeReview:
			if !w.Learned || w.ReviewCount >= MaxReviews {
				continue
			}
		}
		out = append(out, w)
	}
	return out
}

// Draw picks a random eligible word and makes it current. In test mode it
// also counts a question.
func (d *Deck) Draw() (Word, error) {
	pool := d.Filtered()
	if len(pool) == 0 {
		d.current = ""
		return Word{}, ErrNoWordAvailable
	}
	w := pool[d.rng.IntN(len(pool))]
	d.current = w.ID
	if d.mode == ModeTest {
		d.questions++
	}
	return w, nil
}

// Current returns the drawn word, if any.
func (d *Deck) Current() (Word, bool) {
	if d.current == "" {
		return Word{}, false
	}
	i := d.index(d.current)
	if i < 0 {
		return Word{}, false
	}
	return d.words[i], true
}

// MarkLearned sets the word learned and stamps the review time. In test
// mode it also scores a point.
func (d *Deck) MarkLearned(ctx context.Context, id string) (Word, error) {
	w, err := d.update(ctx, id, func(w *Word) {
		w.Learned = true
		w.LastReviewed = d.now()
	})
	if err != nil {
		return Word{}, err
	}
	if d.mode == ModeTest {
		d.score++
	}
	return w, nil
}

// MarkNeedReview bumps the review count without marking the word learned.
func (d *Deck) MarkNeedReview(ctx context.Context, id string) (Word, error) {
	return d.update(ctx, id, func(w *Word) {
		w.ReviewCount++
		w.LastReviewed = d.now()
	})
}

// Reset clears study state on every word and zeroes the session counters.
func (d *Deck) Reset(ctx context.Context) error {
	next := slices.Clone(d.words)
	for i := range next {
		next[i].Learned = false
		next[i].ReviewCount = 0
		next[i].LastReviewed = time.Time{}
	}
	if err := d.commit(ctx, next); err != nil {
		return err
	}
	d.score, d.questions, d.current = 0, 0, ""
	return nil
}

// Stats summarises the deck.
func (d *Deck) Stats() Stats {
	s := Stats{Total: len(d.words), Score: d.score, Questions: d.questions}
	for _, w := range d.words {
		if w.Learned {
			s.Learned++
		}
	}
	s.ToLearn = s.Total - s.Learned
	return s
}

func (d *Deck) update(ctx context.Context, id string, fn func(*Word)) (Word, error) {
	i := d.index(id)
	if i < 0 {
		return Word{}, fmt.Errorf("%w: %s", ErrUnknownWord, id)
	}
	next := slices.Clone(d.words)
	fn(&next[i])
	if err := d.commit(ctx, next); err != nil {
		return Word{}, err
	}
	return next[i], nil
}

func (d *Deck) commit(ctx context.Context, next []Word) error {
	if err := d.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save vocabulary: %w", err)
	}
	d.words = next
	return nil
}

func (d *Deck) index(id string) int {
	return slices.IndexFunc(d.words, func(w Word) bool { return w.ID == id })
}
