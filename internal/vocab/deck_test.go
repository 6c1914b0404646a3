package vocab

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/pteprep/internal/store"
)

var reviewTime = time.Date(2025, 3, 5, 18, 0, 0, 0, time.UTC)

func newTestDeck(t *testing.T) (*Deck, *store.MemoryRepo[[]Word]) {
	t.Helper()
	repo := store.NewMemoryRepo[[]Word]()
	d, err := Load(context.Background(), repo,
		WithRand(rand.New(rand.NewPCG(11, 12))),
		WithClock(func() time.Time { return reviewTime }),
	)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return d, repo
}

func TestLoadSeedsCatalog(t *testing.T) {
	d, repo := newTestDeck(t)
	if got := len(d.Words()); got != 10 {
		t.Fatalf("words = %d, want 10", got)
	}
	if repo.Saves != 1 {
		t.Errorf("saves = %d, want 1", repo.Saves)
	}
	want := []string{"Academic", "Business", "Science", "Technology", "Social"}
	got := d.Categories()
	if len(got) != len(want) {
		t.Fatalf("categories = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestModeFilters(t *testing.T) {
	d, _ := newTestDeck(t)
	ctx := context.Background()

	if _, err := d.MarkLearned(ctx, "1"); err != nil {
		t.Fatalf("mark learned: %v", err)
	}
	if _, err := d.MarkLearned(ctx, "2"); err != nil {
		t.Fatalf("mark learned: %v", err)
	}
	for i := 0; i < MaxReviews; i++ {
		if _, err := d.MarkNeedReview(ctx, "2"); err != nil {
			t.Fatalf("review: %v", err)
		}
	}

	tests := []struct {
		mode Mode
		want int
	}{
		{ModeLearn, 8},
		{ModeReview, 1}, // word 2 has hit the review cap
		{ModeTest, 10},
	}
	for _, tt := range tests {
		d.SetMode(tt.mode)
		if got := len(d.Filtered()); got != tt.want {
			t.Errorf("%s: filtered = %d, want %d", tt.mode, got, tt.want)
		}
	}

	d.SetMode(ModeTest)
	d.SetCategory("Technology")
	if got := len(d.Filtered()); got != 2 {
		t.Errorf("technology = %d, want 2", got)
	}
	d.SetCategory("")
	if d.Category() != AllCategories {
		t.Errorf("category = %q, want all", d.Category())
	}
}

func TestDrawEmptyPool(t *testing.T) {
	d, _ := newTestDeck(t)
	d.SetMode(ModeReview)
	if _, err := d.Draw(); !errors.Is(err, ErrNoWordAvailable) {
		t.Fatalf("err = %v, want ErrNoWordAvailable", err)
	}
	if _, ok := d.Current(); ok {
		t.Error("expected no current word")
	}
}

func TestTestModeCounters(t *testing.T) {
	d, _ := newTestDeck(t)
	ctx := context.Background()
	d.SetMode(ModeTest)

	for i := 0; i < 3; i++ {
		w, err := d.Draw()
		if err != nil {
			t.Fatalf("draw: %v", err)
		}
		if i < 2 {
			if _, err := d.MarkLearned(ctx, w.ID); err != nil {
				t.Fatalf("mark learned: %v", err)
			}
		} else {
			if _, err := d.MarkNeedReview(ctx, w.ID); err != nil {
				t.Fatalf("review: %v", err)
			}
		}
	}
	s := d.Stats()
	if s.Questions != 3 || s.Score != 2 {
		t.Errorf("stats = %+v, want 2/3", s)
	}
}

func TestLearnModeDoesNotScore(t *testing.T) {
	d, _ := newTestDeck(t)
	w, err := d.Draw()
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	got, err := d.MarkLearned(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !got.Learned || !got.LastReviewed.Equal(reviewTime) {
		t.Errorf("word = %+v", got)
	}
	if s := d.Stats(); s.Score != 0 || s.Questions != 0 || s.Learned != 1 || s.ToLearn != 9 {
		t.Errorf("stats = %+v", s)
	}
}

func TestMarkNeedReviewKeepsUnlearned(t *testing.T) {
	d, _ := newTestDeck(t)
	got, err := d.MarkNeedReview(context.Background(), "5")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if got.Learned || got.ReviewCount != 1 || got.LastReviewed.IsZero() {
		t.Errorf("word = %+v", got)
	}
	if _, err := d.MarkNeedReview(context.Background(), "99"); !errors.Is(err, ErrUnknownWord) {
		t.Errorf("unknown word err = %v", err)
	}
}

func TestResetThenLearnReturnsFullCatalog(t *testing.T) {
	d, repo := newTestDeck(t)
	ctx := context.Background()
	d.SetMode(ModeTest)
	for _, w := range d.Words() {
		if _, err := d.MarkLearned(ctx, w.ID); err != nil {
			t.Fatalf("mark: %v", err)
		}
		if _, err := d.MarkNeedReview(ctx, w.ID); err != nil {
			t.Fatalf("review: %v", err)
		}
	}
	d.Draw()

	if err := d.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	d.SetMode(ModeLearn)
	if got := len(d.Filtered()); got != 10 {
		t.Errorf("learn pool = %d, want 10", got)
	}
	if s := d.Stats(); s.Score != 0 || s.Questions != 0 {
		t.Errorf("counters not reset: %+v", s)
	}

	stored, _ := repo.Load(ctx)
	for _, w := range *stored {
		if w.Learned || w.ReviewCount != 0 || !w.LastReviewed.IsZero() {
			t.Errorf("stored word not reset: %+v", w)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("review"); err != nil || m != ModeReview {
		t.Errorf("ParseMode(review) = %v, %v", m, err)
	}
	if _, err := ParseMode("cram"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(cram) err = %v", err)
	}
}
