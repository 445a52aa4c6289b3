package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_FeedingFrenzy(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 600), Consumed: 1, PlayerScale: 0.6})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 3000, Consumed: 4, PlayerScale: 0.6})
	if !hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("expected feeding_frenzy bookmark")
	}
}

func TestBookmarkDetector_NoFrenzyWithoutHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)
	if bookmarks := bd.Check(WindowStats{Consumed: 10, PlayerScale: 0.6}); hasBookmark(bookmarks, BookmarkFeedingFrenzy) {
		t.Error("frenzy reported on the first window")
	}
}

func TestBookmarkDetector_GrowthMilestone(t *testing.T) {
	bd := NewBookmarkDetector(5)

	steps := []struct {
		scale float64
		want  bool
	}{
		{0.55, false}, // baseline, next milestone 1.0
		{0.95, false},
		{1.00, true},
		{1.20, false},
		{1.75, true}, // crosses 1.5
		{1.80, false},
	}
	for i, s := range steps {
		got := hasBookmark(bd.Check(WindowStats{WindowEndTick: int32(i), PlayerScale: s.scale}), BookmarkGrowthMilestone)
		if got != s.want {
			t.Errorf("window %d scale %.2f: milestone = %v, want %v", i, s.scale, got, s.want)
		}
	}
}

func TestBookmarkDetector_PoolSaturated(t *testing.T) {
	bd := NewBookmarkDetector(5)

	if hasBookmark(bd.Check(WindowStats{SpawnsRefused: 0, PlayerScale: 0.5}), BookmarkPoolSaturated) {
		t.Error("unexpected bookmark without refusals")
	}
	if !hasBookmark(bd.Check(WindowStats{SpawnsRefused: 2, ActiveCount: 256, PlayerScale: 0.5}), BookmarkPoolSaturated) {
		t.Error("expected pool_saturated on first refusing window")
	}
	if hasBookmark(bd.Check(WindowStats{SpawnsRefused: 3, ActiveCount: 256, PlayerScale: 0.5}), BookmarkPoolSaturated) {
		t.Error("pool_saturated repeated while still saturated")
	}
}

func TestBookmarkDetector_DryStreak(t *testing.T) {
	bd := NewBookmarkDetector(5)

	var fired int
	for i := 0; i < 5; i++ {
		if hasBookmark(bd.Check(WindowStats{Spawned: 6, PlayerScale: 0.5}), BookmarkDryStreak) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("dry_streak fired %d times, want 1", fired)
	}

	// A catch resets the streak
	bd.Check(WindowStats{Spawned: 6, Consumed: 1, PlayerScale: 0.55})
	for i := 0; i < 3; i++ {
		if hasBookmark(bd.Check(WindowStats{Spawned: 6, PlayerScale: 0.55}), BookmarkDryStreak) {
			fired++
		}
	}
	if fired != 2 {
		t.Errorf("dry_streak fired %d times after reset, want 2", fired)
	}
}
