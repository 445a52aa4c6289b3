package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFeedingFrenzy   BookmarkType = "feeding_frenzy"
	BookmarkGrowthMilestone BookmarkType = "growth_milestone"
	BookmarkPoolSaturated   BookmarkType = "pool_saturated"
	BookmarkDryStreak       BookmarkType = "dry_streak"
)

// growthStep is the player scale increment between growth milestones.
const growthStep = 0.5

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in a run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	nextMilestone  float64 // next player scale that triggers a milestone
	wasSaturated   bool    // previous window refused spawns
	dryWindowCount int     // consecutive windows with spawns but no catches
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkFeedingFrenzy(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkGrowthMilestone(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkPoolSaturated(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkDryStreak(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFeedingFrenzy(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Consumed
	}
	avg := float64(total) / float64(len(history))

	if stats.Consumed >= 3 && float64(stats.Consumed) > avg*2.0 {
		return &Bookmark{
			Type:        BookmarkFeedingFrenzy,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Ate %d obstacles, rolling average %.1f", stats.Consumed, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkGrowthMilestone(stats WindowStats) *Bookmark {
	if bd.nextMilestone == 0 {
		// First window sets the baseline
		bd.nextMilestone = (math.Floor(stats.PlayerScale/growthStep) + 1) * growthStep
		return nil
	}
	if stats.PlayerScale < bd.nextMilestone {
		return nil
	}

	reached := math.Floor(stats.PlayerScale/growthStep) * growthStep
	bd.nextMilestone = reached + growthStep
	return &Bookmark{
		Type:        BookmarkGrowthMilestone,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Player scale reached %.2f (score %d)", reached, stats.Score),
	}
}

func (bd *BookmarkDetector) checkPoolSaturated(stats WindowStats) *Bookmark {
	saturated := stats.SpawnsRefused > 0
	defer func() { bd.wasSaturated = saturated }()

	if !saturated || bd.wasSaturated {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkPoolSaturated,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Pool refused %d spawns with %d active", stats.SpawnsRefused, stats.ActiveCount),
	}
}

func (bd *BookmarkDetector) checkDryStreak(stats WindowStats) *Bookmark {
	if stats.Spawned == 0 || stats.Consumed > 0 {
		bd.dryWindowCount = 0
		return nil
	}

	bd.dryWindowCount++
	if bd.dryWindowCount == 3 { // trigger exactly once per streak
		return &Bookmark{
			Type:        BookmarkDryStreak,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("No catches for %d windows", bd.dryWindowCount),
		}
	}
	return nil
}
