package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/bigfish/config"
)

// Catch is one consumption as written to catches.csv.
type Catch struct {
	Tick          int32   `csv:"tick"`
	ObstacleID    uint32  `csv:"obstacle_id"`
	ObstacleScale float64 `csv:"obstacle_scale"`
	Points        int     `csv:"points"`
	Score         int     `csv:"score"`
	PlayerScale   float64 `csv:"player_scale"`
}

// NewCatch builds a catch row from a consume event and the player state
// after the catch was applied.
func NewCatch(ev Event, score int, playerScale float64) Catch {
	return Catch{
		Tick:          ev.Tick,
		ObstacleID:    ev.ObstacleID,
		ObstacleScale: ev.Scale,
		Points:        ev.Points,
		Score:         score,
		PlayerScale:   playerScale,
	}
}

// csvTable appends rows of one record type to a CSV file, writing the
// header with the first row.
type csvTable[T any] struct {
	name    string
	file    *os.File
	started bool
}

func openTable[T any](dir, name string) (*csvTable[T], error) {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return &csvTable[T]{name: name, file: f}, nil
}

func (t *csvTable[T]) append(row T) error {
	rows := []T{row}
	var err error
	if t.started {
		err = gocsv.MarshalWithoutHeaders(rows, t.file)
	} else {
		err = gocsv.Marshal(rows, t.file)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", t.name, err)
	}
	t.started = true
	return nil
}

func (t *csvTable[T]) close() error {
	if t == nil {
		return nil
	}
	return t.file.Close()
}

// OutputManager writes the files for one recorded run: a config snapshot,
// per-window gameplay stats, tick timings, bookmarks and every catch.
// A nil manager discards everything.
type OutputManager struct {
	dir       string
	windows   *csvTable[WindowStats]
	perf      *csvTable[PerfStatsCSV]
	bookmarks *csvTable[Bookmark]
	catches   *csvTable[Catch]
}

// NewOutputManager creates dir and the run's CSV files. An empty dir
// disables output and yields a nil manager.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}
	var err error
	if om.windows, err = openTable[WindowStats](dir, "telemetry.csv"); err != nil {
		return nil, err
	}
	if om.perf, err = openTable[PerfStatsCSV](dir, "perf.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.bookmarks, err = openTable[Bookmark](dir, "bookmarks.csv"); err != nil {
		om.Close()
		return nil, err
	}
	if om.catches, err = openTable[Catch](dir, "catches.csv"); err != nil {
		om.Close()
		return nil, err
	}
	return om, nil
}

// WriteConfig snapshots the game config to config.yaml so a run can be
// replayed with the same field, spawner and scoring settings.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends one stats window.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	return om.windows.append(stats)
}

// WritePerf appends the tick timings for the window ending at windowEnd.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	return om.perf.append(stats.ToCSV(windowEnd))
}

// WriteBookmark appends a detected round highlight.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}
	return om.bookmarks.append(b)
}

// WriteCatch appends one consumption.
func (om *OutputManager) WriteCatch(c Catch) error {
	if om == nil {
		return nil
	}
	return om.catches.append(c)
}

// Close closes every open file and reports all close errors.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return errors.Join(
		om.windows.close(),
		om.perf.close(),
		om.bookmarks.close(),
		om.catches.close(),
	)
}
