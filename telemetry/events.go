// Package telemetry provides windowed gameplay statistics, bookmarks, and CSV output.
package telemetry

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSpawn EventType = iota
	EventSpawnRefused
	EventConsume
	EventSweep
	EventInputRejected
)

var eventNames = [...]string{
	EventSpawn:         "spawn",
	EventSpawnRefused:  "spawn_refused",
	EventConsume:       "consume",
	EventSweep:         "sweep",
	EventInputRejected: "input_rejected",
}

// String returns the event name used in logs.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event represents a single telemetry event.
type Event struct {
	Type       EventType
	Tick       int32
	ObstacleID uint32 // zero for events without an obstacle

	// Optional fields depending on event type
	Points int     // score gained (consume)
	Scale  float64 // obstacle scale (spawn, consume)
}

// NewSpawnEvent creates an obstacle spawn event.
func NewSpawnEvent(tick int32, obstacleID uint32, scale float64) Event {
	return Event{Type: EventSpawn, Tick: tick, ObstacleID: obstacleID, Scale: scale}
}

// NewConsumeEvent creates a consumption event.
func NewConsumeEvent(tick int32, obstacleID uint32, points int, scale float64) Event {
	return Event{Type: EventConsume, Tick: tick, ObstacleID: obstacleID, Points: points, Scale: scale}
}

// NewSweepEvent records obstacles retired at the trailing edge in one tick.
// Points carries the count since sweeps are batched.
func NewSweepEvent(tick int32, count int) Event {
	return Event{Type: EventSweep, Tick: tick, Points: count}
}
