package enums

import "fmt"

// PlaybackState describes the lifecycle of a simulated playback session.
type PlaybackState string

const (
	PlaybackStatePlaying PlaybackState = "playing"
	PlaybackStatePaused  PlaybackState = "paused"
	PlaybackStateEnded   PlaybackState = "ended"
)

var validPlaybackStates = []PlaybackState{
	PlaybackStatePlaying,
	PlaybackStatePaused,
	PlaybackStateEnded,
}

// IsValid reports whether the value is a known PlaybackState.
func (p PlaybackState) IsValid() bool {
	for _, candidate := range validPlaybackStates {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlaybackState converts raw input into a PlaybackState.
func ParsePlaybackState(value string) (PlaybackState, error) {
	for _, candidate := range validPlaybackStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid playback state %q", value)
}
