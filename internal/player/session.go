package player

import (
	"context"
	"sync"
	"time"

	"github.com/myflixlabs/myflix-backend/pkg/enums"
	pkgerrors "github.com/myflixlabs/myflix-backend/pkg/errors"
)

// Playback defaults. The demo player opens mid-movie with a fixed
// runtime rather than probing real media.
const (
	defaultStartPosition = 1445
	defaultDuration      = 6870
	defaultVolume        = 80
	defaultSubtitle      = "English"
	skipSeconds          = 10
)

var playbackRates = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}

// SubtitleTracks lists the selectable subtitle options.
var SubtitleTracks = []string{"Off", "English", "Spanish", "French", "German"}

// Session is one simulated playback. All accessors are safe for
// concurrent use; the tick loop and HTTP handlers share it.
type Session struct {
	mu         sync.Mutex
	movieID    int
	sourceURL  string
	duration   int
	position   int
	volume     int
	prevVolume int
	rate       float64
	subtitle   string
	state      enums.PlaybackState
	showAds    bool
}

// Snapshot is the wire representation of the playback state.
type Snapshot struct {
	MovieID   int                 `json:"movieId"`
	SourceURL string              `json:"sourceUrl"`
	Position  int                 `json:"position"`
	Duration  int                 `json:"duration"`
	Volume    int                 `json:"volume"`
	Muted     bool                `json:"muted"`
	Rate      float64             `json:"rate"`
	Subtitle  string              `json:"subtitle"`
	State     enums.PlaybackState `json:"state"`
	ShowAds   bool                `json:"showAds"`
}

func newSession(movieID int, sourceURL string, showAds bool) *Session {
	return &Session{
		movieID:    movieID,
		sourceURL:  sourceURL,
		showAds:    showAds,
		duration:   defaultDuration,
		position:   defaultStartPosition,
		volume:     defaultVolume,
		prevVolume: defaultVolume,
		rate:       1.0,
		subtitle:   defaultSubtitle,
		state:      enums.PlaybackStatePlaying,
	}
}

// Snapshot returns the current playback state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Play resumes a paused session. Ended sessions stay ended until a seek
// moves the position back.
func (s *Session) Play() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == enums.PlaybackStatePaused {
		s.state = enums.PlaybackStatePlaying
	}
	return s.snapshotLocked()
}

// Pause halts progress.
func (s *Session) Pause() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == enums.PlaybackStatePlaying {
		s.state = enums.PlaybackStatePaused
	}
	return s.snapshotLocked()
}

// Seek jumps to an absolute position, clamped to [0, duration]. Seeking
// off the end marks the session ended; seeking back from the end
// resumes paused.
func (s *Session) Seek(position int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seekLocked(position)
}

// SkipBack rewinds ten seconds, clamping at the start.
func (s *Session) SkipBack() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seekLocked(s.position - skipSeconds)
}

// SkipForward jumps ahead ten seconds; skipping past the end marks the
// session ended, same as an absolute seek would.
func (s *Session) SkipForward() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seekLocked(s.position + skipSeconds)
}

func (s *Session) seekLocked(position int) Snapshot {
	if position < 0 {
		position = 0
	}
	if position >= s.duration {
		s.position = s.duration
		s.state = enums.PlaybackStateEnded
		return s.snapshotLocked()
	}
	s.position = position
	if s.state == enums.PlaybackStateEnded {
		s.state = enums.PlaybackStatePaused
	}
	return s.snapshotLocked()
}

// SetVolume sets the level (0-100). Non-zero levels are remembered so
// unmute can restore them.
func (s *Session) SetVolume(volume int) (Snapshot, error) {
	if volume < 0 || volume > 100 {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "volume must be between 0 and 100")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = volume
	if volume > 0 {
		s.prevVolume = volume
	}
	return s.snapshotLocked(), nil
}

// ToggleMute flips between silent and the last non-zero level.
func (s *Session) ToggleMute() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.volume > 0 {
		s.prevVolume = s.volume
		s.volume = 0
	} else if s.prevVolume > 0 {
		s.volume = s.prevVolume
	} else {
		s.volume = defaultVolume
	}
	return s.snapshotLocked()
}

// SetRate selects a playback speed from the supported set.
func (s *Session) SetRate(rate float64) (Snapshot, error) {
	valid := false
	for _, supported := range playbackRates {
		if rate == supported {
			valid = true
			break
		}
	}
	if !valid {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported playback rate")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rate = rate
	return s.snapshotLocked(), nil
}

// SetSubtitle selects a subtitle track from the supported set.
func (s *Session) SetSubtitle(track string) (Snapshot, error) {
	valid := false
	for _, supported := range SubtitleTracks {
		if track == supported {
			valid = true
			break
		}
	}
	if !valid {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "unsupported subtitle track")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subtitle = track
	return s.snapshotLocked(), nil
}

// Tick advances one simulated second while playing. Reaching the end
// flips the session to ended.
func (s *Session) Tick() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != enums.PlaybackStatePlaying {
		return s.snapshotLocked()
	}
	next := s.position + 1
	if next >= s.duration {
		s.position = s.duration
		s.state = enums.PlaybackStateEnded
		return s.snapshotLocked()
	}
	s.position = next
	return s.snapshotLocked()
}

// TickInterval is the wall-clock spacing between simulated seconds at
// the current rate: one second at 1x, half at 2x.
func (s *Session) TickInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Duration(float64(time.Second) / s.rate)
}

// Run drives the tick loop until ctx is canceled or playback ends.
func (s *Session) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(s.TickInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			if s.Tick().State == enums.PlaybackStateEnded {
				return
			}
		}
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		MovieID:   s.movieID,
		SourceURL: s.sourceURL,
		Position:  s.position,
		Duration:  s.duration,
		Volume:    s.volume,
		Muted:     s.volume == 0,
		Rate:      s.rate,
		Subtitle:  s.subtitle,
		State:     s.state,
		ShowAds:   s.showAds,
	}
}
