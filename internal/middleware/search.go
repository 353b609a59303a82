package middleware

import "github.com/espanso/espanso-core/internal/event"

// Search is stage 18: on ShowSearchBar it emits a MatchesDetected carrying
// every configured match id, so the search UI can list them all for the
// user to pick from, re-using the normal MatchSelect/render pipeline for
// whichever one they choose (spec §4.2 step 18).
type Search struct {
	all []event.DetectedMatch
}

// NewSearch takes the full configured match set (as stable display
// entries, not live detections) to offer through the search bar.
func NewSearch(all []event.DetectedMatch) *Search {
	return &Search{all: all}
}

func (*Search) Name() string { return "Search" }

func (s *Search) Next(ev event.Event, _ Dispatch) event.Type {
	if _, ok := ev.Type.(event.ShowSearchBar); !ok {
		return ev.Type
	}
	return event.MatchesDetected{Matches: s.all}
}
