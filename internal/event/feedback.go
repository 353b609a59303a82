package event

// MatchInjected is fed back to the funnel after a match's effect has been
// dispatched. The matcher treats it as a VirtualSeparator (see spec §4.3);
// the Action middleware always pairs it with a DiscardPrevious.
type MatchInjected struct {
	MatchID MatchID
}

func (MatchInjected) eventType() {}

// DiscardPrevious tells PastEventsDiscard to drop every event whose
// SourceID is less than MinimumSourceID, until a DiscardBetween or another
// DiscardPrevious narrows the window again.
type DiscardPrevious struct {
	MinimumSourceID SourceID
}

func (DiscardPrevious) eventType() {}

// DiscardBetween tells PastEventsDiscard to drop events whose SourceID
// falls in [Start, End).
type DiscardBetween struct {
	Start SourceID
	End   SourceID
}

func (DiscardBetween) eventType() {}

// Undo is emitted by the Undo middleware when a Backspace immediately
// follows an injected match: the Action middleware turns this into a
// TextInject that restores the original trigger text.
type Undo struct {
	MatchID MatchID
	Trigger string
	Replace string
}

func (Undo) eventType() {}

// UndoRecorded is dispatched by the Action middleware once it has paired a
// TriggerCompensation with the plain-text Rendered it preceded, giving the
// Undo middleware everything it needs to restore the original trigger on
// the user's very next Backspace.
type UndoRecorded struct {
	MatchID      MatchID
	Trigger      string
	InjectedText string
}

func (UndoRecorded) eventType() {}
