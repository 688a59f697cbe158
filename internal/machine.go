package internal

import "fmt"

// Phase is the lifecycle position of an omnibox session
type Phase int

const (
	// PhaseIdle: nothing cached and no fetch outstanding
	PhaseIdle Phase = iota
	// PhaseAwaitingFetch: a fetch was started and has not completed
	PhaseAwaitingFetch
	// PhaseReady: the cache holds suggestions
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingFetch:
		return "awaiting-fetch"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is everything Transition needs to decide
type State struct {
	Phase  Phase
	Cached []Suggestion
}

// Event is delivered by the omnibox front end or by a completed fetch
type Event interface {
	event()
}

// InputStarted fires when the user starts typing after the keyword
type InputStarted struct {
	Token string
}

// InputChanged fires on every keystroke
type InputChanged struct {
	Text  string
	Token string
}

// InputEntered fires when the user accepts a suggestion or typed URL
type InputEntered struct {
	URL         string
	Disposition Disposition
}

// FetchSucceeded carries a completed fetch. Pending is the keystroke text
// waiting on this fetch, if any.
type FetchSucceeded struct {
	Suggestions []Suggestion
	Pending     *string
}

// FetchFailed carries a failed fetch
type FetchFailed struct {
	Err     error
	Pending *string
}

func (InputStarted) event()   {}
func (InputChanged) event()   {}
func (InputEntered) event()   {}
func (FetchSucceeded) event() {}
func (FetchFailed) event()    {}

// Disposition says where the user wants the URL opened. It is accepted for
// completeness; navigation always targets the active tab.
type Disposition string

const (
	DispositionCurrentTab       Disposition = "currentTab"
	DispositionNewForegroundTab Disposition = "newForegroundTab"
	DispositionNewBackgroundTab Disposition = "newBackgroundTab"
)

// Effect is a side effect requested by Transition
type Effect interface {
	effect()
}

// FetchEffect asks for the saved searches to be fetched with Token
type FetchEffect struct {
	Token   string
	Pending *string
}

// StoreEffect replaces the session cache
type StoreEffect struct {
	Suggestions []Suggestion
}

// SuggestEffect delivers suggestions for the latest keystroke
type SuggestEffect struct {
	Query string
	Items []HighlightedSuggestion
}

// NavigateEffect sends the active tab to URL
type NavigateEffect struct {
	URL string
}

func (FetchEffect) effect()    {}
func (StoreEffect) effect()    {}
func (SuggestEffect) effect()  {}
func (NavigateEffect) effect() {}

// Machine holds the pure transition rules of an omnibox session
type Machine struct {
	highlighter *Highlighter
}

// NewMachine creates a machine filtering with h
func NewMachine(h *Highlighter) *Machine {
	if h == nil {
		h = NewHighlighter(DefaultMaxSuggestions, false)
	}
	return &Machine{highlighter: h}
}

// Transition computes the next state and the effects to run. It performs no
// I/O. The returned error is informational (a failed fetch or an invalid
// pattern) and never prevents the state change.
func (m *Machine) Transition(s State, ev Event) (State, []Effect, error) {
	switch e := ev.(type) {
	case InputStarted:
		if e.Token == "" {
			return s, nil, nil
		}
		return State{Phase: PhaseAwaitingFetch, Cached: s.Cached}, []Effect{FetchEffect{Token: e.Token}}, nil

	case InputChanged:
		if len(s.Cached) > 0 {
			items, err := m.highlighter.Highlight(e.Text, s.Cached)
			return s, []Effect{SuggestEffect{Query: e.Text, Items: items}}, err
		}
		if e.Token == "" {
			return s, nil, nil
		}
		text := e.Text
		return State{Phase: PhaseAwaitingFetch, Cached: s.Cached}, []Effect{FetchEffect{Token: e.Token, Pending: &text}}, nil

	case FetchSucceeded:
		next := State{Phase: PhaseIdle, Cached: e.Suggestions}
		if len(e.Suggestions) > 0 {
			next.Phase = PhaseReady
		}
		effects := []Effect{StoreEffect{Suggestions: e.Suggestions}}
		if e.Pending == nil {
			return next, effects, nil
		}
		items, err := m.highlighter.Highlight(*e.Pending, e.Suggestions)
		return next, append(effects, SuggestEffect{Query: *e.Pending, Items: items}), err

	case FetchFailed:
		next := State{Phase: PhaseIdle, Cached: s.Cached}
		if len(s.Cached) > 0 {
			next.Phase = PhaseReady
		}
		return next, nil, e.Err

	case InputEntered:
		if _, err := ValidateURL(e.URL); err != nil {
			return s, nil, nil
		}
		return s, []Effect{NavigateEffect{URL: e.URL}}, nil

	default:
		return s, nil, fmt.Errorf("unknown event %T", ev)
	}
}
