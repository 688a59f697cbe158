package internal

import (
	"context"
	"fmt"
	"sync"
)

// SuggestFunc receives the suggestions for a keystroke
type SuggestFunc func(items []HighlightedSuggestion)

// Session is one keyword session: from process start until exit. It owns
// the suggestion cache and runs effects requested by the Machine.
//
// A fetch is never cancelled. When several fetches overlap, each result is
// stored as it completes, so the last one to finish wins.
type Session struct {
	mu      sync.Mutex
	phase   Phase
	cache   *SuggestionCache
	machine *Machine

	credentials CredentialResolver
	fetcher     Fetcher
	navigator   *Navigator
}

// SessionOptions wires a Session to its collaborators
type SessionOptions struct {
	Credentials CredentialResolver
	Fetcher     Fetcher
	Navigator   *Navigator
	Highlighter *Highlighter
	Cache       *SuggestionCache
}

// NewSession creates a session in the idle phase
func NewSession(opts SessionOptions) *Session {
	cache := opts.Cache
	if cache == nil {
		cache = NewSuggestionCache()
	}
	return &Session{
		phase:       PhaseIdle,
		cache:       cache,
		machine:     NewMachine(opts.Highlighter),
		credentials: opts.Credentials,
		fetcher:     opts.Fetcher,
		navigator:   opts.Navigator,
	}
}

// Phase returns the current phase
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Cache returns the session cache
func (s *Session) Cache() *SuggestionCache {
	return s.cache
}

// InputStarted handles the start of a keyword session by warming the cache
func (s *Session) InputStarted(ctx context.Context) error {
	return s.Dispatch(ctx, InputStarted{Token: s.token(ctx)}, nil)
}

// StartAsync runs InputStarted in the background, the way the host fires
// it without waiting. The channel yields the fetch result once.
func (s *Session) StartAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.InputStarted(ctx)
	}()
	return done
}

// InputChanged handles a keystroke. suggest is called at most once; it is
// not called when no token is configured.
func (s *Session) InputChanged(ctx context.Context, text string, suggest SuggestFunc) error {
	ev := InputChanged{Text: text}
	if s.cache.Len() == 0 {
		ev.Token = s.token(ctx)
	}
	return s.Dispatch(ctx, ev, suggest)
}

// InputEntered handles the user accepting url
func (s *Session) InputEntered(ctx context.Context, url string, disposition Disposition) error {
	return s.Dispatch(ctx, InputEntered{URL: url, Disposition: disposition}, nil)
}

// Dispatch applies ev and runs the resulting effects
func (s *Session) Dispatch(ctx context.Context, ev Event, suggest SuggestFunc) error {
	s.mu.Lock()
	next, effects, err := s.machine.Transition(State{Phase: s.phase, Cached: s.cache.Get()}, ev)
	s.phase = next.Phase
	// In-memory effects apply together with the phase change
	for _, eff := range effects {
		if store, ok := eff.(StoreEffect); ok {
			s.cache.Set(store.Suggestions)
			LogDebug("Cached %d suggestion(s)", len(store.Suggestions))
		}
	}
	s.mu.Unlock()

	if err != nil {
		LogDebug("Event %T: %v", ev, err)
	}

	for _, eff := range effects {
		if effErr := s.run(ctx, eff, suggest); effErr != nil && err == nil {
			err = effErr
		}
	}
	return err
}

func (s *Session) run(ctx context.Context, eff Effect, suggest SuggestFunc) error {
	switch e := eff.(type) {
	case StoreEffect:
		return nil
	case SuggestEffect:
		if suggest != nil {
			suggest(e.Items)
		}
		return nil
	case NavigateEffect:
		if s.navigator == nil {
			return &NavigationError{URL: e.URL, Err: fmt.Errorf("no browser configured")}
		}
		return s.navigator.Navigate(ctx, e.URL)
	case FetchEffect:
		if s.fetcher == nil {
			return s.Dispatch(ctx, FetchFailed{Err: fmt.Errorf("no fetcher configured"), Pending: e.Pending}, suggest)
		}
		suggestions, err := s.fetcher.FetchSuggestions(ctx, e.Token)
		if err != nil {
			return s.Dispatch(ctx, FetchFailed{Err: err, Pending: e.Pending}, suggest)
		}
		return s.Dispatch(ctx, FetchSucceeded{Suggestions: suggestions, Pending: e.Pending}, suggest)
	default:
		return fmt.Errorf("unknown effect %T", eff)
	}
}

// token resolves the credential. A broken store degrades to "no token".
func (s *Session) token(ctx context.Context) string {
	if s.credentials == nil {
		return ""
	}
	token, err := s.credentials.GetToken(ctx)
	if err != nil {
		LogWarn("Failed to read token: %v", err)
		return ""
	}
	return token
}
