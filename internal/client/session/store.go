package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
	"github.com/dmitrijs2005/gigdesk/internal/common"
	"github.com/dmitrijs2005/gigdesk/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// ProfileFetcher resolves the profile behind a bearer token.
type ProfileFetcher interface {
	Me(ctx context.Context, token string) (*models.UserProfile, error)
}

// Snapshot is a consistent copy of the store's state.
type Snapshot struct {
	State State
	User  *models.UserProfile
	Token string
}

// Store owns the session. All methods are safe for concurrent use.
type Store struct {
	persist Persistence
	fetcher ProfileFetcher
	log     logging.Logger
	now     func() time.Time

	// pmu serializes writes to persist with the gen check that decides
	// them. Lock order: pmu before mu.
	pmu sync.Mutex

	mu    sync.RWMutex
	state State
	user  *models.UserProfile
	token string
	// gen increments on every Login/Logout so that a restoration finishing
	// late does not overwrite a newer session.
	gen uint64

	ready     chan struct{}
	readyOnce sync.Once
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithClock overrides the clock used to check token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a Store in the uninitialized state.
func NewStore(p Persistence, f ProfileFetcher, opts ...Option) *Store {
	s := &Store{
		persist: p,
		fetcher: f,
		log:     logging.Nop(),
		now:     time.Now,
		state:   StateUninitialized,
		ready:   make(chan struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) markReady() {
	s.readyOnce.Do(func() { close(s.ready) })
}

// Restore loads the persisted session and validates it against the server.
// Only the first call does work; later calls wait for it to resolve.
// Failures never surface: the store ends up anonymous.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		_ = s.Wait(ctx)
		return
	}
	gen := s.gen
	s.mu.Unlock()

	token, cached, err := s.persist.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session load failed", "error", err)
		s.resolveAnonymous(ctx, gen, false)
		return
	}
	if token == "" {
		s.resolveAnonymous(ctx, gen, false)
		return
	}
	if tokenExpired(token, s.now()) {
		s.log.Info(ctx, "stored token expired, signing out")
		s.resolveAnonymous(ctx, gen, true)
		return
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state = StateRestoring
	s.token = token
	if cached != nil {
		// shown while the fetch is pending; not authoritative
		c := cached.Clone()
		s.user = &c
	}
	s.mu.Unlock()

	profile, err := s.fetcher.Me(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "session restore failed", "error", err)
		// a caller giving up is not evidence of a bad token
		s.resolveAnonymous(ctx, gen, ctx.Err() == nil)
		return
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state = StateAuthenticated
	p := profile.Clone()
	s.user = &p
	s.mu.Unlock()
	s.markReady()

	err = s.persistIfCurrent(gen, func() error { return s.persist.Save(ctx, token, *profile) })
	if err != nil {
		s.log.Warn(ctx, "session profile persist failed", "error", err)
	}
	s.log.Debug(ctx, "session restored", "user_id", profile.ID)
}

// persistIfCurrent runs write only while no Login or Logout has happened
// since gen was taken.
func (s *Store) persistIfCurrent(gen uint64, write func() error) error {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	s.mu.RLock()
	current := s.gen == gen
	s.mu.RUnlock()
	if !current {
		return nil
	}
	return write()
}

func (s *Store) resolveAnonymous(ctx context.Context, gen uint64, purge bool) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if purge {
		err := s.persistIfCurrent(gen, func() error { return s.persist.Clear(context.WithoutCancel(ctx)) })
		if err != nil {
			s.log.Warn(ctx, "session purge failed", "error", err)
		}
	}
	s.markReady()
}

// Wait blocks until restoration has resolved or ctx is done.
func (s *Store) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loading reports whether the session is still inconclusive.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Loading()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{State: s.state, Token: s.token}
	if s.user != nil {
		u := s.user.Clone()
		snap.User = &u
	}
	return snap
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current profile, or nil.
func (s *Store) User() *models.UserProfile {
	return s.Snapshot().User
}

// Login replaces any current session with profile and token.
func (s *Store) Login(ctx context.Context, profile models.UserProfile, token string) error {
	if token == "" {
		return errors.New("login: empty token")
	}
	s.pmu.Lock()
	defer s.pmu.Unlock()

	if err := s.persist.Save(ctx, token, profile); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	p := profile.Clone()
	s.mu.Lock()
	s.gen++
	s.state = StateAuthenticated
	s.user = &p
	s.token = token
	s.mu.Unlock()
	s.markReady()

	s.log.Info(ctx, "signed in", "user_id", profile.ID, "role", profile.Role)
	return nil
}

// Logout clears the session. Memory is cleared even when the persisted pair
// could not be removed; that error is still returned.
func (s *Store) Logout(ctx context.Context) error {
	s.pmu.Lock()
	defer s.pmu.Unlock()

	err := s.persist.Clear(ctx)

	s.mu.Lock()
	s.gen++
	s.state = StateAnonymous
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.markReady()

	if err != nil {
		return fmt.Errorf("purge session: %w", err)
	}
	s.log.Info(ctx, "signed out")
	return nil
}

// UpdateUser merges patch into the current profile and persists it.
// It returns common.ErrAnonymous without side effects when nobody is signed in.
func (s *Store) UpdateUser(ctx context.Context, patch models.ProfilePatch) (models.UserProfile, error) {
	s.pmu.Lock()
	defer s.pmu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated || s.user == nil {
		return models.UserProfile{}, common.ErrAnonymous
	}

	merged := s.user.Merge(patch)
	if err := s.persist.Save(ctx, s.token, merged); err != nil {
		return models.UserProfile{}, fmt.Errorf("persist profile: %w", err)
	}
	s.user = &merged
	return merged.Clone(), nil
}

// Guard waits for restoration, then returns the current user if they hold
// one of roles (any role when none are given).
func (s *Store) Guard(ctx context.Context, roles ...models.Role) (models.UserProfile, error) {
	if err := s.Wait(ctx); err != nil {
		return models.UserProfile{}, err
	}

	u := s.User()
	if u == nil {
		return models.UserProfile{}, common.ErrAuthRequired
	}
	if len(roles) == 0 {
		return *u, nil
	}
	for _, r := range roles {
		if u.Role == r {
			return *u, nil
		}
	}
	return models.UserProfile{}, common.ErrForbidden
}

// tokenExpired reports whether tok is a JWT whose exp claim has passed.
// The signature is not checked; opaque tokens are never considered expired.
func tokenExpired(tok string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(now)
}
