package session

import (
	"context"
	"net/mail"
	"reflect"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/synapse/core"
	"github.com/trezcool/synapse/core/profile"
)

var (
	// errors
	ErrInvalidCredentials = core.NewAuthError("invalid credentials")
	ErrEmailInUse         = core.NewAuthError("email in use")
	ErrNoActiveSession    = core.NewAuthError("no active session")
	ErrSessionChanged     = core.NewDomainError("session changed")
	// ErrSuperseded is returned by a login or signup whose result was discarded because a later one was committed meanwhile.
	ErrSuperseded = errors.New("superseded by a later session change")
)

const (
	newProfileName  = "New User"
	avatarURLPrefix = "https://i.pravatar.cc/100?u="
)

type ChangeKind int

const (
	Activated ChangeKind = iota + 1
	Deactivated
	Updated
)

func (k ChangeKind) String() string {
	switch k {
	case Activated:
		return "activated"
	case Deactivated:
		return "deactivated"
	case Updated:
		return "updated"
	}
	return "unknown"
}

// Change describes a session change. Profile is nil once deactivated.
type Change struct {
	Kind    ChangeKind
	Profile *profile.Profile
}

// Observer is called once per session change, in commit order. It may read the Manager
// (Current, Loading) but must not call its mutating methods synchronously.
type Observer func(Change)

type observerEntry struct {
	id int
	fn Observer
}

type Deps struct {
	Profiles    profile.Repository
	Credentials CredentialStore
	Policy      Policy
	Validate    *validator.Validate
	Mailer      core.EmailService
	Logger      core.Logger
	Now         func() time.Time
	NewID       func() string
}

// Manager owns the active profile. All enrollment & progress mutations go through Apply.
type Manager struct {
	profiles    profile.Repository
	credentials CredentialStore
	policy      Policy
	validate    *validator.Validate
	mailer      core.EmailService
	log         core.Logger
	now         func() time.Time
	newID       func() string

	notifyMu sync.Mutex // serialises transitions & their notifications; taken before mu

	mu        sync.Mutex // guards the fields below
	active    *profile.Profile
	loading   bool
	seq       uint64 // last ticket handed out
	committed uint64 // ticket of the last committed identity change

	resolveOnce sync.Once
	resolveErr  error

	obsMu     sync.Mutex
	observers []observerEntry
	nextObsID int
}

func NewManager(deps Deps) *Manager {
	m := &Manager{
		profiles:    deps.Profiles,
		credentials: deps.Credentials,
		policy:      deps.Policy,
		validate:    deps.Validate,
		mailer:      deps.Mailer,
		log:         deps.Logger,
		now:         deps.Now,
		newID:       deps.NewID,
		loading:     true,
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newID == nil {
		m.newID = NewProfileID
	}
	return m
}

// Current returns a copy of the active profile.
func (m *Manager) Current() (profile.Profile, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return profile.Profile{}, false
	}
	return m.active.Clone(), true
}

// Loading reports whether the initial resolution is still pending.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Subscribe registers an observer and returns the function removing it.
func (m *Manager) Subscribe(obs Observer) (unsubscribe func()) {
	m.obsMu.Lock()
	m.nextObsID++
	id := m.nextObsID
	m.observers = append(m.observers, observerEntry{id: id, fn: obs})
	m.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.obsMu.Lock()
			defer m.obsMu.Unlock()
			for i, e := range m.observers {
				if e.id == id {
					m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// begin hands out the ticket of an identity change. Tickets only supersede each other once committed.
func (m *Manager) begin() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return m.seq
}

// snapshot must be called with mu held.
func (m *Manager) snapshot(kind ChangeKind) Change {
	change := Change{Kind: kind}
	if m.active != nil {
		p := m.active.Clone()
		change.Profile = &p
	}
	return change
}

// deliver must be called with notifyMu held and mu released.
func (m *Manager) deliver(change Change) {
	m.obsMu.Lock()
	observers := make([]observerEntry, len(m.observers))
	copy(observers, m.observers)
	m.obsMu.Unlock()

	for _, e := range observers {
		e.fn(change)
	}
}

// Resolve restores the session from the saved credential. Only the first call does the work;
// later calls return its result. A missing, invalid or stale credential leaves the session
// unauthenticated (and is cleared); loading ends on every path.
func (m *Manager) Resolve(ctx context.Context) error {
	m.resolveOnce.Do(func() {
		m.resolveErr = m.resolve(ctx)
	})
	return m.resolveErr
}

func (m *Manager) resolve(ctx context.Context) error {
	ticket := m.begin()

	var (
		p   *profile.Profile
		err error
	)
	subject, lerr := m.credentials.Load(ctx)
	switch {
	case lerr == nil:
		found, gerr := m.profiles.GetProfileByID(ctx, subject)
		switch {
		case gerr == nil:
			p = &found
		case errors.Is(gerr, profile.ErrNotFound):
			m.log.Warn("resolving session: no profile for saved credential", map[string]interface{}{"subject": subject})
			m.clearCredential(ctx)
		default:
			err = errors.Wrap(gerr, "resolving session")
		}
	case errors.Is(lerr, ErrNoCredential):
	case errors.Is(lerr, ErrInvalidCredential):
		m.log.Warn("resolving session: discarding saved credential", lerr)
		m.clearCredential(ctx)
	default:
		err = errors.Wrap(lerr, "loading credential")
	}

	if p == nil {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
		return err
	}
	if _, aerr := m.activate(ctx, ticket, *p, nil); aerr != nil {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
		return err
	}
	m.log.Info("session resolved", *p)
	return err
}

// Login activates the profile matching email if the policy accepts password.
// A failed login leaves the session, and any login still in flight, untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (profile.Profile, error) {
	email = core.CleanString(email, true /* lower */)
	ticket := m.begin()

	p, err := m.profiles.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrInvalidCredentials
		}
		return profile.Profile{}, errors.Wrap(err, "looking up profile")
	}
	if err = m.policy.Authenticate(p, password); err != nil {
		return profile.Profile{}, ErrInvalidCredentials
	}

	if p, err = m.activate(ctx, ticket, p, nil); err != nil {
		return profile.Profile{}, err
	}
	m.log.Info("logged in", p)
	return p.Clone(), nil
}

// Signup creates a Student profile for email and activates it.
// A superseded signup stores nothing.
func (m *Manager) Signup(ctx context.Context, email, password string) (profile.Profile, error) {
	np := profile.NewProfile{Email: email, Password: password}
	if err := np.Validate(m.validate); err != nil {
		return profile.Profile{}, err
	}
	ticket := m.begin()

	id := m.newID()
	p := profile.Profile{
		ID:                id,
		Name:              newProfileName,
		Role:              profile.RoleStudent,
		Email:             np.Email,
		AvatarURL:         avatarURLPrefix + id,
		EnrolledCourseIDs: profile.IDSet{},
		Progress:          make(map[int]profile.IDSet),
		CreatedAt:         m.now().UTC(),
	}
	if np.Password != "" {
		if err := p.SetPassword(np.Password); err != nil {
			return profile.Profile{}, errors.Wrap(err, "hashing password")
		}
	}

	p, err := m.activate(ctx, ticket, p, func(p profile.Profile) (profile.Profile, error) {
		created, cerr := m.profiles.CreateProfile(ctx, p)
		if cerr != nil {
			if errors.Is(cerr, profile.ErrEmailExists) {
				return profile.Profile{}, ErrEmailInUse
			}
			return profile.Profile{}, errors.Wrap(cerr, "creating profile")
		}
		return created, nil
	})
	if err != nil {
		return profile.Profile{}, err
	}
	m.sendWelcome(p)
	m.log.Info("signed up", p)
	return p.Clone(), nil
}

// activate commits p as the active profile unless a transition with a later ticket has already
// been committed. create, if set, stores p first; it runs in the same critical section.
func (m *Manager) activate(
	ctx context.Context,
	ticket uint64,
	p profile.Profile,
	create func(profile.Profile) (profile.Profile, error),
) (profile.Profile, error) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.committed > ticket {
		m.mu.Unlock()
		return profile.Profile{}, ErrSuperseded
	}
	if create != nil {
		created, err := create(p)
		if err != nil {
			m.mu.Unlock()
			return profile.Profile{}, err
		}
		p = created
	}
	m.committed = ticket
	m.loading = false
	m.active = &p
	if err := m.credentials.Save(ctx, p.ID); err != nil {
		m.log.Warn("saving credential", err, p)
	}
	change := m.snapshot(Activated)
	m.mu.Unlock()

	m.deliver(change)
	return p, nil
}

// Logout clears the active profile and supersedes in-flight logins.
// Logging out without a session is a no-op.
func (m *Manager) Logout(ctx context.Context) error {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	m.seq++
	m.committed = m.seq
	if m.active == nil {
		m.mu.Unlock()
		return nil
	}
	prev := *m.active
	m.active = nil
	m.clearCredential(ctx)
	change := m.snapshot(Deactivated)
	m.mu.Unlock()

	m.deliver(change)
	m.log.Info("logged out", prev)
	return nil
}

// Apply runs fn on the latest active profile and commits the result. profileID is the identity
// the caller expects to be active; if another profile is active, nothing is applied.
// If fn fails, the active profile is left untouched.
func (m *Manager) Apply(ctx context.Context, profileID string, fn func(p *profile.Profile) error) (profile.Profile, error) {
	if err := ctx.Err(); err != nil {
		return profile.Profile{}, err
	}

	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if m.active == nil {
		m.mu.Unlock()
		return profile.Profile{}, ErrNoActiveSession
	}
	if m.active.ID != profileID {
		m.mu.Unlock()
		return profile.Profile{}, ErrSessionChanged
	}

	draft := m.active.Clone()
	if err := fn(&draft); err != nil {
		m.mu.Unlock()
		return profile.Profile{}, err
	}
	if reflect.DeepEqual(draft, *m.active) {
		m.mu.Unlock()
		return draft, nil
	}
	m.active = &draft
	change := m.snapshot(Updated)
	m.mu.Unlock()

	m.deliver(change)
	return draft.Clone(), nil
}

func (m *Manager) clearCredential(ctx context.Context) {
	if err := m.credentials.Clear(ctx); err != nil {
		m.log.Warn("clearing credential", err)
	}
}

func (m *Manager) sendWelcome(p profile.Profile) {
	if m.mailer == nil {
		return
	}
	m.mailer.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: p.Name, Address: p.Email}},
		Subject:      "Welcome to Synapse",
		TemplateName: "welcome",
		TemplateData: p,
	})
}
