package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sethvargo/go-retry"

	"github.com/gugan-zemuria/notes-app/internal/client/api"
	"github.com/gugan-zemuria/notes-app/internal/client/credentials"
	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/common"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// Error codes surfaced on failed sessions. OAuth provider codes (e.g.
// access_denied) pass through verbatim.
const (
	CodeTokenError     = "token_error"
	CodeExchangeFailed = "exchange_failed"
	CodeAuthTimeout    = "auth_timeout"
)

// CookieJar is the slice of the HTTP client the bootstrapper needs: it
// mirrors credential material into the transport's cookie jar at startup,
// and reads back whatever the server issued via Set-Cookie so that it can
// be persisted.
type CookieJar interface {
	SetAuthCookies(accessToken, refreshToken string)
	ClearAuthCookies()
	AuthCookies() (accessToken, refreshToken string)
}

// Options are the retry/await policy knobs. All have defaults; none are
// protocol requirements.
type Options struct {
	// RefreshAttempts bounds identity refresh after a token or code
	// exchange; RefreshInterval is the constant backoff between tries.
	RefreshAttempts uint64
	RefreshInterval time.Duration

	// AwaitAttempts/AwaitInterval drive AwaitIdentity's polling loop.
	AwaitAttempts int
	AwaitInterval time.Duration
}

func (o *Options) applyDefaults() {
	if o.RefreshAttempts == 0 {
		o.RefreshAttempts = 3
	}
	if o.RefreshInterval == 0 {
		o.RefreshInterval = time.Second
	}
	if o.AwaitAttempts == 0 {
		o.AwaitAttempts = 5
	}
	if o.AwaitInterval == 0 {
		o.AwaitInterval = 500 * time.Millisecond
	}
}

// Bootstrapper establishes and maintains the Session. It is the only
// mutator of session state; all pages/commands read through Current.
type Bootstrapper struct {
	api     api.Client
	creds   credentials.Store
	cookies CookieJar
	log     logging.Logger
	opts    Options

	// sleep is injected so tests can run the await loop without real
	// delays.
	sleep func(ctx context.Context, d time.Duration) error

	mu      sync.RWMutex
	session Session
}

// New constructs a Bootstrapper. cookies may be nil when the api client
// manages its own credential carriage (fakes in tests).
func New(apiClient api.Client, creds credentials.Store, cookies CookieJar, log logging.Logger, opts Options) *Bootstrapper {
	opts.applyDefaults()
	return &Bootstrapper{
		api:     apiClient,
		creds:   creds,
		cookies: cookies,
		log:     log,
		opts:    opts,
		sleep:   sleepCtx,
		session: Session{Status: StatusUnresolved},
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Current returns a snapshot of the session. Safe for concurrent readers.
func (b *Bootstrapper) Current() Session {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.session
}

func (b *Bootstrapper) set(s Session) Session {
	b.mu.Lock()
	b.session = s
	b.mu.Unlock()
	return s
}

// Bootstrap resolves the session on a plain start: hydrate the cookie jar
// from persisted credentials (if any), then ask the backend who we are.
func (b *Bootstrapper) Bootstrap(ctx context.Context) (Session, error) {
	if b.creds != nil {
		stored, err := b.creds.Load(ctx)
		if err != nil {
			b.log.Warn(ctx, "failed to load stored credentials", "error", err)
		} else if stored != nil && b.cookies != nil {
			b.cookies.SetAuthCookies(stored.AccessToken, stored.RefreshToken)
		}
	}
	return b.Resolve(ctx, "")
}

// Resolve classifies the given redirect URL and establishes the session.
// An empty redirectURL is a plain load. Precedence: provider error, then
// implicit-flow tokens, then authorization code, then existing session.
//
// The returned Session is also retained and visible via Current. A Failed
// session is a resolved outcome, not a Go error; the error return is for
// local/unexpected failures only.
func (b *Bootstrapper) Resolve(ctx context.Context, redirectURL string) (Session, error) {
	b.set(Session{Status: StatusResolving})

	info, err := parseRedirect(redirectURL)
	if err != nil {
		return b.set(Session{Status: StatusFailed, ErrorCode: CodeTokenError}), err
	}

	switch {
	case info.errorCode != "":
		// Provider said no. Do not retry, do not attempt any exchange.
		b.log.Warn(ctx, "oauth redirect carried an error", "code", info.errorCode)
		return b.set(Session{Status: StatusFailed, ErrorCode: info.errorCode}), nil

	case info.accessToken != "":
		return b.resolveImplicit(ctx, info)

	case info.code != "":
		return b.resolveCode(ctx, info.code)

	default:
		return b.resolveExisting(ctx)
	}
}

// resolveImplicit handles tokens delivered directly in the fragment:
// persist them, register them with the backend, then confirm the identity.
func (b *Bootstrapper) resolveImplicit(ctx context.Context, info redirectInfo) (Session, error) {
	b.log.Info(ctx, "resolving session from implicit-flow tokens")

	creds := credentials.Credentials{
		AccessToken:  info.accessToken,
		RefreshToken: info.refreshToken,
		ExpiresAt:    tokenExpiry(info.accessToken, info.expiresIn),
	}
	if b.creds != nil {
		if err := b.creds.Save(ctx, creds); err != nil {
			b.log.Warn(ctx, "failed to persist credentials", "error", err)
		}
	}
	if b.cookies != nil {
		b.cookies.SetAuthCookies(creds.AccessToken, creds.RefreshToken)
	}

	if err := b.api.AuthenticateWithToken(ctx, creds.AccessToken, creds.RefreshToken); err != nil {
		b.log.Error(ctx, "token authentication rejected", "error", err)
		return b.set(Session{Status: StatusFailed, ErrorCode: CodeTokenError}), nil
	}

	return b.confirmIdentity(ctx, CodeTokenError)
}

// resolveCode handles the authorization-code flow: exchange the code via
// the backend callback, then confirm the identity. The session cookies the
// exchange issued are persisted so the session survives a restart.
func (b *Bootstrapper) resolveCode(ctx context.Context, code string) (Session, error) {
	b.log.Info(ctx, "resolving session from authorization code")

	if err := b.api.ExchangeCode(ctx, code); err != nil {
		b.log.Error(ctx, "code exchange rejected", "error", err)
		return b.set(Session{Status: StatusFailed, ErrorCode: CodeExchangeFailed}), nil
	}
	b.persistJarCredentials(ctx)

	return b.confirmIdentity(ctx, CodeExchangeFailed)
}

// resolveExisting handles a plain load: one round trip to the backend.
// No session is a normal outcome, not an error.
func (b *Bootstrapper) resolveExisting(ctx context.Context) (Session, error) {
	user, err := b.api.CurrentUser(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return b.set(Session{Status: StatusResolved}), nil
		}
		return b.set(Session{Status: StatusFailed, ErrorCode: CodeTokenError}), err
	}
	if user == nil {
		return b.set(Session{Status: StatusResolved}), nil
	}
	b.log.Info(ctx, "existing session resolved", "email", user.Email)
	return b.set(Session{Status: StatusResolved, Identity: user}), nil
}

// confirmIdentity fetches the current user with bounded constant-backoff
// retry; a fresh exchange may take a beat to become visible server-side.
func (b *Bootstrapper) confirmIdentity(ctx context.Context, failCode string) (Session, error) {
	var user *models.User

	backoff := retry.WithMaxRetries(b.opts.RefreshAttempts-1, retry.NewConstant(b.opts.RefreshInterval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		u, err := b.api.CurrentUser(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		if u == nil {
			return retry.RetryableError(common.ErrUnauthorized)
		}
		user = u
		return nil
	})
	if err != nil {
		b.log.Error(ctx, "identity refresh exhausted retries", "error", err)
		return b.set(Session{Status: StatusFailed, ErrorCode: failCode}), nil
	}

	b.log.Info(ctx, "session resolved", "email", user.Email)
	return b.set(Session{Status: StatusResolved, Identity: user}), nil
}

// AwaitIdentity polls for the identity to become visible after an OAuth
// hand-off, up to AwaitAttempts tries at fixed AwaitInterval spacing.
// Exhaustion yields a Failed session with CodeAuthTimeout — the caller is
// expected to route the user back to a sign-in surface.
func (b *Bootstrapper) AwaitIdentity(ctx context.Context) (Session, error) {
	if s := b.Current(); s.Authenticated() {
		return s, nil
	}

	for attempt := 0; attempt < b.opts.AwaitAttempts; attempt++ {
		if err := b.sleep(ctx, b.opts.AwaitInterval); err != nil {
			return b.Current(), err
		}
		user, err := b.api.CurrentUser(ctx)
		if err == nil && user != nil {
			return b.set(Session{Status: StatusResolved, Identity: user}), nil
		}
		b.log.Debug(ctx, "identity not visible yet",
			"attempt", attempt+1, "max_attempts", b.opts.AwaitAttempts)
	}

	return b.set(Session{Status: StatusFailed, ErrorCode: CodeAuthTimeout}), nil
}

// SignUp creates an account. The backend may require email confirmation,
// so no identity is assumed.
func (b *Bootstrapper) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return b.api.SignUp(ctx, email, password)
}

// SignIn authenticates with email/password and publishes the identity.
// The server answers with Set-Cookie session material; that is written
// back to the credential store so the session survives a restart.
func (b *Bootstrapper) SignIn(ctx context.Context, email, password string) (Session, error) {
	user, err := b.api.SignIn(ctx, email, password)
	if err != nil {
		return b.Current(), err
	}
	b.persistJarCredentials(ctx)
	return b.set(Session{Status: StatusResolved, Identity: user}), nil
}

// persistJarCredentials copies the server-issued session cookies out of
// the transport jar into the credential store. Without this, any flow
// where credentials arrive via Set-Cookie (signin, code exchange) would
// only live in process memory.
func (b *Bootstrapper) persistJarCredentials(ctx context.Context) {
	if b.creds == nil || b.cookies == nil {
		return
	}
	access, refresh := b.cookies.AuthCookies()
	if access == "" {
		return
	}
	creds := credentials.Credentials{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    tokenExpiry(access, 0),
	}
	if err := b.creds.Save(ctx, creds); err != nil {
		b.log.Warn(ctx, "failed to persist credentials", "error", err)
	}
}

// SignInWithGoogle returns the provider URL to visit; the session stays
// untouched until the redirect URL comes back through Resolve.
func (b *Bootstrapper) SignInWithGoogle(ctx context.Context) (string, error) {
	return b.api.GoogleAuthURL(ctx)
}

// SignOut ends the backend session and wipes local credential material.
// The session becomes resolved-with-no-identity, not failed.
func (b *Bootstrapper) SignOut(ctx context.Context) error {
	if err := b.api.SignOut(ctx); err != nil {
		return err
	}
	if b.creds != nil {
		if err := b.creds.Clear(ctx); err != nil {
			b.log.Warn(ctx, "failed to clear stored credentials", "error", err)
		}
	}
	if b.cookies != nil {
		b.cookies.ClearAuthCookies()
	}
	b.set(Session{Status: StatusResolved})
	return nil
}

// ResetPassword requests a password-reset email.
func (b *Bootstrapper) ResetPassword(ctx context.Context, email string) error {
	return b.api.ResetPassword(ctx, email)
}

// tokenExpiry derives credential expiry from the explicit expires_in if
// present, else from the access token's exp claim (decoded without
// signature verification; the client only needs the timestamp, the
// backend does the verifying). Zero means no known expiry.
func tokenExpiry(accessToken string, expiresIn int64) time.Time {
	if expiresIn > 0 {
		return time.Now().Add(time.Duration(expiresIn) * time.Second)
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
