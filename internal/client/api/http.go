package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gugan-zemuria/notes-app/internal/client/models"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// Cookie names the backend expects credentials under.
const (
	AccessTokenCookie  = "sb-access-token"
	RefreshTokenCookie = "sb-refresh-token"
)

// HTTPClient talks JSON over HTTPS to the notes backend. Credentials ride
// in cookies held by the client's jar; SetAuthCookies hydrates the jar
// from persisted credential material at startup.
type HTTPClient struct {
	base *url.URL
	http *http.Client
	log  logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL (including the
// /api prefix). timeout bounds every request.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &HTTPClient{
		base: base,
		http: &http.Client{Jar: jar, Timeout: timeout},
		log:  log,
	}, nil
}

// SetAuthCookies places the session cookies into the jar for the backend
// host, mirroring what the OAuth redirect would have set in a browser.
func (c *HTTPClient) SetAuthCookies(accessToken, refreshToken string) {
	cookies := []*http.Cookie{{Name: AccessTokenCookie, Value: accessToken, Path: "/"}}
	if refreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshTokenCookie, Value: refreshToken, Path: "/"})
	}
	c.http.Jar.SetCookies(c.base, cookies)
}

// ClearAuthCookies drops all cookies by replacing the jar.
func (c *HTTPClient) ClearAuthCookies() {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return
	}
	c.http.Jar = jar
}

// AuthCookies returns the session cookies currently held in the jar,
// whether hydrated locally or issued by the server via Set-Cookie. Empty
// strings mean the jar holds no session.
func (c *HTTPClient) AuthCookies() (accessToken, refreshToken string) {
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		switch cookie.Name {
		case AccessTokenCookie:
			accessToken = cookie.Value
		case RefreshTokenCookie:
			refreshToken = cookie.Value
		}
	}
	return accessToken, refreshToken
}

func (c *HTTPClient) endpoint(path string) string {
	return c.base.String() + path
}

// do issues one request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx responses become *APIError carrying the backend's
// {"error": "..."} message.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	requestID := uuid.NewString()
	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: reading response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &payload); err == nil {
			apiErr.Message = payload.Error
		}
		c.log.Debug(ctx, "api error response",
			"method", method, "path", path, "request_id", requestID,
			"status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return nil
}

// userEnvelope matches the backend's auth responses: {"user": {...}}.
type userEnvelope struct {
	User *models.User `json:"user"`
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	var env userEnvelope
	err := c.do(ctx, http.MethodPost, "/auth/signup", map[string]string{
		"email": email, "password": password,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	var env userEnvelope
	err := c.do(ctx, http.MethodPost, "/auth/signin", map[string]string{
		"email": email, "password": password,
	}, &env)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// GoogleAuthURL asks the backend to start the OAuth dance and returns the
// provider URL the user must visit.
func (c *HTTPClient) GoogleAuthURL(ctx context.Context) (string, error) {
	var payload struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/google", nil, &payload); err != nil {
		return "", err
	}
	return payload.URL, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/signout", nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var env userEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/user", nil, &env); err != nil {
		return nil, err
	}
	return env.User, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", map[string]string{"email": email}, nil)
}

// ExchangeCode trades an authorization code for a server-side session.
func (c *HTTPClient) ExchangeCode(ctx context.Context, code string) error {
	return c.do(ctx, http.MethodPost, "/auth/callback", map[string]string{"code": code}, nil)
}

// AuthenticateWithToken registers implicit-flow tokens with the backend.
func (c *HTTPClient) AuthenticateWithToken(ctx context.Context, accessToken, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/token", map[string]string{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

func (c *HTTPClient) ListNotes(ctx context.Context, filters models.Filters, page, limit int) (*models.NoteList, error) {
	params := url.Values{}
	if filters.Category != "" {
		params.Set("category", filters.Category)
	}
	if len(filters.Labels) > 0 {
		params.Set("labels", strings.Join(filters.Labels, ","))
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Drafts != nil {
		params.Set("drafts", strconv.FormatBool(*filters.Drafts))
	}
	if filters.Visibility != "" {
		params.Set("visibility", filters.Visibility)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/notes?"+params.Encode(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeNoteList(raw, limit)
}

func (c *HTTPClient) GetNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+id, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) CreateNote(ctx context.Context, draft models.NoteDraft) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes", draft, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) UpdateNote(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPut, "/notes/"+id, draft, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notes/"+id, nil, nil)
}

func (c *HTTPClient) PublishNote(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPatch, "/notes/"+id+"/publish", nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) SetNoteVisibility(ctx context.Context, id string, isPublic bool) (*models.Note, error) {
	var note models.Note
	err := c.do(ctx, http.MethodPatch, "/notes/"+id+"/visibility", map[string]bool{
		"is_public": isPublic,
	}, &note)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) AutosaveNote(ctx context.Context, id string, draft models.NoteDraft) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodPost, "/notes/"+id+"/autosave", draft, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// PublicNote fetches a publicly shared note by its opaque share token.
// Requires no session.
func (c *HTTPClient) PublicNote(ctx context.Context, shareToken string) (*models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodGet, "/public/"+shareToken, nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	var created models.Category
	if err := c.do(ctx, http.MethodPost, "/categories", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListLabels(ctx context.Context) ([]models.Label, error) {
	var labels []models.Label
	if err := c.do(ctx, http.MethodGet, "/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *HTTPClient) CreateLabel(ctx context.Context, label models.Label) (*models.Label, error) {
	var created models.Label
	if err := c.do(ctx, http.MethodPost, "/labels", label, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
