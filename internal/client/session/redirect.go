package session

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gugan-zemuria/notes-app/internal/common"
)

// redirectInfo is the classification of an OAuth redirect URL. At most one
// of the three credential kinds is acted upon, in this precedence order:
// error, implicit-flow tokens, authorization code.
type redirectInfo struct {
	errorCode    string
	accessToken  string
	refreshToken string
	expiresIn    int64
	code         string
}

func (r redirectInfo) empty() bool {
	return r.errorCode == "" && r.accessToken == "" && r.code == ""
}

// parseRedirect extracts auth material from a redirect URL. The provider
// may deliver values as query parameters (code, error) or inside the
// fragment (access_token, refresh_token, expires_in, code, error); the
// fragment itself is encoded as a query string.
func parseRedirect(raw string) (redirectInfo, error) {
	var info redirectInfo

	u, err := url.Parse(raw)
	if err != nil {
		return info, fmt.Errorf("%w: unparseable redirect url: %v", common.ErrInvalidToken, err)
	}

	query := u.Query()
	fragment, err := url.ParseQuery(u.Fragment)
	if err != nil {
		// a fragment that is not key=value pairs carries nothing for us
		fragment = url.Values{}
	}

	if v := query.Get("error"); v != "" {
		info.errorCode = v
	} else if v := fragment.Get("error"); v != "" {
		info.errorCode = v
	}

	info.accessToken = fragment.Get("access_token")
	info.refreshToken = fragment.Get("refresh_token")
	if v := fragment.Get("expires_in"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			info.expiresIn = n
		}
	}

	if v := query.Get("code"); v != "" {
		info.code = v
	} else {
		info.code = fragment.Get("code")
	}

	return info, nil
}

// Redacted returns the URL with one-time-use credential material removed,
// safe for logs. The browser original rewrote location history for the
// same reason: consumed fragments must not linger anywhere.
func Redacted(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	query := u.Query()
	for _, k := range []string{"code", "error"} {
		if query.Has(k) {
			query.Set(k, "redacted")
		}
	}
	u.RawQuery = query.Encode()
	u.Fragment = ""
	return u.String()
}
