package api

import (
	"net/http"

	"github.com/dmitrijs2005/eventhive/internal/client/session"
	"github.com/dmitrijs2005/eventhive/internal/common"
)

// bearerTransport injects the stored bearer token into every outbound
// request. Public endpoints get the token opportunistically too, so the
// backend can populate viewer-specific fields (currentUserRSVP); a missing
// token simply means the request goes out anonymous.
type bearerTransport struct {
	sessions *session.Manager
	base     http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.sessions.Token(); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
