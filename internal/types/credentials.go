package types

// Credentials identify the shopper to the storefront backend. They are handed
// to every collaborator call explicitly and are never stored by this service.
type Credentials struct {
	AccessToken string
}

// NewCredentials builds credentials from the raw access token header value
func NewCredentials(accessToken string) Credentials {
	return Credentials{AccessToken: accessToken}
}

// IsAnonymous reports whether no access token was supplied
func (c Credentials) IsAnonymous() bool {
	return c.AccessToken == ""
}

// Headers returns the headers the storefront backend expects for an authenticated call
func (c Credentials) Headers() map[string]string {
	if c.IsAnonymous() {
		return nil
	}
	return map[string]string{HeaderAccessToken: c.AccessToken}
}
