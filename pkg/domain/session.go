package domain

// Session is the client-held authentication context: the access token
// issued by the remote identity service plus the tenant the account
// belongs to. It lives in a signed browser cookie, never server-side.
type Session struct {
	AccessToken string `json:"access_token"`
	TenantID    string `json:"tenant_id"`
}

// IsValid reports whether the session carries the fields every
// authenticated call needs.
func (s *Session) IsValid() bool {
	return s.AccessToken != "" && s.TenantID != ""
}
