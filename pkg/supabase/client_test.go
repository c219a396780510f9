package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labelforge/labelpress/pkg/domain"
)

func TestSignUp_PayloadAndHeaders(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	err := client.SignUp(context.Background(), NewSignUpRequest("a@example.com", "pw", "tenant-a"))
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	if gotPath != "/auth/v1/signup" {
		t.Errorf("path = %q, want %q", gotPath, "/auth/v1/signup")
	}
	if gotKey != "anon-key" {
		t.Errorf("apikey = %q, want %q", gotKey, "anon-key")
	}
	if gotBody["email"] != "a@example.com" {
		t.Errorf("email = %v, want %q", gotBody["email"], "a@example.com")
	}
	data, ok := gotBody["data"].(map[string]any)
	if !ok || data["tenant_id"] != "tenant-a" {
		t.Errorf("data.tenant_id = %v, want %q", gotBody["data"], "tenant-a")
	}
}

func TestSignUp_UpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"User already registered"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	err := client.SignUp(context.Background(), NewSignUpRequest("a@example.com", "pw", "t"))

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *domain.UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d, want %d", upstream.StatusCode, http.StatusUnprocessableEntity)
	}
	if upstream.Body != `{"msg":"User already registered"}` {
		t.Errorf("Body = %q, want raw upstream body", upstream.Body)
	}
}

func TestSignInWithPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/auth/v1/token")
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("grant_type = %q, want %q", got, "password")
		}
		w.Write([]byte(`{
			"access_token": "jwt-abc",
			"token_type": "bearer",
			"expires_in": 3600,
			"user": {"id": "u1", "email": "a@example.com", "user_metadata": {"tenant_id": "tenant-b"}}
		}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	resp, err := client.SignInWithPassword(context.Background(), "a@example.com", "pw")
	if err != nil {
		t.Fatalf("SignInWithPassword failed: %v", err)
	}

	if resp.AccessToken != "jwt-abc" {
		t.Errorf("AccessToken = %q, want %q", resp.AccessToken, "jwt-abc")
	}
	if resp.User.UserMetadata.TenantID != "tenant-b" {
		t.Errorf("TenantID = %q, want %q", resp.User.UserMetadata.TenantID, "tenant-b")
	}
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	_, err := client.SignInWithPassword(context.Background(), "a@example.com", "wrong")

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *domain.UpstreamError", err)
	}
}

func TestInsertDesign_AuthHeaders(t *testing.T) {
	var gotAuth, gotKey string
	var gotRecord domain.DesignRecord

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/receipt_designs" {
			t.Errorf("path = %q, want %q", r.URL.Path, "/rest/v1/receipt_designs")
		}
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		json.NewDecoder(r.Body).Decode(&gotRecord)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	record := domain.DesignRecord{
		ID:       "0c2e9f3e-1111-4222-8333-444455556666",
		TenantID: "tenant-a",
		Name:     "Label Design",
		Width:    400,
		Height:   200,
	}
	if err := client.InsertDesign(context.Background(), "jwt-abc", record); err != nil {
		t.Fatalf("InsertDesign failed: %v", err)
	}

	if gotAuth != "Bearer jwt-abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer jwt-abc")
	}
	if gotKey != "anon-key" {
		t.Errorf("apikey = %q, want %q", gotKey, "anon-key")
	}
	if gotRecord != record {
		t.Errorf("record = %+v, want %+v", gotRecord, record)
	}
}

func TestInsertDesign_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`duplicate key`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	err := client.InsertDesign(context.Background(), "jwt", domain.DesignRecord{ID: "x", TenantID: "t"})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("error = %v, want *domain.UpstreamError", err)
	}
	if upstream.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want %d", upstream.StatusCode, http.StatusConflict)
	}
}

func TestNetworkFailure(t *testing.T) {
	// Point at a closed server so the dial fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "anon-key"})
	err := client.SignUp(context.Background(), NewSignUpRequest("a@example.com", "pw", "t"))
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Errorf("error = %v, want ErrUpstreamUnavailable", err)
	}
}
