package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/candyyetszyu/ai-email-agent-venue-management/internal/auth"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	provider := auth.Provider(chi.URLParam(r, "provider"))

	authURL, err := s.oauth.AuthCodeURL(provider, "state")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	provider := auth.Provider(chi.URLParam(r, "provider"))
	code := r.URL.Query().Get("code")
	if code == "" {
		s.redirectLoginError(w, r)
		return
	}

	token, err := s.oauth.Exchange(r.Context(), provider, code)
	if err != nil {
		s.log.Error("oauth exchange failed", zap.String("provider", string(provider)), zap.Error(err))
		s.redirectLoginError(w, r)
		return
	}

	profile, err := fetchProfile(r.Context(), provider, token.AccessToken)
	if err != nil {
		s.log.Error("fetching profile failed", zap.String("provider", string(provider)), zap.Error(err))
		s.redirectLoginError(w, r)
		return
	}

	signed, err := s.tokens.Issue(auth.User{
		ID:          profile.ID,
		Email:       profile.Email,
		Name:        profile.Name,
		Provider:    provider,
		AccessToken: token.AccessToken,
	})
	if err != nil {
		s.log.Error("issuing token failed", zap.Error(err))
		s.redirectLoginError(w, r)
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s&provider=%s",
		s.cfg.Server.FrontendURL, url.QueryEscape(signed), provider)
	http.Redirect(w, r, redirect, http.StatusFound)
}

func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.cfg.Server.FrontendURL+"/login?error=Authentication failed", http.StatusFound)
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		s.respondError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	claims, err := s.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		s.respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]interface{}{
			"id":       claims.Subject,
			"email":    claims.Email,
			"name":     claims.Name,
			"provider": claims.Provider,
		},
	})
}

type profile struct {
	ID    string
	Email string
	Name  string
}

// fetchProfile resolves the signed-in user's identity from the provider.
func fetchProfile(ctx context.Context, provider auth.Provider, accessToken string) (*profile, error) {
	var endpoint string
	switch provider {
	case auth.ProviderGoogle:
		endpoint = "https://www.googleapis.com/oauth2/v2/userinfo"
	case auth.ProviderMicrosoft:
		endpoint = "https://graph.microsoft.com/v1.0/me"
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if provider == auth.ProviderGoogle {
		var info struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, err
		}
		return &profile{ID: info.ID, Email: info.Email, Name: info.Name}, nil
	}

	var info struct {
		ID                string `json:"id"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		DisplayName       string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	email := info.Mail
	if email == "" {
		email = info.UserPrincipalName
	}
	return &profile{ID: info.ID, Email: email, Name: info.DisplayName}, nil
}
