// Package auth covers the two identity providers: OAuth code exchange for
// mailbox/calendar access and the JWT the dashboard holds between requests.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"

	"github.com/candyyetszyu/ai-email-agent-venue-management/config"
)

type Provider string

const (
	ProviderGoogle    Provider = "google"
	ProviderMicrosoft Provider = "microsoft"
)

var googleScopes = []string{
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/calendar.readonly",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

var microsoftScopes = []string{
	"openid",
	"profile",
	"email",
	"offline_access",
	"https://graph.microsoft.com/Mail.Read",
	"https://graph.microsoft.com/Mail.Send",
	"https://graph.microsoft.com/Calendars.Read",
}

type OAuth struct {
	google    *oauth2.Config
	microsoft *oauth2.Config
}

func NewOAuth(cfg *config.Config) *OAuth {
	return &OAuth{
		google: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       googleScopes,
		},
		microsoft: &oauth2.Config{
			ClientID:     cfg.Microsoft.ClientID,
			ClientSecret: cfg.Microsoft.ClientSecret,
			RedirectURL:  cfg.Microsoft.RedirectURL,
			Endpoint:     microsoft.AzureADEndpoint(cfg.Microsoft.Tenant),
			Scopes:       microsoftScopes,
		},
	}
}

func (o *OAuth) config(p Provider) (*oauth2.Config, error) {
	switch p {
	case ProviderGoogle:
		return o.google, nil
	case ProviderMicrosoft:
		return o.microsoft, nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", p)
	}
}

// AuthCodeURL returns the provider's consent page URL.
func (o *OAuth) AuthCodeURL(p Provider, state string) (string, error) {
	cfg, err := o.config(p)
	if err != nil {
		return "", err
	}
	return cfg.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

// Exchange trades an authorization code for the provider token.
func (o *OAuth) Exchange(ctx context.Context, p Provider, code string) (*oauth2.Token, error) {
	cfg, err := o.config(p)
	if err != nil {
		return nil, err
	}

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	return token, nil
}
