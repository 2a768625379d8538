package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"taskbot/internal/config"
)

const (
	// OAuth scope for Google Tasks
	tasksScope = "https://www.googleapis.com/auth/tasks"

	// OAuth callback timeout
	oauthCallbackTimeout = 5 * time.Minute

	// Token exchange timeout
	tokenExchangeTimeout = 30 * time.Second

	// Starting port for OAuth callback server
	oauthStartPort = 8085

	// Max port attempts
	oauthMaxPortAttempts = 5
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd authenticates with Google so the googletasks backend can be
// used. The token is stored in the config dir; a session started with the
// googletasks backend requires it.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with Google" }
func (c *LoginCmd) Usage() string     { return "login" }

func (c *LoginCmd) Run(ctx context.Context, env *Env, arg string) Result {
	cfg := env.Config

	if !cfg.HasOAuthClient() {
		env.Out.ShowError(oauthSetupText(cfg))
		return Continue
	}

	if cfg.HasToken() && isTokenValid(cfg) {
		env.Out.Show("You're already logged in.\n")
		return Continue
	}

	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		env.Out.ShowError(fmt.Sprintf("Could not read oauth_client.json: %v", err))
		return Continue
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		env.Out.ShowError(fmt.Sprintf("Invalid oauth_client.json: %v", err))
		return Continue
	}

	port, listener, err := findAvailablePort()
	if err != nil {
		env.Out.ShowError("Could not bind to a local port for the OAuth callback.")
		return Continue
	}
	defer listener.Close()

	oauthConfig.RedirectURL = fmt.Sprintf("http://localhost:%d/callback", port)

	verifier := oauth2.GenerateVerifier()
	authURL := oauthConfig.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.S256ChallengeOption(verifier),
	)

	env.Out.Show("Open this URL in your browser:\n" + authURL + "\n")

	codeCh := make(chan string, 1)
	errCh := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No code in callback", http.StatusBadRequest)
			errCh <- fmt.Errorf("no code in callback")
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body><h1>Authentication successful</h1><p>You may close this window.</p></body></html>")
		codeCh <- code
	})

	server := &http.Server{Handler: mux}
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	var code string
	select {
	case code = <-codeCh:
	case err := <-errCh:
		env.Out.ShowError(fmt.Sprintf("Login failed: %v", err))
		return Continue
	case <-time.After(oauthCallbackTimeout):
		env.Out.ShowError("Login timed out waiting for the browser callback.")
		return Continue
	case <-ctx.Done():
		env.Out.ShowError("Login cancelled.")
		return Continue
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)

	exchangeCtx, cancelExchange := context.WithTimeout(ctx, tokenExchangeTimeout)
	defer cancelExchange()

	token, err := oauthConfig.Exchange(exchangeCtx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		env.Out.ShowError(fmt.Sprintf("Failed to exchange code for token: %v", err))
		return Continue
	}

	if err := cfg.EnsureDir(); err != nil {
		env.Out.ShowError(fmt.Sprintf("Failed to create config directory: %v", err))
		return Continue
	}

	if err := saveToken(cfg.TokenPath(), token); err != nil {
		env.Out.ShowError(fmt.Sprintf("Failed to save token: %v", err))
		return Continue
	}

	env.Out.Show("Logged in. Start me with the googletasks backend to sync your list.\n")
	return Continue
}

// oauthSetupText explains how to obtain OAuth credentials.
func oauthSetupText(cfg *config.Config) string {
	return fmt.Sprintf(`oauth_client.json not found in %s

To authenticate with Google Tasks, you need OAuth credentials:

1. Go to https://console.cloud.google.com/apis/credentials
2. Create a project (or select an existing one)
3. Enable the Google Tasks API:
   https://console.cloud.google.com/apis/library/tasks.googleapis.com
4. Create OAuth 2.0 credentials:
   - Click 'Create Credentials' > 'OAuth client ID'
   - Choose 'Desktop app' as application type
   - Download the JSON file
5. Save it as:
   %s

Then type 'login' again.`, cfg.Dir, cfg.OAuthClientPath())
}

// findAvailablePort tries to find an available port starting from oauthStartPort.
func findAvailablePort() (int, net.Listener, error) {
	for i := 0; i < oauthMaxPortAttempts; i++ {
		port := oauthStartPort + i
		addr := fmt.Sprintf("localhost:%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			return port, listener, nil
		}
	}
	return 0, nil, fmt.Errorf("no available port found")
}

// isTokenValid checks if the stored token is parseable, carries a refresh
// token and can still authenticate (refreshing if needed).
func isTokenValid(cfg *config.Config) bool {
	data, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return false
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return false
	}
	if token.RefreshToken == "" {
		return false
	}

	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return false
	}
	oauthConfig, err := google.ConfigFromJSON(clientJSON, tasksScope)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tokenSource := oauthConfig.TokenSource(ctx, &token)
	_, err = tokenSource.Token()
	return err == nil
}

// saveToken saves an OAuth token to a file with mode 0600.
func saveToken(path string, token *oauth2.Token) error {
	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
