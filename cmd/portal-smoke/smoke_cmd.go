package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type smokeOptions struct {
	BaseURL  string
	Email    string
	Password string
	SID      string
	Cookie   string
}

func newSmokeCmd() *cobra.Command {
	var opts smokeOptions

	cmd := &cobra.Command{
		Use:   "smoke --base-url <url> [--email <email> --password <pw> | --sid <cookie>]",
		Short: "Log in, fetch the session and navigation, then log out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.BaseURL) == "" {
				return errors.New("--base-url is required")
			}
			if strings.TrimSpace(opts.SID) == "" && strings.TrimSpace(opts.Email) == "" {
				return errors.New("either --sid or --email and --password are required")
			}

			client := newHTTPClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			base := strings.TrimRight(opts.BaseURL, "/")
			sid := opts.SID
			if sid == "" {
				var err error
				sid, err = login(ctx, client, base, opts)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "login ok")
			}

			for _, path := range []string{"/auth/me", "/api/navigation"} {
				if err := getWithSession(ctx, client, base+path, opts.Cookie, sid); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s ok\n", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "http://localhost:3200", "gateway base URL")
	cmd.Flags().StringVar(&opts.Email, "email", "", "login email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "login password")
	cmd.Flags().StringVar(&opts.SID, "sid", "", "session cookie value, skips the login step")
	cmd.Flags().StringVar(&opts.Cookie, "cookie", "sid", "session cookie name")

	return cmd
}

func login(ctx context.Context, client *http.Client, base string, opts smokeOptions) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    opts.Email,
		"password": opts.Password,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed: status=%d", resp.StatusCode)
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == opts.Cookie {
			return cookie.Value, nil
		}
	}
	return "", errors.New("login response carried no session cookie")
}

func getWithSession(ctx context.Context, client *http.Client, url, cookieName, sid string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%s failed: status=%d", url, resp.StatusCode)
	}
	return nil
}
