package google

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"nineblocker/config"
)

var (
	// ErrNotConfigured reports a credentials record that is blank or still
	// holds the template placeholders.
	ErrNotConfigured = errors.New("google sheets not configured")
	// ErrReadOnly is returned by write calls on a client authenticated with
	// an API key only.
	ErrReadOnly = errors.New("google sheets client is read-only")
)

type Client struct {
	Service       *sheets.Service
	SpreadsheetID string
	readOnly      bool
}

// NewGoogleClient builds a Sheets client from the credentials record. With a
// service account file the client can write; otherwise it authenticates with
// the API key and is read-only.
func NewGoogleClient(ctx context.Context, gs config.GoogleSheets, opts ...option.ClientOption) (*Client, error) {
	if err := CheckConfigured(gs); err != nil {
		return nil, err
	}

	var auth option.ClientOption
	readOnly := gs.ServiceAccountFile == ""
	if readOnly {
		auth = option.WithAPIKey(gs.ApiKey)
	} else {
		b, err := os.ReadFile(gs.ServiceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(b, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account file: %w", err)
		}
		auth = option.WithHTTPClient(jwtConfig.Client(ctx))
	}

	srv, err := sheets.NewService(ctx, append([]option.ClientOption{auth}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Client{
		Service:       srv,
		SpreadsheetID: gs.SpreadsheetId,
		readOnly:      readOnly,
	}, nil
}

func (c *Client) ReadOnly() bool {
	return c.readOnly
}
