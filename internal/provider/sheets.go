package provider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"linkrotator/internal/models"
)

// SheetsConfig identifies the spreadsheet and the service account used to
// read it.
type SheetsConfig struct {
	ServiceAccountEmail string
	PrivateKey          string
	SpreadsheetID       string
	Range               string
}

func (c SheetsConfig) complete() bool {
	return c.ServiceAccountEmail != "" && c.PrivateKey != "" && c.SpreadsheetID != ""
}

// SheetsProvider reads the mapping table from a Google Sheets range.
type SheetsProvider struct {
	cfg     SheetsConfig
	service *sheets.Service
}

// NewSheetsProvider builds a provider authenticated with a service account
// JWT. Incomplete credentials do not fail construction; every fetch then
// reports ErrMissingCredentials instead.
func NewSheetsProvider(ctx context.Context, cfg SheetsConfig) (*SheetsProvider, error) {
	p := &SheetsProvider{cfg: cfg}
	if !cfg.complete() {
		slog.Warn("google sheets credentials incomplete, provider disabled",
			"email_set", cfg.ServiceAccountEmail != "",
			"key_set", cfg.PrivateKey != "",
			"sheet_set", cfg.SpreadsheetID != "")
		return p, nil
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(context.Background())))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	p.service = service
	return p, nil
}

// NewSheetsProviderWithOptions builds a provider from explicit client
// options, bypassing the service account flow.
func NewSheetsProviderWithOptions(ctx context.Context, cfg SheetsConfig, opts ...option.ClientOption) (*SheetsProvider, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsProvider{cfg: cfg, service: service}, nil
}

// FetchTable implements TableProvider.
func (p *SheetsProvider) FetchTable(ctx context.Context) (models.Table, error) {
	if p.service == nil || p.cfg.SpreadsheetID == "" {
		return models.Table{}, ErrMissingCredentials
	}

	resp, err := p.service.Spreadsheets.Values.Get(p.cfg.SpreadsheetID, p.cfg.Range).Context(ctx).Do()
	if err != nil {
		return models.Table{}, fmt.Errorf("%w: sheets values get: %w", ErrFetchFailed, err)
	}

	return tableFromValues(resp.Values), nil
}

func tableFromValues(values [][]interface{}) models.Table {
	if len(values) == 0 {
		return models.Table{}
	}
	table := models.Table{Header: stringCells(values[0])}
	for _, row := range values[1:] {
		table.Rows = append(table.Rows, stringCells(row))
	}
	return table
}

func stringCells(row []interface{}) []string {
	cells := make([]string, len(row))
	for i, v := range row {
		if v == nil {
			continue
		}
		cells[i] = fmt.Sprint(v)
	}
	return cells
}
