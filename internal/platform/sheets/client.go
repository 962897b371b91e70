// Package sheets talks to the Apps-Script endpoint that fronts the shared
// spreadsheet. The wire format is the one the original browser client used: a
// single form field "data" carrying `{"action": ..., ...}` JSON, answered by
// `{"success": ..., ...}`. Calls are single-shot; the callers treat failures
// as best-effort and move on.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	apiURL     string
	httpClient *http.Client
}

func New(apiURL string, timeout time.Duration) *Client {
	if apiURL == "" {
		return nil
	}
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a spreadsheet endpoint is configured. A nil client
// is a valid "sync disabled" client.
func (c *Client) Enabled() bool {
	return c != nil && c.apiURL != ""
}

// DayEntry mirrors the spreadsheet's punch columns. Field names are the
// legacy Portuguese ones; changing them would orphan every saved record.
type DayEntry struct {
	ClockIn    string `json:"entrada"`
	BreakStart string `json:"iniInt"`
	BreakEnd   string `json:"fimInt"`
	ClockOut   string `json:"saida"`
}

// ConfigEntry mirrors the spreadsheet's pay-config columns. Pointers keep
// absent cells distinguishable from explicit zeroes.
type ConfigEntry struct {
	Name           string   `json:"nome,omitempty"`
	BaseSalary     *float64 `json:"salario,omitempty"`
	P1             *float64 `json:"percentual1,omitempty"`
	P2             *float64 `json:"percentual2,omitempty"`
	P3             *float64 `json:"percentual3,omitempty"`
	P4             *float64 `json:"percentual4,omitempty"`
	P5             *float64 `json:"percentual5,omitempty"`
	RestDayPremium *float64 `json:"percentualFolga,omitempty"`
	QuotaSun       *float64 `json:"jornadaDom,omitempty"`
	QuotaMon       *float64 `json:"jornadaSeg,omitempty"`
	QuotaTue       *float64 `json:"jornadaTer,omitempty"`
	QuotaWed       *float64 `json:"jornadaQua,omitempty"`
	QuotaThu       *float64 `json:"jornadaQui,omitempty"`
	QuotaFri       *float64 `json:"jornadaSex,omitempty"`
	QuotaSat       *float64 `json:"jornadaSab,omitempty"`
	RestQuota      *float64 `json:"jornadaDescanso,omitempty"`
}

// HolidayEntry mirrors the spreadsheet's per-date calendar entries.
type HolidayEntry struct {
	Kind        string `json:"tipo"`
	Description string `json:"descricao"`
}

type envelope struct {
	Success   bool                    `json:"success"`
	Error     string                  `json:"error"`
	Employees []string                `json:"funcionarios"`
	Configs   map[string]ConfigEntry  `json:"configs"`
	Holidays  map[string]HolidayEntry `json:"feriados"`
	Day       map[string]DayEntry     `json:"dados"`
}

func (c *Client) call(ctx context.Context, action string, params map[string]any) (*envelope, error) {
	payload := map[string]any{"action": action}
	for k, v := range params {
		payload[k] = v
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	form := url.Values{"data": {string(raw)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets %s: %w", action, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("sheets %s: decode response: %w", action, err)
	}
	if !env.Success {
		return nil, fmt.Errorf("sheets %s: %s", action, env.Error)
	}
	return &env, nil
}

func (c *Client) LoadEmployees(ctx context.Context) ([]string, error) {
	env, err := c.call(ctx, "carregarFuncionarios", nil)
	if err != nil {
		return nil, err
	}
	return env.Employees, nil
}

func (c *Client) SaveEmployees(ctx context.Context, names []string) error {
	_, err := c.call(ctx, "salvarFuncionarios", map[string]any{"funcionarios": names})
	return err
}

func (c *Client) LoadConfigs(ctx context.Context) (map[string]ConfigEntry, error) {
	env, err := c.call(ctx, "carregarConfigs", nil)
	if err != nil {
		return nil, err
	}
	return env.Configs, nil
}

func (c *Client) SaveConfig(ctx context.Context, name string, cfg ConfigEntry) error {
	cfg.Name = name
	_, err := c.call(ctx, "salvarConfig", map[string]any{
		"funcionarioNome": name,
		"config":          cfg,
	})
	return err
}

func (c *Client) LoadHolidays(ctx context.Context) (map[string]HolidayEntry, error) {
	env, err := c.call(ctx, "carregarFeriados", nil)
	if err != nil {
		return nil, err
	}
	return env.Holidays, nil
}

func (c *Client) SaveHoliday(ctx context.Context, dateKey, kind, description string) error {
	_, err := c.call(ctx, "salvarFeriado", map[string]any{
		"data":      dateKey,
		"tipo":      kind,
		"descricao": description,
	})
	return err
}

func (c *Client) RemoveHoliday(ctx context.Context, dateKey string) error {
	_, err := c.call(ctx, "salvarFeriado", map[string]any{
		"data":    dateKey,
		"remover": true,
	})
	return err
}

func (c *Client) SaveDay(ctx context.Context, dateKey string, entries map[string]DayEntry) error {
	_, err := c.call(ctx, "salvarDia", map[string]any{
		"chaveData": dateKey,
		"dados":     entries,
	})
	return err
}

func (c *Client) LoadDay(ctx context.Context, dateKey string) (map[string]DayEntry, error) {
	env, err := c.call(ctx, "carregarDia", map[string]any{"chaveData": dateKey})
	if err != nil {
		return nil, err
	}
	return env.Day, nil
}
