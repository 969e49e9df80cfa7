package lifelog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

// ErrNotOK 表示遠端服務回傳 ok:false。
var ErrNotOK = errors.New("lifelog service returned ok=false")

// Client 透過 HTTP 讀取部署在其他地方的紀錄服務，回應皆為 {ok, ...payload}。
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient 建立遠端紀錄服務客戶端；token 為空時不帶 Authorization。
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (c *Client) call(ctx context.Context, path string, params url.Values, out any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("lifelog %s (status %d): decode envelope: %w", path, resp.StatusCode, err)
	}
	if !env.OK {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%w: %s: %s", ErrNotOK, path, msg)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("lifelog %s: decode payload: %w", path, err)
	}
	return nil
}

func windowParams(w timewindow.Window) url.Values {
	params := url.Values{}
	if w.Start != "" {
		params.Set("startDate", w.Start)
	}
	if w.End != "" {
		params.Set("endDate", w.End)
	}
	return params
}

// ListHealthLogs GET /api/health-logs
func (c *Client) ListHealthLogs(ctx context.Context, w timewindow.Window) ([]records.HealthLog, error) {
	var out struct {
		Logs []records.HealthLog `json:"logs"`
	}
	if err := c.call(ctx, "/api/health-logs", windowParams(w), &out); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

// ListDayPlans GET /api/day-plans
func (c *Client) ListDayPlans(ctx context.Context, w timewindow.Window) ([]records.DayPlan, error) {
	var out struct {
		DayPlans []records.DayPlan `json:"dayPlans"`
	}
	if err := c.call(ctx, "/api/day-plans", windowParams(w), &out); err != nil {
		return nil, err
	}
	return out.DayPlans, nil
}

// ListDayTypes GET /api/day-types
func (c *Client) ListDayTypes(ctx context.Context) ([]records.DayType, error) {
	var out struct {
		DayTypes []records.DayType `json:"dayTypes"`
	}
	if err := c.call(ctx, "/api/day-types", nil, &out); err != nil {
		return nil, err
	}
	return out.DayTypes, nil
}

// ListSkillLogs GET /api/skills
func (c *Client) ListSkillLogs(ctx context.Context, w timewindow.Window) ([]records.SkillLog, error) {
	var out struct {
		Skills []records.SkillLog `json:"skills"`
	}
	if err := c.call(ctx, "/api/skills", windowParams(w), &out); err != nil {
		return nil, err
	}
	return out.Skills, nil
}

// ListJobApplications GET /api/jobs
func (c *Client) ListJobApplications(ctx context.Context) ([]records.JobApplication, error) {
	var out struct {
		Applications []records.JobApplication `json:"applications"`
	}
	if err := c.call(ctx, "/api/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// GetFinanceSetup GET /api/finance/setup；setup 為 null 時回傳 (nil, nil)。
func (c *Client) GetFinanceSetup(ctx context.Context) (*records.FinanceSetup, error) {
	var out struct {
		Setup *records.FinanceSetup `json:"setup"`
	}
	if err := c.call(ctx, "/api/finance/setup", nil, &out); err != nil {
		return nil, err
	}
	return out.Setup, nil
}

// ListTransactions GET /api/finance/transactions
func (c *Client) ListTransactions(ctx context.Context, w timewindow.Window, limit int) ([]records.Transaction, error) {
	params := windowParams(w)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var out struct {
		Transactions []records.Transaction `json:"transactions"`
	}
	if err := c.call(ctx, "/api/finance/transactions", params, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}
