package lifelog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-dashboard/internal/domain/records"
	"life-dashboard/internal/domain/timewindow"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "tok", time.Second)
}

func TestClient_ListHealthLogs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health-logs", r.URL.Path)
		assert.Equal(t, "2025-03-13", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2025-03-20", r.URL.Query().Get("endDate"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"ok":true,"logs":[{"date":"2025-03-20","sleepHrs":7.5}]}`))
	})

	logs, err := c.ListHealthLogs(context.Background(), timewindow.Window{Start: "2025-03-13", End: "2025-03-20"})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 7.5, records.Value(logs[0].SleepHrs))
	assert.Nil(t, logs[0].Steps)
}

func TestClient_UnboundedWindowSendsNoDates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"ok":true,"skills":[]}`))
	})

	skills, err := c.ListSkillLogs(context.Background(), timewindow.Window{})
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestClient_NotOK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok":false,"error":"database unavailable"}`))
	})

	_, err := c.ListJobApplications(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotOK))
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestClient_BadBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := c.ListDayPlans(context.Background(), timewindow.Window{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotOK))
}

func TestClient_FinanceSetupNull(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"setup":null}`))
	})

	setup, err := c.GetFinanceSetup(context.Background())
	require.NoError(t, err)
	assert.Nil(t, setup)
}

func TestClient_ListTransactionsLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/finance/transactions", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"ok":true,"transactions":[{"date":"2025-03-20","type":"credit","amount":100}]}`))
	})

	txs, err := c.ListTransactions(context.Background(), timewindow.Window{}, 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, records.TxCredit, txs[0].Type)
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true,"dayTypes":[]}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListDayTypes(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
