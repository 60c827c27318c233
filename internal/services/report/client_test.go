package report

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
)

type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

const summaryBody = `{"data":{
	"queriesPerDay":[{"_id":"2024-03-13","count":4},{"_id":"2024-03-14","count":6}],
	"queryTypes":[{"_id":"Accident","count":7},{"_id":"Congestion","count":3}],
	"queryStatus":{"pending":30,"inProgress":20,"resolved":45,"rejected":5},
	"totalQueries":100,"userCount":40,"activeSessions":12}}`

const activityBody = `{"data":[
	{"_id":"r1","query_type":"Accident","description":"Two cars","status":"Pending",
	 "timestamp":"2024-03-13T14:05:09.000Z","location":{"address":"123 Main St, Springfield, IL"}}]}`

func newBackend(t *testing.T, summary, activity http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(SummaryPath, summary)
	mux.HandleFunc(RecentActivityPath, activity)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNew(t *testing.T) {
	c := New("http://localhost:3000/")
	if c.BaseURL() != "http://localhost:3000" {
		t.Errorf("BaseURL() = %q, want trailing slash trimmed", c.BaseURL())
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}

	hc := &http.Client{}
	c = New("http://x", WithHTTPClient(hc), WithTimeout(time.Second), WithTimeout(-1))
	if c.httpClient != hc {
		t.Error("WithHTTPClient() not applied")
	}
	if c.timeout != time.Second {
		t.Errorf("timeout = %v, want 1s", c.timeout)
	}
}

func TestFetchSummary(t *testing.T) {
	var gotRequestID string
	srv := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get(requestIDHeader)
		respond(http.StatusOK, summaryBody)(w, r)
	}, respond(http.StatusOK, activityBody))

	summary, err := New(srv.URL).FetchSummary(context.Background())
	if err != nil {
		t.Fatalf("FetchSummary() error = %v", err)
	}
	if summary.TotalQueries != 100 || summary.QueryStatus.InProgress != 20 {
		t.Errorf("summary = %+v", summary)
	}
	if len(summary.QueriesPerDay) != 2 || summary.QueriesPerDay[1].Bucket != "2024-03-14" {
		t.Errorf("QueriesPerDay = %+v", summary.QueriesPerDay)
	}
	if len(summary.QueryTypes) != 2 || summary.QueryTypes[0].Label != "Accident" {
		t.Errorf("QueryTypes = %+v", summary.QueryTypes)
	}
	if _, err := uuid.Parse(gotRequestID); err != nil {
		t.Errorf("X-Request-ID %q is not a uuid: %v", gotRequestID, err)
	}
}

func TestFetchRecentActivity(t *testing.T) {
	srv := newBackend(t, respond(http.StatusOK, summaryBody), respond(http.StatusOK, activityBody))

	entries, err := New(srv.URL).FetchRecentActivity(context.Background())
	if err != nil {
		t.Fatalf("FetchRecentActivity() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	e := entries[0]
	if e.ID != "r1" || e.QueryType != "Accident" || e.Location.Address != "123 Main St, Springfield, IL" {
		t.Errorf("entry = %+v", e)
	}
	want := time.Date(2024, 3, 13, 14, 5, 9, 0, time.UTC)
	if !e.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", e.Timestamp, want)
	}
}

func TestFetchRecentActivityEmpty(t *testing.T) {
	srv := newBackend(t, respond(http.StatusOK, summaryBody), respond(http.StatusOK, `{"data":[]}`))

	entries, err := New(srv.URL).FetchRecentActivity(context.Background())
	if err != nil {
		t.Fatalf("FetchRecentActivity() error = %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("entries = %v, want empty non-nil slice", entries)
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name:    "ServerError",
			handler: respond(http.StatusInternalServerError, `{"error":"boom"}`),
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) {
					t.Fatalf("error = %v, want *StatusError", err)
				}
				if se.StatusCode != http.StatusInternalServerError {
					t.Errorf("StatusCode = %d, want 500", se.StatusCode)
				}
				if !strings.Contains(se.Body, "boom") {
					t.Errorf("Body = %q, want excerpt", se.Body)
				}
			},
		},
		{
			name:    "NotFound",
			handler: respond(http.StatusNotFound, ""),
			check: func(t *testing.T, err error) {
				var se *StatusError
				if !errors.As(err, &se) || se.StatusCode != http.StatusNotFound {
					t.Errorf("error = %v, want 404 StatusError", err)
				}
			},
		},
		{
			name:    "NotJSON",
			handler: respond(http.StatusOK, "<html>"),
			check:   wantMalformed,
		},
		{
			name:    "MissingData",
			handler: respond(http.StatusOK, `{"result":{}}`),
			check:   wantMalformed,
		},
		{
			name:    "NullData",
			handler: respond(http.StatusOK, `{"data":null}`),
			check:   wantMalformed,
		},
		{
			name:    "WrongShape",
			handler: respond(http.StatusOK, `{"data":[1,2,3]}`),
			check:   wantMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, tt.handler, respond(http.StatusOK, activityBody))
			_, err := New(srv.URL).FetchSummary(context.Background())
			if err == nil {
				t.Fatal("FetchSummary() expected error")
			}
			tt.check(t, err)
		})
	}
}

func wantMalformed(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrMalformedPayload) {
		t.Errorf("error = %v, want ErrMalformedPayload", err)
	}
}

func TestFetchNetworkError(t *testing.T) {
	hc := &http.Client{Transport: &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		},
	}}

	_, err := New("http://backend", WithHTTPClient(hc)).FetchSummary(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}
	srv := newBackend(t, slow, slow)
	defer close(release)

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).FetchSummary(context.Background())
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want deadline exceeded in chain", err)
	}
}

func TestFetchDashboard(t *testing.T) {
	var calls atomic.Int32
	count := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			h(w, r)
		}
	}
	srv := newBackend(t, count(respond(http.StatusOK, summaryBody)), count(respond(http.StatusOK, activityBody)))

	d, err := New(srv.URL).FetchDashboard(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboard() error = %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
	if d.Summary.TotalQueries != 100 || len(d.Activity) != 1 {
		t.Errorf("dashboard = %+v", d)
	}
}

func TestFetchDashboardPartialFailure(t *testing.T) {
	tests := []struct {
		name     string
		summary  http.HandlerFunc
		activity http.HandlerFunc
	}{
		{
			name:     "SummaryFails",
			summary:  respond(http.StatusInternalServerError, ""),
			activity: respond(http.StatusOK, activityBody),
		},
		{
			name:     "ActivityFails",
			summary:  respond(http.StatusOK, summaryBody),
			activity: respond(http.StatusOK, "not json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, tt.summary, tt.activity)
			d, err := New(srv.URL).FetchDashboard(context.Background())
			if err == nil {
				t.Fatal("FetchDashboard() expected error")
			}
			if d != nil {
				t.Errorf("dashboard = %+v, want nil on failure", d)
			}
		})
	}
}

func TestFetchDashboardCancelsSibling(t *testing.T) {
	cancelled := make(chan struct{})
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			close(cancelled)
		case <-time.After(5 * time.Second):
		}
	}
	srv := newBackend(t, respond(http.StatusBadGateway, ""), slow)

	start := time.Now()
	_, err := New(srv.URL).FetchDashboard(context.Background())
	if err == nil {
		t.Fatal("FetchDashboard() expected error")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("FetchDashboard() took %v, sibling was not cancelled", elapsed)
	}

	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Error("slow request context was not cancelled")
	}
}
