package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDoUnwrapsEnvelopeData(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"success":true,"data":[{"id":1,"title":"First"},{"id":2,"title":"Second"}],"message":""}`)

	got, err := Fetch[[]item](context.Background(), New(srv.URL), http.MethodGet, "/Projects/active", nil)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	want := []item{{ID: 1, Title: "First"}, {ID: 2, Title: "Second"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unwrapped data mismatch (-want +got):\n%s", diff)
	}
}

func TestDoNormalizesErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{
			name:       "2xx with success false",
			status:     http.StatusOK,
			body:       `{"success":false,"data":null,"message":"X"}`,
			wantMsg:    "X",
			wantStatus: http.StatusOK,
		},
		{
			name:       "2xx with success false and no message",
			status:     http.StatusOK,
			body:       `{"success":false}`,
			wantMsg:    MsgUnsuccessful2xx,
			wantStatus: http.StatusOK,
		},
		{
			name:       "2xx without an envelope",
			status:     http.StatusOK,
			body:       `not json`,
			wantMsg:    MsgUnsuccessful2xx,
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-2xx with message",
			status:     http.StatusNotFound,
			body:       `{"success":false,"message":"Y"}`,
			wantMsg:    "Y",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-2xx with problem title",
			status:     http.StatusBadRequest,
			body:       `{"type":"https://tools.ietf.org/html/rfc7231#section-6.5.1","title":"Z","status":400}`,
			wantMsg:    "Z",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-2xx with empty body",
			status:     http.StatusInternalServerError,
			body:       ``,
			wantMsg:    MsgServerError,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "non-2xx with plain text body",
			status:     http.StatusBadGateway,
			body:       `upstream down`,
			wantMsg:    MsgServerError,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)

			err := New(srv.URL).Get(context.Background(), "/skills/active", nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if apiErr.Error() != tt.wantMsg {
				t.Errorf("message = %q; want %q", apiErr.Error(), tt.wantMsg)
			}
			if apiErr.StatusCode != tt.wantStatus {
				t.Errorf("status = %d; want %d", apiErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestDoNoResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url).Get(context.Background(), "/AboutMe", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Error() != MsgNoResponse {
		t.Errorf("message = %q; want %q", err.Error(), MsgNoResponse)
	}
	if StatusCode(err) != 0 {
		t.Errorf("status = %d; want 0", StatusCode(err))
	}
}

func TestDoCancelledContext(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"success":true,"data":{}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(srv.URL).Get(ctx, "/AboutMe", nil)
	if err == nil || err.Error() != MsgNoResponse {
		t.Errorf("err = %v; want %q", err, MsgNoResponse)
	}
}

func TestDoRequestConstructionFailure(t *testing.T) {
	client := New("http://api.invalid")

	err := client.Post(context.Background(), "/skills/reorder", map[string]any{"bad": make(chan int)}, nil)
	if err == nil {
		t.Fatal("expected error for unencodable body")
	}
	if err.Error() != "json: unsupported type: chan int" {
		t.Errorf("message = %q", err.Error())
	}

	err = client.Do(context.Background(), "BAD METHOD", "/skills", nil, nil)
	if err == nil {
		t.Fatal("expected error for invalid method")
	}
	if err.Error() == MsgNoResponse {
		t.Errorf("construction failure reported as no response")
	}
}

func TestDoSendsJSONAndJoinsPaths(t *testing.T) {
	var gotPath, gotType, gotCustom, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotCustom = r.Header.Get("X-Client")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		w.Write([]byte(`{"success":true,"data":{"id":7,"title":"Created"},"message":"ok"}`))
	}))
	defer srv.Close()

	client := New(srv.URL+"/api/", WithHeader("X-Client", "portfolio"))
	var out item
	if err := client.Post(context.Background(), "Projects", item{Title: "New"}, &out); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	if gotPath != "/api/Projects" {
		t.Errorf("path = %q; want /api/Projects", gotPath)
	}
	if gotType != "application/json" {
		t.Errorf("Content-Type = %q", gotType)
	}
	if gotCustom != "portfolio" {
		t.Errorf("X-Client = %q", gotCustom)
	}
	if gotBody != `{"id":0,"title":"New"}` {
		t.Errorf("body = %q", gotBody)
	}
	if diff := cmp.Diff(item{ID: 7, Title: "Created"}, out); diff != "" {
		t.Errorf("out mismatch (-want +got):\n%s", diff)
	}
}

func TestDoIgnoresNullData(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"success":true,"data":null,"message":"Deleted"}`)

	if err := New(srv.URL).Delete(context.Background(), "/skills/3"); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{"nil error", nil, "fallback", ""},
		{"api error", &Error{Message: "boom"}, "fallback", "boom"},
		{"wrapped api error", errors.Join(errors.New("ctx"), &Error{Message: "inner"}), "fallback", "inner"},
		{"empty api error", &Error{}, "fallback", "fallback"},
		{"plain error", errors.New("plain"), "fallback", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, tt.fallback); got != tt.want {
				t.Errorf("Message() = %q; want %q", got, tt.want)
			}
		})
	}
}
