package tasks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

type recordingCache struct {
	mu     sync.Mutex
	values map[string]interface{}
	ttl    time.Duration
	fail   error
}

func (c *recordingCache) Get(context.Context, string, interface{}) error {
	return services.ErrCacheMiss
}

func (c *recordingCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.fail != nil {
		return c.fail
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	c.ttl = ttl
	return nil
}

func newSet(t *testing.T) *services.Set {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Projects/active":
			w.Write([]byte(`{"success":true,"data":[{"id":1,"title":"Alpha"}]}`))
		case "/skills/active":
			w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Go"}]}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)
	return services.NewSet(apiclient.New(srv.URL))
}

func TestRunnerWritesPayloadUnderStoreKey(t *testing.T) {
	registry := NewRegistry()
	for _, task := range WarmTasks {
		registry.Register(task.TaskID(), task.HandleExecution)
	}
	cache := &recordingCache{values: map[string]interface{}{}}
	runner := NewRunner(registry, newSet(t), cache, 10*time.Minute, nil)

	result := runner.Run(context.Background(), stores.NameProjectsActive)

	require.NoError(t, result.Err)
	assert.Equal(t, []models.Project{{ID: 1, Title: "Alpha"}}, cache.values[stores.SharedKey(stores.NameProjectsActive)])
	assert.Equal(t, 10*time.Minute, cache.ttl)
}

func TestRunnerRunAll(t *testing.T) {
	registry := NewRegistry()
	for _, task := range WarmTasks {
		registry.Register(task.TaskID(), task.HandleExecution)
	}
	cache := &recordingCache{values: map[string]interface{}{}}
	runner := NewRunner(registry, newSet(t), cache, time.Minute, nil)

	results := runner.RunAll(context.Background())

	require.Len(t, results, len(WarmTasks))
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	// only projects.active and skills.active are served by the fake backend
	assert.Equal(t, len(WarmTasks)-2, failed)
	assert.Len(t, cache.values, 2)
	assert.Contains(t, cache.values, stores.SharedKey(stores.NameSkills))
}

func TestRunnerUnknownTask(t *testing.T) {
	runner := NewRunner(NewRegistry(), nil, &recordingCache{}, time.Minute, nil)

	result := runner.Run(context.Background(), "missing")

	assert.EqualError(t, result.Err, "task handler not found: missing")
}

func TestRunnerCacheFailure(t *testing.T) {
	registry := NewRegistry()
	registry.Register("static", func(context.Context, *services.Set) (interface{}, error) {
		return []string{"x"}, nil
	})
	cache := &recordingCache{values: map[string]interface{}{}, fail: errors.New("connection refused")}
	runner := NewRunner(registry, nil, cache, time.Minute, nil)

	result := runner.Run(context.Background(), "static")

	assert.EqualError(t, result.Err, "failed to store payload: connection refused")
}

func TestRunAllStopsOnCancel(t *testing.T) {
	registry := NewRegistry()
	registry.Register("a", func(context.Context, *services.Set) (interface{}, error) { return 1, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := NewRunner(registry, nil, &recordingCache{values: map[string]interface{}{}}, time.Minute, nil).RunAll(ctx)

	assert.Empty(t, results)
}

func TestDefineTasksRegistersEveryStore(t *testing.T) {
	DefineTasks()
	DefineTasks()

	want := []string{
		stores.NameAboutMe,
		stores.NameCertifications,
		stores.NameEducation,
		stores.NameExperiences,
		stores.NameProjectsActive,
		stores.NameProjectsFeatured,
		stores.NameSiteSettings,
		stores.NameSkills,
		stores.NameSocialMedia,
		stores.NameTechnologies,
		stores.NameTestimonials,
	}
	assert.ElementsMatch(t, want, GlobalRegistry.Names())

	_, ok := GetHandler(stores.NameSkills)
	assert.True(t, ok)
}

func TestSchedule(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		rule  string
		after time.Time
		want  time.Time
	}{
		{"every five minutes", "FREQ=MINUTELY;INTERVAL=5", start.Add(7 * time.Minute), start.Add(10 * time.Minute)},
		{"exactly on an occurrence", "FREQ=MINUTELY;INTERVAL=5", start.Add(5 * time.Minute), start.Add(10 * time.Minute)},
		{"hourly", "FREQ=HOURLY", start.Add(30 * time.Minute), start.Add(time.Hour)},
		{"exhausted", "FREQ=DAILY;COUNT=1", start.Add(time.Hour), time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := ParseSchedule(tt.rule, start)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(schedule.Next(tt.after)), "got %v, want %v", schedule.Next(tt.after), tt.want)
		})
	}
}

func TestParseScheduleInvalid(t *testing.T) {
	_, err := ParseSchedule("EVERY=SOMETIMES", time.Now())
	assert.Error(t, err)
}
