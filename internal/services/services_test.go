package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

func newRecorder(t *testing.T, response string) (*Set, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.Path = r.URL.EscapedPath()
		rec.Body = string(body)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewSet(apiclient.New(srv.URL + "/api")), rec
}

func TestEndpoints(t *testing.T) {
	category := "Backend"
	tests := []struct {
		name       string
		call       func(ctx context.Context, s *Set) error
		wantMethod string
		wantPath   string
		wantBody   string
	}{
		// AboutMe
		{"about me get", func(ctx context.Context, s *Set) error { _, err := s.AboutMe.Get(ctx); return err }, "GET", "/api/AboutMe", ""},
		{"about me save", func(ctx context.Context, s *Set) error {
			_, err := s.AboutMe.CreateOrUpdate(ctx, models.AboutMeInput{FullName: "Jane"})
			return err
		}, "POST", "/api/AboutMe", `{"fullName":"Jane","title":"","bio":"","yearsOfExperience":0}`},

		// Certifications
		{"certifications active", func(ctx context.Context, s *Set) error { _, err := s.Certifications.GetActive(ctx); return err }, "GET", "/api/certifications", ""},
		{"certifications all", func(ctx context.Context, s *Set) error { _, err := s.Certifications.GetAll(ctx); return err }, "GET", "/api/certifications/all", ""},
		{"certifications by id", func(ctx context.Context, s *Set) error { _, err := s.Certifications.GetByID(ctx, 4); return err }, "GET", "/api/certifications/4", ""},
		{"certifications create", func(ctx context.Context, s *Set) error {
			_, err := s.Certifications.Create(ctx, models.CertificationInput{})
			return err
		}, "POST", "/api/certifications", ""},
		{"certifications update", func(ctx context.Context, s *Set) error {
			_, err := s.Certifications.Update(ctx, 4, models.CertificationInput{})
			return err
		}, "PUT", "/api/certifications/4", ""},
		{"certifications delete", func(ctx context.Context, s *Set) error { return s.Certifications.Delete(ctx, 4) }, "DELETE", "/api/certifications/4", ""},
		{"certifications toggle", func(ctx context.Context, s *Set) error { return s.Certifications.ToggleActive(ctx, 4) }, "PATCH", "/api/certifications/4/toggle-active", ""},

		// Contact messages
		{"contact send", func(ctx context.Context, s *Set) error {
			_, err := s.Contact.Send(ctx, models.ContactMessageInput{Name: "A", Email: "a@b.c", Subject: "Hi", Message: "Hello"})
			return err
		}, "POST", "/api/contactmessages", `{"name":"A","email":"a@b.c","subject":"Hi","message":"Hello"}`},
		{"contact all", func(ctx context.Context, s *Set) error { _, err := s.Contact.GetAll(ctx); return err }, "GET", "/api/contactmessages", ""},
		{"contact unread", func(ctx context.Context, s *Set) error { _, err := s.Contact.GetUnread(ctx); return err }, "GET", "/api/contactmessages/unread", ""},
		{"contact by id", func(ctx context.Context, s *Set) error { _, err := s.Contact.GetByID(ctx, 9); return err }, "GET", "/api/contactmessages/9", ""},
		{"contact read", func(ctx context.Context, s *Set) error { return s.Contact.MarkAsRead(ctx, 9) }, "PATCH", "/api/contactmessages/9/read", ""},
		{"contact delete", func(ctx context.Context, s *Set) error { return s.Contact.Delete(ctx, 9) }, "DELETE", "/api/contactmessages/9", ""},

		// Education
		{"education active", func(ctx context.Context, s *Set) error { _, err := s.Education.GetActive(ctx); return err }, "GET", "/api/education", ""},
		{"education admin", func(ctx context.Context, s *Set) error { _, err := s.Education.GetAllAdmin(ctx); return err }, "GET", "/api/education/admin", ""},
		{"education by id", func(ctx context.Context, s *Set) error { _, err := s.Education.GetByID(ctx, 2); return err }, "GET", "/api/education/2", ""},
		{"education create", func(ctx context.Context, s *Set) error { _, err := s.Education.Create(ctx, models.EducationInput{}); return err }, "POST", "/api/education", ""},
		{"education update", func(ctx context.Context, s *Set) error {
			_, err := s.Education.Update(ctx, 2, models.EducationInput{})
			return err
		}, "PUT", "/api/education/2", ""},
		{"education delete", func(ctx context.Context, s *Set) error { return s.Education.Delete(ctx, 2) }, "DELETE", "/api/education/2", ""},

		// Experiences
		{"experiences active", func(ctx context.Context, s *Set) error { _, err := s.Experiences.GetActive(ctx); return err }, "GET", "/api/experiences/active", ""},
		{"experiences admin", func(ctx context.Context, s *Set) error { _, err := s.Experiences.GetAllAdmin(ctx); return err }, "GET", "/api/experiences", ""},
		{"experiences by id", func(ctx context.Context, s *Set) error { _, err := s.Experiences.GetByID(ctx, 3); return err }, "GET", "/api/experiences/3", ""},
		{"experiences create", func(ctx context.Context, s *Set) error {
			_, err := s.Experiences.Create(ctx, models.ExperienceInput{})
			return err
		}, "POST", "/api/experiences", ""},
		{"experiences update", func(ctx context.Context, s *Set) error {
			_, err := s.Experiences.Update(ctx, 3, models.ExperienceInput{})
			return err
		}, "PUT", "/api/experiences/3", ""},
		{"experiences delete", func(ctx context.Context, s *Set) error { return s.Experiences.Delete(ctx, 3) }, "DELETE", "/api/experiences/3", ""},

		// Projects
		{"projects active", func(ctx context.Context, s *Set) error { _, err := s.Projects.GetActive(ctx); return err }, "GET", "/api/Projects/active", ""},
		{"projects featured", func(ctx context.Context, s *Set) error { _, err := s.Projects.GetFeatured(ctx); return err }, "GET", "/api/Projects/featured", ""},
		{"projects by id", func(ctx context.Context, s *Set) error { _, err := s.Projects.GetByID(ctx, 1); return err }, "GET", "/api/Projects/1", ""},
		{"projects by type", func(ctx context.Context, s *Set) error { _, err := s.Projects.GetByType(ctx, "Web App"); return err }, "GET", "/api/Projects/type/Web%20App", ""},
		{"projects all", func(ctx context.Context, s *Set) error { _, err := s.Projects.GetAll(ctx); return err }, "GET", "/api/Projects", ""},
		{"projects create", func(ctx context.Context, s *Set) error { _, err := s.Projects.Create(ctx, models.ProjectInput{}); return err }, "POST", "/api/Projects", ""},
		{"projects update", func(ctx context.Context, s *Set) error { _, err := s.Projects.Update(ctx, 1, models.ProjectInput{}); return err }, "PUT", "/api/Projects/1", ""},
		{"projects delete", func(ctx context.Context, s *Set) error { return s.Projects.Delete(ctx, 1) }, "DELETE", "/api/Projects/1", ""},
		{"projects toggle active", func(ctx context.Context, s *Set) error { return s.Projects.ToggleActive(ctx, 1) }, "PATCH", "/api/Projects/1/toggle-active", ""},
		{"projects toggle featured", func(ctx context.Context, s *Set) error { return s.Projects.ToggleFeatured(ctx, 1) }, "PATCH", "/api/Projects/1/toggle-featured", ""},

		// Site settings
		{"settings dictionary", func(ctx context.Context, s *Set) error { _, err := s.SiteSettings.GetDictionary(ctx); return err }, "GET", "/api/SiteSettings/dictionary", ""},
		{"settings all", func(ctx context.Context, s *Set) error { _, err := s.SiteSettings.GetAll(ctx); return err }, "GET", "/api/SiteSettings", ""},
		{"settings by key", func(ctx context.Context, s *Set) error { _, err := s.SiteSettings.GetByKey(ctx, "SiteName"); return err }, "GET", "/api/SiteSettings/key/SiteName", ""},
		{"settings create", func(ctx context.Context, s *Set) error {
			_, err := s.SiteSettings.Create(ctx, models.SiteSettingInput{Key: "k", Value: "v"})
			return err
		}, "POST", "/api/SiteSettings", `{"key":"k","value":"v"}`},
		{"settings update", func(ctx context.Context, s *Set) error {
			_, err := s.SiteSettings.Update(ctx, 5, models.SiteSettingInput{})
			return err
		}, "PUT", "/api/SiteSettings/5", ""},
		{"settings delete", func(ctx context.Context, s *Set) error { return s.SiteSettings.Delete(ctx, 5) }, "DELETE", "/api/SiteSettings/5", ""},

		// Skills
		{"skills active", func(ctx context.Context, s *Set) error { _, err := s.Skills.GetActive(ctx); return err }, "GET", "/api/skills/active", ""},
		{"skills by category", func(ctx context.Context, s *Set) error { _, err := s.Skills.GetByCategory(ctx, "C/C++"); return err }, "GET", "/api/skills/category/C%2FC++", ""},
		{"skills admin", func(ctx context.Context, s *Set) error { _, err := s.Skills.GetAllAdmin(ctx); return err }, "GET", "/api/skills", ""},
		{"skills by id", func(ctx context.Context, s *Set) error { _, err := s.Skills.GetByID(ctx, 6); return err }, "GET", "/api/skills/6", ""},
		{"skills create", func(ctx context.Context, s *Set) error {
			_, err := s.Skills.Create(ctx, models.SkillInput{Name: "Go", Category: &category})
			return err
		}, "POST", "/api/skills", `{"name":"Go","category":"Backend","proficiency":0,"isActive":false,"displayOrder":0}`},
		{"skills update", func(ctx context.Context, s *Set) error { _, err := s.Skills.Update(ctx, 6, models.SkillInput{}); return err }, "PUT", "/api/skills/6", ""},
		{"skills delete", func(ctx context.Context, s *Set) error { return s.Skills.Delete(ctx, 6) }, "DELETE", "/api/skills/6", ""},
		{"skills toggle", func(ctx context.Context, s *Set) error { return s.Skills.ToggleActive(ctx, 6) }, "PATCH", "/api/skills/6/toggle-active", ""},
		{"skills reorder", func(ctx context.Context, s *Set) error { return s.Skills.Reorder(ctx, models.SkillOrder{1: 0, 2: 1}) }, "POST", "/api/skills/reorder", `{"1":0,"2":1}`},

		// Social media
		{"social active", func(ctx context.Context, s *Set) error { _, err := s.SocialMedia.GetActive(ctx); return err }, "GET", "/api/socialmedia/active", ""},
		{"social all", func(ctx context.Context, s *Set) error { _, err := s.SocialMedia.GetAll(ctx); return err }, "GET", "/api/socialmedia", ""},
		{"social by id", func(ctx context.Context, s *Set) error { _, err := s.SocialMedia.GetByID(ctx, 8); return err }, "GET", "/api/socialmedia/8", ""},
		{"social create", func(ctx context.Context, s *Set) error {
			_, err := s.SocialMedia.Create(ctx, models.SocialMediaInput{})
			return err
		}, "POST", "/api/socialmedia", ""},
		{"social update", func(ctx context.Context, s *Set) error {
			_, err := s.SocialMedia.Update(ctx, 8, models.SocialMediaInput{})
			return err
		}, "PUT", "/api/socialmedia/8", ""},
		{"social delete", func(ctx context.Context, s *Set) error { return s.SocialMedia.Delete(ctx, 8) }, "DELETE", "/api/socialmedia/8", ""},
		{"social toggle", func(ctx context.Context, s *Set) error { return s.SocialMedia.ToggleActive(ctx, 8) }, "PATCH", "/api/socialmedia/8/toggle-active", ""},

		// Technologies
		{"technologies active", func(ctx context.Context, s *Set) error { _, err := s.Technologies.GetActive(ctx); return err }, "GET", "/api/technologies/active", ""},
		{"technologies by category", func(ctx context.Context, s *Set) error {
			_, err := s.Technologies.GetByCategory(ctx, "Frontend")
			return err
		}, "GET", "/api/technologies/category/Frontend", ""},
		{"technologies all", func(ctx context.Context, s *Set) error { _, err := s.Technologies.GetAll(ctx); return err }, "GET", "/api/technologies", ""},
		{"technologies by id", func(ctx context.Context, s *Set) error { _, err := s.Technologies.GetByID(ctx, 7); return err }, "GET", "/api/technologies/7", ""},
		{"technologies create", func(ctx context.Context, s *Set) error {
			_, err := s.Technologies.Create(ctx, models.TechnologyInput{})
			return err
		}, "POST", "/api/technologies", ""},
		{"technologies update", func(ctx context.Context, s *Set) error {
			_, err := s.Technologies.Update(ctx, 7, models.TechnologyInput{})
			return err
		}, "PUT", "/api/technologies/7", ""},
		{"technologies delete", func(ctx context.Context, s *Set) error { return s.Technologies.Delete(ctx, 7) }, "DELETE", "/api/technologies/7", ""},
		{"technologies toggle", func(ctx context.Context, s *Set) error { return s.Technologies.ToggleActive(ctx, 7) }, "PATCH", "/api/technologies/7/toggle-active", ""},

		// Testimonials
		{"testimonials active", func(ctx context.Context, s *Set) error { _, err := s.Testimonials.GetActive(ctx); return err }, "GET", "/api/testimonials", ""},
		{"testimonials create", func(ctx context.Context, s *Set) error {
			_, err := s.Testimonials.Create(ctx, models.TestimonialInput{ClientName: "Bob", Content: "Great", Rating: 5})
			return err
		}, "POST", "/api/testimonials", `{"clientName":"Bob","content":"Great","rating":5}`},
		{"testimonials all", func(ctx context.Context, s *Set) error { _, err := s.Testimonials.GetAllAdmin(ctx); return err }, "GET", "/api/testimonials/all", ""},
		{"testimonials pending", func(ctx context.Context, s *Set) error { _, err := s.Testimonials.GetPending(ctx); return err }, "GET", "/api/testimonials/pending", ""},
		{"testimonials by id", func(ctx context.Context, s *Set) error { _, err := s.Testimonials.GetByID(ctx, 11); return err }, "GET", "/api/testimonials/11", ""},
		{"testimonials update", func(ctx context.Context, s *Set) error {
			_, err := s.Testimonials.Update(ctx, 11, models.TestimonialInput{})
			return err
		}, "PUT", "/api/testimonials/11", ""},
		{"testimonials approve", func(ctx context.Context, s *Set) error { return s.Testimonials.Approve(ctx, 11) }, "POST", "/api/testimonials/11/approve", ""},
		{"testimonials reject", func(ctx context.Context, s *Set) error { return s.Testimonials.Reject(ctx, 11) }, "POST", "/api/testimonials/11/reject", ""},
		{"testimonials delete", func(ctx context.Context, s *Set) error { return s.Testimonials.Delete(ctx, 11) }, "DELETE", "/api/testimonials/11", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, rec := newRecorder(t, `{"success":true,"data":null,"message":""}`)

			if err := tt.call(context.Background(), set); err != nil {
				t.Fatalf("call returned error: %v", err)
			}
			if rec.Method != tt.wantMethod {
				t.Errorf("method = %s; want %s", rec.Method, tt.wantMethod)
			}
			if rec.Path != tt.wantPath {
				t.Errorf("path = %s; want %s", rec.Path, tt.wantPath)
			}
			if tt.wantBody != "" && rec.Body != tt.wantBody {
				t.Errorf("body = %s; want %s", rec.Body, tt.wantBody)
			}
		})
	}
}

func TestGetActiveProjectsDecodesPayload(t *testing.T) {
	set, _ := newRecorder(t, `{"success":true,"data":[{"id":1,"title":"Alpha","isFeatured":true},{"id":2,"title":"Beta"}],"message":""}`)

	got, err := set.Projects.GetActive(context.Background())
	if err != nil {
		t.Fatalf("GetActive returned error: %v", err)
	}

	want := []models.Project{{ID: 1, Title: "Alpha", IsFeatured: true}, {ID: 2, Title: "Beta"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDictionaryDecodesMap(t *testing.T) {
	set, _ := newRecorder(t, `{"success":true,"data":{"SiteName":"Jane Doe","Tagline":"Builder"}}`)

	got, err := set.SiteSettings.GetDictionary(context.Background())
	if err != nil {
		t.Fatalf("GetDictionary returned error: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"SiteName": "Jane Doe", "Tagline": "Builder"}, got); diff != "" {
		t.Errorf("dictionary mismatch (-want +got):\n%s", diff)
	}
}

func TestServiceErrorsAreNormalized(t *testing.T) {
	set, _ := newRecorder(t, `{"success":false,"data":null,"message":"Project not found"}`)

	_, err := set.Projects.GetByID(context.Background(), 42)
	if err == nil || err.Error() != "Project not found" {
		t.Errorf("err = %v; want Project not found", err)
	}
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]any
	sets int
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	*(dest.(*[]string)) = v.([]string)
	return nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.sets++
	return nil
}

func TestGetOrSet(t *testing.T) {
	cache := &memoryCache{data: map[string]any{}}
	calls := 0
	fn := func(context.Context) ([]string, error) {
		calls++
		return []string{"go", "sql"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := GetOrSet(context.Background(), cache, "skills", time.Minute, fn)
		if err != nil {
			t.Fatalf("GetOrSet returned error: %v", err)
		}
		if diff := cmp.Diff([]string{"go", "sql"}, got); diff != "" {
			t.Errorf("value mismatch (-want +got):\n%s", diff)
		}
	}

	if calls != 1 {
		t.Errorf("callback called %d times; want 1", calls)
	}
	if cache.sets != 1 {
		t.Errorf("cache set %d times; want 1", cache.sets)
	}
}
