package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Drogon4231/portfolio/internal/config"
	"github.com/Drogon4231/portfolio/internal/mailer"
	"github.com/Drogon4231/portfolio/internal/portfolio"
)

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8080", CORSOrigins: []string{"*"}},
		Site: config.SiteConfig{
			BasePath:     "/",
			PublicDir:    "./public",
			ResumeFiles:  []string{"resume.pdf"},
			DefaultTrack: portfolio.TrackAll,
			GitHubURL:    "https://github.com/example",
		},
		Analytics: config.AnalyticsConfig{RetentionDays: 365},
		App:       config.AppConfig{Version: "1.0.0"},
	}
}

func testContent() portfolio.Content {
	return portfolio.Content{
		Profile: portfolio.Profile{Name: "Test Person", Initials: "TP"},
		Projects: []portfolio.Project{
			{ID: 1, Title: "Kernel Tuner", Category: portfolio.CategoryGPU, Link: "#"},
			{ID: 2, Title: "Pipeline CPU", Category: portfolio.CategoryArch, Link: "#"},
			{ID: 3, Title: "Tensor Cores", Category: portfolio.CategoryGPU, Link: "#"},
		},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv, err := NewServer(cfg, testContent(), zap.NewNop(), deps)
	require.NoError(t, err)
	r, err := srv.Engine()
	require.NoError(t, err)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestIndexRendersAllProjectsDark(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `class="scroll-smooth dark"`)
	assert.Contains(t, body, "Kernel Tuner")
	assert.Contains(t, body, "Pipeline CPU")
	assert.Contains(t, body, "Tensor Cores")
	assert.Contains(t, body, `href="/resume.pdf"`)
	assert.Contains(t, body, "hx-get=\"/projects?track=GPU\"")
}

func TestIndexLightTheme(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	body := get(r, "/?theme=light").Body.String()
	assert.Contains(t, body, `class="scroll-smooth"`)
	assert.NotContains(t, body, `class="scroll-smooth dark"`)
}

func TestProjectsFragmentFilters(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/projects?track=gpu")
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "Kernel Tuner")
	assert.Contains(t, body, "Tensor Cores")
	assert.NotContains(t, body, "Pipeline CPU")
	assert.Less(t, strings.Index(body, "Kernel Tuner"), strings.Index(body, "Tensor Cores"))
	assert.Contains(t, body, "show:#projects:top")
}

func TestProjectsFragmentUnknownTrack(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	body := get(r, "/projects?track=quantum").Body.String()
	assert.Contains(t, body, "No projects in this track yet.")
}

func TestDefaultTrackFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Site.DefaultTrack = portfolio.Track(portfolio.CategoryArch)
	r := newTestEngine(t, cfg, Deps{})

	body := get(r, "/").Body.String()
	assert.Contains(t, body, "Pipeline CPU")
	assert.NotContains(t, body, "Kernel Tuner")
}

func TestAPIProjects(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/api/projects?track=GPU")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp projectsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, portfolio.Track("GPU"), resp.Track)
	require.Len(t, resp.Projects, 2)
	assert.Equal(t, 1, resp.Projects[0].ID)
	assert.Equal(t, 3, resp.Projects[1].ID)
}

func TestAPIProjectsCORS(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Origin", "https://example.com")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPIContent(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/api/content")
	require.Equal(t, http.StatusOK, rr.Code)

	var content portfolio.Content
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &content))
	assert.Equal(t, "Test Person", content.Profile.Name)
	assert.Len(t, content.Projects, 3)
}

func TestBasePath(t *testing.T) {
	cfg := testConfig()
	cfg.Site.BasePath = "/site/"
	cfg.Site.ResumeFiles = []string{"hw.pdf", "ml.pdf"}
	r := newTestEngine(t, cfg, Deps{})

	rr := get(r, "/site/")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `href="/site/static/site.css"`)
	assert.Contains(t, body, `href="/site/hw.pdf"`)
	assert.Contains(t, body, `href="/site/ml.pdf"`)

	assert.Equal(t, http.StatusOK, get(r, "/site/static/site.css").Code)
	assert.Equal(t, http.StatusNotFound, get(r, "/projects").Code)
}

func TestResumeRedirect(t *testing.T) {
	cfg := testConfig()
	cfg.Site.ResumeFiles = []string{"hw.pdf", "ml.pdf"}
	r := newTestEngine(t, cfg, Deps{})

	rr := get(r, "/resume")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/hw.pdf", rr.Header().Get("Location"))

	rr = get(r, "/resume/2")
	assert.Equal(t, "/ml.pdf", rr.Header().Get("Location"))

	assert.Equal(t, http.StatusNotFound, get(r, "/resume/3").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/resume/x").Code)
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "portfolio", resp.Service)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "disabled", resp.DB)
}

func postForm(r http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestContact(t *testing.T) {
	m := &fakeMailer{}
	r := newTestEngine(t, testConfig(), Deps{Mailer: m})

	rr := postForm(r, "/contact", url.Values{
		"fullName": {"Ada"},
		"email":    {"ada@example.com"},
		"message":  {"Hello"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Thank you for your message!")
	require.Len(t, m.sent, 1)
	assert.Equal(t, "Ada", m.sent[0].Name)
}

func TestContactMailerError(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{Mailer: &fakeMailer{err: errors.New("smtp down")}})

	rr := postForm(r, "/contact", url.Values{"fullName": {"Ada"}})
	assert.Contains(t, rr.Body.String(), "there was an error sending your message")
}

func TestContactForm(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})

	rr := get(r, "/contact-form")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `hx-post="/contact"`)
}

func TestAdminRoutesAbsentWithoutPassword(t *testing.T) {
	r := newTestEngine(t, testConfig(), Deps{})
	assert.Equal(t, http.StatusNotFound, get(r, "/admin/login").Code)
}
