package web

import (
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/Drogon4231/portfolio/internal/config"
	"github.com/Drogon4231/portfolio/internal/portfolio"
)

// TrackButton is one entry of the project filter bar. Href is the plain link
// target; Fragment is what HTMX fetches instead.
type TrackButton struct {
	Track    portfolio.Track
	Label    string
	Active   bool
	Href     string
	Fragment string
}

// Page is the view model behind index.html and the projects fragment.
// Static pages are exported files with no fragment endpoint behind them.
type Page struct {
	Profile        portfolio.Profile
	Track          portfolio.Track
	Tracks         []TrackButton
	Projects       []portfolio.Project
	Certifications []portfolio.Certification
	Skills         []portfolio.SkillBucket
	ResumeURLs     []string
	BasePath       string
	RootClass      string
	Dark           bool
	Static         bool
	Year           int
}

// NewPage assembles the page for one track and initial theme.
func NewPage(content portfolio.Content, site config.SiteConfig, track portfolio.Track, dark, static bool) Page {
	root := portfolio.NewClassList("scroll-smooth")
	theme := portfolio.NewTheme(root, dark)

	return Page{
		Profile:        content.Profile,
		Track:          track,
		Tracks:         trackButtons(content.Projects, site.BasePath, track, static),
		Projects:       portfolio.FilterByTrack(content.Projects, track),
		Certifications: content.Certifications,
		Skills:         content.Skills,
		ResumeURLs:     site.ResumeURLs(),
		BasePath:       site.BasePath,
		RootClass:      root.String(),
		Dark:           theme.Dark(),
		Static:         static,
		Year:           time.Now().Year(),
	}
}

func trackButtons(projects []portfolio.Project, base string, active portfolio.Track, static bool) []TrackButton {
	tracks := portfolio.Tracks(projects)
	buttons := make([]TrackButton, 0, len(tracks))
	for _, t := range tracks {
		b := TrackButton{
			Track:    t,
			Label:    TrackLabel(t),
			Active:   t == active,
			Fragment: base + "projects?track=" + string(t),
		}
		if static {
			b.Href = base + t.Slug() + "/"
		} else {
			b.Href = base + "?track=" + string(t)
		}
		buttons = append(buttons, b)
	}
	return buttons
}

// TrackLabel is the button text for a track.
func TrackLabel(t portfolio.Track) string {
	if t == portfolio.TrackAll {
		return "All"
	}
	return string(t)
}

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"lower": strings.ToLower,
		"add":   func(a, b int) int { return a + b },
	}).ParseFS(templateFS, "templates/*.html")
}

// StaticFS is the embedded static directory, rooted at its contents.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// SiteContent is the default content with the configured contact links.
func SiteContent(site config.SiteConfig) portfolio.Content {
	content := portfolio.DefaultContent()
	content.Profile.GitHubURL = site.GitHubURL
	content.Profile.LinkedInURL = site.LinkedInURL
	content.Profile.Email = site.ContactEmail
	return content
}
