package portfolio

// Category is the closed set of project areas used by the track filter.
type Category string

const (
	CategoryGPU      Category = "GPU"
	CategoryArch     Category = "ARCH"
	CategoryRTL      Category = "RTL"
	CategoryEmbedded Category = "EMBEDDED"
)

// Track is the active project filter: a Category or TrackAll.
type Track string

// TrackAll shows every project.
const TrackAll Track = "ALL"

type Project struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Tech     []string `json:"tech"`
	Bullets  []string `json:"bullets"`
	Link     string   `json:"link"`
}

type Certification struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Year     int    `json:"year"`
	Link     string `json:"link,omitempty"`
}

type SkillBucket struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Profile is the fixed copy around the data tables.
type Profile struct {
	Name        string `json:"name"`
	Initials    string `json:"initials"`
	Tagline     string `json:"tagline"`
	About       string `json:"about"`
	GitHubURL   string `json:"github_url"`
	LinkedInURL string `json:"linkedin_url"`
	Email       string `json:"email"`
}

// Content is everything the page renders.
type Content struct {
	Profile        Profile         `json:"profile"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Skills         []SkillBucket   `json:"skills"`
}
