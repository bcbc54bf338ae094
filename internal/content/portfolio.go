// Package content holds the portfolio record: every piece of copy, link and
// image path the page renders.
//
// The record is built once at startup, either from the compiled-in Default
// or from a TOML file, and is never modified afterwards. Handlers that need
// to adjust it work on a Clone.
package content

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// ErrNotFound is returned when an id does not name an entry.
var ErrNotFound = errors.New("content: not found")

// Portfolio is the whole page's content.
type Portfolio struct {
	Name         string `toml:"name" json:"name" validate:"required"`
	Title        string `toml:"title" json:"title" validate:"required"`
	Location     string `toml:"location" json:"location"`
	Availability string `toml:"availability" json:"availability"`
	Email        string `toml:"email" json:"email" validate:"omitempty,email"`
	Phone        string `toml:"phone" json:"phone"`

	Meta       Meta         `toml:"meta" json:"meta"`
	Hero       Hero         `toml:"hero" json:"hero"`
	Navigation []NavLink    `toml:"navigation" json:"navigation" validate:"dive"`
	Skills     Skills       `toml:"skills" json:"skills"`
	Projects   []Project    `toml:"projects" json:"projects" validate:"unique=ID,dive"`
	Education  []Education  `toml:"education" json:"education" validate:"unique=ID,dive"`
	Experience []Experience `toml:"experience" json:"experience" validate:"unique=ID,dive"`
	Social     []SocialLink `toml:"social" json:"social" validate:"dive"`
	About      About        `toml:"about" json:"about"`
	Showcases  []Showcase   `toml:"showcases" json:"showcases" validate:"unique=Name,dive"`
	Mentions   []Mention    `toml:"mentions" json:"mentions" validate:"dive"`
	Sidebar    Figure       `toml:"sidebar" json:"sidebar"`
}

// Meta is document-level metadata for the <head>.
type Meta struct {
	Title       string   `toml:"title" json:"title"`
	Description string   `toml:"description" json:"description"`
	Keywords    []string `toml:"keywords" json:"keywords"`
	SiteName    string   `toml:"site_name" json:"siteName"`
	Locale      string   `toml:"locale" json:"locale"`
}

// Hero is the intro copy typed out at the top of the page.
type Hero struct {
	Greeting    string `toml:"greeting" json:"greeting" validate:"required"`
	Tagline     string `toml:"tagline" json:"tagline"`
	Description string `toml:"description" json:"description"`
}

// NavLink is a header navigation entry.
type NavLink struct {
	Label string `toml:"label" json:"label" validate:"required"`
	Href  string `toml:"href" json:"href" validate:"required"`
}

// Skill is a named technology with a self-assessed level out of 100.
type Skill struct {
	Name     string `toml:"name" json:"name" validate:"required"`
	Level    int    `toml:"level" json:"level" validate:"gte=0,lte=100"`
	Category string `toml:"category" json:"category,omitempty"`
	Featured bool   `toml:"featured" json:"featured,omitempty"`
}

// SkillGroup is one category of the full skills list.
type SkillGroup struct {
	Name   string  `toml:"name" json:"name" validate:"required"`
	Skills []Skill `toml:"skills" json:"skills" validate:"dive"`
}

// Skills holds the featured skills and the complete list by category.
type Skills struct {
	Featured []Skill      `toml:"featured" json:"featured" validate:"dive"`
	Groups   []SkillGroup `toml:"groups" json:"groups" validate:"dive"`
}

// Project is a card in the Projects section.
type Project struct {
	ID           string   `toml:"id" json:"id" validate:"required"`
	Title        string   `toml:"title" json:"title" validate:"required"`
	Description  string   `toml:"description" json:"description"`
	Image        string   `toml:"image" json:"image"`
	Technologies []string `toml:"technologies" json:"technologies"`
	GithubURL    string   `toml:"github_url" json:"githubUrl,omitempty" validate:"omitempty,link"`
	LiveURL      string   `toml:"live_url" json:"liveUrl,omitempty" validate:"omitempty,link"`
	ReferenceURL string   `toml:"reference_url" json:"referenceUrl,omitempty" validate:"omitempty,link"`
	Featured     bool     `toml:"featured" json:"featured"`
	// Preview is the longer caption shown under the card on small screens,
	// where the hover overlay is hidden.
	Preview string `toml:"preview" json:"preview,omitempty"`
}

// Experience is an entry in the Experience timeline.
type Experience struct {
	ID           string   `toml:"id" json:"id" validate:"required"`
	Company      string   `toml:"company" json:"company" validate:"required"`
	Position     string   `toml:"position" json:"position" validate:"required"`
	Duration     string   `toml:"duration" json:"duration"`
	Location     string   `toml:"location" json:"location"`
	Logo         string   `toml:"logo" json:"logo,omitempty"`
	Description  string   `toml:"description" json:"description"`
	Achievements []string `toml:"achievements" json:"achievements"`
	Technologies []string `toml:"technologies" json:"technologies"`
}

// Education is an entry in the Education section.
type Education struct {
	ID           string   `toml:"id" json:"id" validate:"required"`
	Institution  string   `toml:"institution" json:"institution" validate:"required"`
	Degree       string   `toml:"degree" json:"degree" validate:"required"`
	Duration     string   `toml:"duration" json:"duration"`
	Location     string   `toml:"location" json:"location"`
	Logo         string   `toml:"logo" json:"logo,omitempty"`
	Description  string   `toml:"description" json:"description"`
	Achievements []string `toml:"achievements" json:"achievements"`
	Coursework   []string `toml:"coursework" json:"coursework"`
	Projects     []string `toml:"projects" json:"projects"`
	GPA          string   `toml:"gpa" json:"gpa"`
	Image        string   `toml:"image" json:"image,omitempty"`
}

// SocialLink is an icon link in the hero and contact sections.
type SocialLink struct {
	Name string `toml:"name" json:"name" validate:"required"`
	URL  string `toml:"url" json:"url" validate:"required,link"`
	Icon string `toml:"icon" json:"icon" validate:"required"`
}

// About is the About section.
type About struct {
	Title                 string   `toml:"title" json:"title"`
	Subtitle              string   `toml:"subtitle" json:"subtitle"`
	WhatIDoTitle          string   `toml:"what_i_do_title" json:"whatIDoTitle"`
	CoreTechnologiesTitle string   `toml:"core_technologies_title" json:"coreTechnologiesTitle"`
	Paragraphs            []string `toml:"paragraphs" json:"paragraphs"`
	Skills                []string `toml:"skills" json:"skills"`
	CurrentFocus          Focus    `toml:"current_focus" json:"currentFocus"`
	CoreTechnologies      []Skill  `toml:"core_technologies" json:"coreTechnologies" validate:"dive"`
	Stats                 []Stat   `toml:"stats" json:"stats" validate:"dive"`
}

// Focus is the "currently exploring" callout.
type Focus struct {
	Title       string `toml:"title" json:"title"`
	Description string `toml:"description" json:"description"`
}

// Stat is a headline number. Stats with an empty Value are derived from
// the record; see Portfolio.StatValue.
type Stat struct {
	Key   string `toml:"key" json:"key" validate:"required"`
	Value string `toml:"value" json:"value,omitempty"`
	Label string `toml:"label" json:"label" validate:"required"`
}

// Anchor kinds a Showcase can align with.
const (
	AnchorProject    = "project"
	AnchorExperience = "experience"
	AnchorEducation  = "education"
	AnchorSection    = "section"
)

// Showcase is a decorative image overlay and the element it follows.
type Showcase struct {
	Name    string `toml:"name" json:"name" validate:"required"`
	Image   string `toml:"image" json:"image" validate:"required"`
	Alt     string `toml:"alt" json:"alt"`
	Caption string `toml:"caption" json:"caption"`
	// Anchor is one of the Anchor* kinds; Ref is the entry id or, for
	// sections, the section's HTML id.
	Anchor string `toml:"anchor" json:"anchor" validate:"required,oneof=project experience education section"`
	Ref    string `toml:"ref" json:"ref" validate:"required"`
	Align  string `toml:"align" json:"align" validate:"omitempty,oneof=top center"`
}

// Figure is a captioned image.
type Figure struct {
	Image   string `toml:"image" json:"image"`
	Alt     string `toml:"alt" json:"alt"`
	Caption string `toml:"caption" json:"caption"`
}

// Mention turns an occurrence of Text in the hero description into a link.
type Mention struct {
	Text string `toml:"text" json:"text" validate:"required"`
	URL  string `toml:"url" json:"url" validate:"required,link"`
}

// Project returns the project with the given id.
func (p Portfolio) Project(id string) (Project, error) {
	i := slices.IndexFunc(p.Projects, func(pr Project) bool { return pr.ID == id })
	if i < 0 {
		return Project{}, ErrNotFound
	}
	return p.Projects[i], nil
}

// StatValue returns the display value for a stat, deriving "projects" from
// the number of projects when no value is set.
func (p Portfolio) StatValue(s Stat) string {
	if s.Value != "" {
		return s.Value
	}
	if s.Key == "projects" {
		return strconv.Itoa(len(p.Projects)) + "+"
	}
	return ""
}

// Sections lists the HTML ids of the page's observed sections, in page
// order.
func Sections() []string {
	return []string{"about", "projects", "experience", "education", "contact"}
}

// Initials returns the first letter of every word in title, used as the
// placeholder when a project image fails to load.
func Initials(title string) string {
	var b strings.Builder
	for _, w := range strings.Fields(title) {
		for _, r := range w {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// IsLink reports whether url is worth rendering as a button. Empty strings
// and the "#" placeholder are not.
func IsLink(url string) bool {
	url = strings.TrimSpace(url)
	return url != "" && url != "#"
}
