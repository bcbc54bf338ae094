package content

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// LoadFile decodes a TOML portfolio and validates it.
func LoadFile(path string) (Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read content file: %w", err)
	}
	var p Portfolio
	if err := toml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parse content file %s: %w", path, err)
	}
	if err := Validate(p); err != nil {
		return Portfolio{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return p, nil
}

// Load returns the record from path, or Default when path is empty.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Encode writes p as TOML. The output round-trips through LoadFile.
func Encode(p Portfolio) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return buf.Bytes(), nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("link", func(fl validator.FieldLevel) bool {
		return validLink(fl.Field().String())
	})
	return v
}

// validLink accepts the "#" placeholder, site paths and http(s), mailto and
// tel URLs.
func validLink(s string) bool {
	switch {
	case s == "#", strings.HasPrefix(s, "/"):
		return true
	case strings.HasPrefix(s, "mailto:"), strings.HasPrefix(s, "tel:"):
		return len(s) > strings.Index(s, ":")+1
	case strings.HasPrefix(s, "http://"), strings.HasPrefix(s, "https://"):
		u, err := url.Parse(s)
		return err == nil && u.Host != ""
	}
	return false
}

// Validate checks struct constraints and that every showcase anchors to an
// entry that exists.
func Validate(p Portfolio) error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid content: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid content: %w", err)
	}
	for _, s := range p.Showcases {
		if !p.hasRef(s.Anchor, s.Ref) {
			return fmt.Errorf("showcase %q: %s %q: %w", s.Name, s.Anchor, s.Ref, ErrNotFound)
		}
	}
	return nil
}

func (p Portfolio) hasRef(anchor, ref string) bool {
	switch anchor {
	case AnchorProject:
		return slices.ContainsFunc(p.Projects, func(e Project) bool { return e.ID == ref })
	case AnchorExperience:
		return slices.ContainsFunc(p.Experience, func(e Experience) bool { return e.ID == ref })
	case AnchorEducation:
		return slices.ContainsFunc(p.Education, func(e Education) bool { return e.ID == ref })
	case AnchorSection:
		return slices.Contains(Sections(), ref)
	}
	return false
}

// Clone returns a deep copy of p.
func (p Portfolio) Clone() Portfolio {
	c := p
	c.Meta.Keywords = slices.Clone(p.Meta.Keywords)
	c.Navigation = slices.Clone(p.Navigation)
	c.Skills.Featured = slices.Clone(p.Skills.Featured)
	c.Skills.Groups = make([]SkillGroup, len(p.Skills.Groups))
	for i, g := range p.Skills.Groups {
		c.Skills.Groups[i] = SkillGroup{Name: g.Name, Skills: slices.Clone(g.Skills)}
	}
	c.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Technologies = slices.Clone(pr.Technologies)
		c.Projects[i] = pr
	}
	c.Experience = make([]Experience, len(p.Experience))
	for i, e := range p.Experience {
		e.Achievements = slices.Clone(e.Achievements)
		e.Technologies = slices.Clone(e.Technologies)
		c.Experience[i] = e
	}
	c.Education = make([]Education, len(p.Education))
	for i, e := range p.Education {
		e.Achievements = slices.Clone(e.Achievements)
		e.Coursework = slices.Clone(e.Coursework)
		e.Projects = slices.Clone(e.Projects)
		c.Education[i] = e
	}
	c.Social = slices.Clone(p.Social)
	c.About.Paragraphs = slices.Clone(p.About.Paragraphs)
	c.About.Skills = slices.Clone(p.About.Skills)
	c.About.CoreTechnologies = slices.Clone(p.About.CoreTechnologies)
	c.About.Stats = slices.Clone(p.About.Stats)
	c.Showcases = slices.Clone(p.Showcases)
	c.Mentions = slices.Clone(p.Mentions)
	return c
}

// Segment is a run of text, linked when URL is set.
type Segment struct {
	Text string `json:"text"`
	URL  string `json:"url,omitempty"`
}

// Segments splits text so that every whole-word occurrence of a mention
// becomes its own linked segment. The leftmost match wins; on a tie the
// mention listed first.
func Segments(text string, mentions []Mention) []Segment {
	var out []Segment
	start := 0
	for start < len(text) {
		at, m := -1, Mention{}
		for _, mm := range mentions {
			if mm.Text == "" {
				continue
			}
			if i := indexWord(text, mm.Text, start); i >= 0 && (at < 0 || i < at) {
				at, m = i, mm
			}
		}
		if at < 0 {
			break
		}
		if at > start {
			out = append(out, Segment{Text: text[start:at]})
		}
		out = append(out, Segment{Text: m.Text, URL: m.URL})
		start = at + len(m.Text)
	}
	if start < len(text) {
		out = append(out, Segment{Text: text[start:]})
	}
	return out
}

// indexWord returns the first index at or after from where word occurs
// without a word character running into either end of it.
func indexWord(s, word string, from int) int {
	for from <= len(s)-len(word) {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		if atBoundary(s, word, i) {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		from = i + size
	}
	return -1
}

func atBoundary(s, word string, i int) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if isWordRune(first) && i > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:i]); isWordRune(r) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	if end := i + len(word); isWordRune(last) && end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
