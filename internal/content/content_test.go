package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefault_ProjectsHaveShowcases(t *testing.T) {
	p := Default()
	for _, id := range []string{"1", "2", "3", "4"} {
		found := false
		for _, s := range p.Showcases {
			if s.Anchor == AnchorProject && s.Ref == id {
				found = true
			}
		}
		assert.True(t, found, "project %s has no showcase", id)
	}
}

func TestPortfolio_Project(t *testing.T) {
	p := Default()

	pr, err := p.Project("2")
	require.NoError(t, err)
	assert.Equal(t, "SCADA HMI & Real-time Database Configuration", pr.Title)

	_, err = p.Project("42")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatValue(t *testing.T) {
	p := Default()
	assert.Equal(t, "2+", p.StatValue(Stat{Key: "experience", Value: "2+"}))
	assert.Equal(t, "5+", p.StatValue(Stat{Key: "projects"}))
	assert.Equal(t, "", p.StatValue(Stat{Key: "unknown"}))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "PPW", Initials("Personal Portfolio Website"))
	assert.Equal(t, "", Initials("   "))
	assert.Equal(t, "光", Initials("光記"))
}

func TestIsLink(t *testing.T) {
	assert.False(t, IsLink(""))
	assert.False(t, IsLink("#"))
	assert.False(t, IsLink(" # "))
	assert.True(t, IsLink("https://example.com"))
}

func TestValidLink(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#", true},
		{"/image/mcs.png", true},
		{"https://github.com/yorkei04", true},
		{"http://example.com/a?b=c", true},
		{"mailto:someone@example.com", true},
		{"mailto:", false},
		{"tel:+85212345678", true},
		{"https://", false},
		{"ftp://example.com", false},
		{"github.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, validLink(tt.in))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Portfolio)
		wantErr string
	}{
		{"missing name", func(p *Portfolio) { p.Name = "" }, "Portfolio.Name"},
		{"duplicate project id", func(p *Portfolio) { p.Projects[1].ID = p.Projects[0].ID }, "Portfolio.Projects"},
		{"bad social url", func(p *Portfolio) { p.Social[0].URL = "github" }, "Portfolio.Social[0].URL"},
		{"skill level out of range", func(p *Portfolio) { p.Skills.Featured[0].Level = 120 }, "Level"},
		{"bad showcase align", func(p *Portfolio) { p.Showcases[0].Align = "bottom" }, "Align"},
		{"showcase to missing project", func(p *Portfolio) { p.Showcases[1].Ref = "99" }, "not found"},
		{"showcase to unknown section", func(p *Portfolio) { p.Showcases[0].Ref = "footer" }, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			err := Validate(p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_RoundTrip(t *testing.T) {
	data, err := Encode(Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "portfolio.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Name, p.Name)
	assert.Len(t, p.Projects, len(Default().Projects))
	assert.Equal(t, Default().Showcases, p.Showcases)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("name = "), 0o644))
	_, err = LoadFile(bad)
	assert.ErrorContains(t, err, "parse content file")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte(`title = "Engineer"`+"\n[hero]\ngreeting = \"Hi\"\n"), 0o644))
	_, err = LoadFile(invalid)
	assert.ErrorContains(t, err, "Portfolio.Name")
}

func TestLoad_DefaultWhenEmpty(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Kei", p.Name)
}

func TestClone_IsDeep(t *testing.T) {
	orig := Default()
	c := orig.Clone()
	c.Projects[0].Technologies[0] = "changed"
	c.Skills.Groups[0].Skills[0].Name = "changed"
	c.Education[0].Coursework[0] = "changed"
	c.Showcases[0].Caption = "changed"

	assert.NotEqual(t, "changed", orig.Projects[0].Technologies[0])
	assert.NotEqual(t, "changed", orig.Skills.Groups[0].Skills[0].Name)
	assert.NotEqual(t, "changed", orig.Education[0].Coursework[0])
	assert.NotEqual(t, "changed", orig.Showcases[0].Caption)
}

func TestSegments(t *testing.T) {
	mentions := []Mention{{Text: "Andrew", URL: "https://a.example"}, {Text: "MTR", URL: "https://m.example"}}

	got := Segments("Hi Andrew, welcome to MTR", mentions)
	assert.Equal(t, []Segment{
		{Text: "Hi "},
		{Text: "Andrew", URL: "https://a.example"},
		{Text: ", welcome to "},
		{Text: "MTR", URL: "https://m.example"},
	}, got)

	assert.Equal(t, []Segment{{Text: "plain"}}, Segments("plain", mentions))
	assert.Empty(t, Segments("", mentions))
	assert.Equal(t, []Segment{{Text: "x"}}, Segments("x", []Mention{{Text: ""}}))
}

func TestSegments_WholeWordsOnly(t *testing.T) {
	mentions := []Mention{{Text: "Andrew", URL: "https://a.example"}, {Text: "MTR", URL: "https://m.example"}}

	got := Segments("Andrewson met Andrew. MTRs and _MTR are not MTR", mentions)
	assert.Equal(t, []Segment{
		{Text: "Andrewson met "},
		{Text: "Andrew", URL: "https://a.example"},
		{Text: ". MTRs and _MTR are not "},
		{Text: "MTR", URL: "https://m.example"},
	}, got)

	assert.Equal(t, []Segment{{Text: "AndrewAndrew"}}, Segments("AndrewAndrew", mentions))
	assert.Equal(t, []Segment{
		{Text: "("},
		{Text: "Andrew", URL: "https://a.example"},
		{Text: ")"},
	}, Segments("(Andrew)", mentions))
}

func TestSegments_DefaultHeroMention(t *testing.T) {
	p := Default()
	var linked []Segment
	for _, s := range Segments(p.Hero.Description, p.Mentions) {
		if s.URL != "" {
			linked = append(linked, s)
		}
	}
	require.Len(t, linked, 1)
	assert.Equal(t, "Andrew SZE-TO", linked[0].Text)
	assert.True(t, strings.HasPrefix(linked[0].URL, "https://github.com/"))
}
