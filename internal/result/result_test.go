package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		query     Query
		wantMode  string
		wantImage string
	}{
		{"nothing", Query{}, ModeNone, ""},
		{"uploaded file", Query{F: "abc.png"}, ModeUpload, "/api/uploads/abc.png"},
		{"demo flag", Query{Demo: "1"}, ModeDemo, "/demo/nba_01.jpg"},
		{"demo flag other than 1", Query{Demo: "true"}, ModeNone, ""},
		{"static src", Query{Src: "/demo/2024_finals.jpg"}, ModeStatic, "/demo/2024_finals.jpg"},
		{"gallery src", Query{Src: "/gallery/a.png"}, ModeStatic, "/gallery/a.png"},

		{"src beats demo and f", Query{F: "abc.png", Demo: "1", Src: "/images/x.webp"}, ModeStatic, "/images/x.webp"},
		{"demo beats f", Query{F: "abc.png", Demo: "1"}, ModeDemo, "/demo/nba_01.jpg"},

		{"external src falls through to demo", Query{Demo: "1", Src: "https://evil.example/x.png"}, ModeDemo, "/demo/nba_01.jpg"},
		{"traversal src falls through to f", Query{F: "abc.png", Src: "/demo/../secret"}, ModeUpload, "/api/uploads/abc.png"},
		{"protocol relative src", Query{Src: "//evil.example/demo/x.png"}, ModeNone, ""},
		{"unsafe f", Query{F: "../etc/passwd"}, ModeNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			v := NewResolver("/demo/").Resolve("r1", tt.query)
			req.Equal("r1", v.ID)
			req.Equal(tt.wantMode, v.Mode)
			req.Equal(tt.wantImage, v.ImageURL)
		})
	}
}

func TestResolve_Placeholders(t *testing.T) {
	req := require.New(t)
	v := NewResolver("/demo/").Resolve("demo", Query{Demo: "1"})

	req.Nil(v.WinProbability)
	req.Equal([]Step{
		{Label: "Detect scorebug", Status: StepPending},
		{Label: "Identify game", Status: StepPending},
		{Label: "Render poster", Status: StepPending},
	}, v.Checklist)
}

func TestResolve_CustomDemoPrefix(t *testing.T) {
	rs := NewResolver("/samples")

	tests := []struct {
		name      string
		query     Query
		wantMode  string
		wantImage string
	}{
		{"demo flag follows the prefix", Query{Demo: "1"}, ModeDemo, "/samples/nba_01.jpg"},
		{"src under the configured prefix", Query{Src: "/samples/x.jpg"}, ModeStatic, "/samples/x.jpg"},
		{"src under the unserved default prefix", Query{Src: "/demo/x.jpg"}, ModeNone, ""},
		{"other public folders still allowed", Query{Src: "/images/x.png"}, ModeStatic, "/images/x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			v := rs.Resolve("r1", tt.query)
			req.Equal(tt.wantMode, v.Mode)
			req.Equal(tt.wantImage, v.ImageURL)
		})
	}
}
