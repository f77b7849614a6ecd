// Package result resolves which image a result view displays and the
// placeholder analysis that goes with it.
package result

import (
	"net/url"
	"strings"

	"gamesnap-xray/internal/utils"

	"github.com/samber/lo"
)

const (
	ModeStatic = "static"
	ModeDemo   = "demo"
	ModeUpload = "upload"
	ModeNone   = "none"

	StepPending = "pending"

	// demoSample is the file shown for demo=1, under the demo URL prefix.
	demoSample = "nba_01.jpg"
)

var checklist = []string{"Detect scorebug", "Identify game", "Render poster"}

// Query holds the result view parameters: f is an uploaded filename, demo
// is "1" for the built-in sample and src a public static path.
type Query struct {
	F    string
	Demo string
	Src  string
}

type Step struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

type View struct {
	ID             string   `json:"id"`
	Mode           string   `json:"mode"`
	ImageURL       string   `json:"imageUrl"`
	Checklist      []Step   `json:"checklist"`
	WinProbability *float64 `json:"winProbability"`
}

// Resolver knows the public prefixes the server actually serves.
type Resolver struct {
	demoPrefix     string
	staticPrefixes []string
}

// NewResolver builds a Resolver for the configured demo URL prefix.
func NewResolver(demoPrefix string) *Resolver {
	if !strings.HasSuffix(demoPrefix, "/") {
		demoPrefix += "/"
	}
	return &Resolver{
		demoPrefix:     demoPrefix,
		staticPrefixes: lo.Uniq([]string{demoPrefix, "/images/", "/gallery/"}),
	}
}

// DemoImage is the URL shown for demo=1.
func (rs *Resolver) DemoImage() string {
	return rs.demoPrefix + demoSample
}

// Resolve picks the image source with precedence src > demo > f.
// Parameters that fail their checks are ignored.
func (rs *Resolver) Resolve(id string, q Query) View {
	v := View{
		ID:   id,
		Mode: ModeNone,
		Checklist: lo.Map(checklist, func(label string, _ int) Step {
			return Step{Label: label, Status: StepPending}
		}),
	}

	switch {
	case rs.IsSafeStatic(q.Src):
		v.Mode, v.ImageURL = ModeStatic, q.Src
	case q.Demo == "1":
		v.Mode, v.ImageURL = ModeDemo, rs.DemoImage()
	case utils.IsSafeFilename(q.F):
		v.Mode, v.ImageURL = ModeUpload, "/api/uploads/"+url.PathEscape(q.F)
	}
	return v
}

// IsSafeStatic allows only local paths under the known public folders.
func (rs *Resolver) IsSafeStatic(src string) bool {
	if strings.Contains(src, "..") || strings.Contains(src, `\`) {
		return false
	}
	return lo.SomeBy(rs.staticPrefixes, func(p string) bool {
		return strings.HasPrefix(src, p)
	})
}
