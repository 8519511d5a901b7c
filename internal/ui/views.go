package ui

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/theme"
	"github.com/JaimeStill/mentor/internal/upload"
	"github.com/JaimeStill/mentor/pkg/formatting"
	"github.com/JaimeStill/mentor/pkg/web"
)

const layout = "app"

var (
	homeView     = web.ViewDef{Route: "/", Template: "home.html", Title: "Mushroom Mentor", Page: "home"}
	identifyView = web.ViewDef{Route: "/identify", Template: "identify.html", Title: "Identify a Mushroom", Page: "identify"}
	notFoundView = web.ViewDef{Template: "not-found.html", Title: "Page Not Found"}
)

var allViews = []web.ViewDef{homeView, identifyView, notFoundView}

var templateFuncs = template.FuncMap{
	"toggleLabel": func(t string) string {
		return theme.Parse(t).ToggleLabel()
	},
	"bytes": func(n int64) string {
		return formatting.FormatBytes(n, 1)
	},
	"preview": previewURL,
	"rgb": rgb,
	"swatch": func(c [3]float64) template.CSS {
		return template.CSS("background: " + rgb(c))
	},
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', 4, 64)
	},
}

func rgb(c [3]float64) string {
	return fmt.Sprintf("rgb(%.0f, %.0f, %.0f)", c[0], c[1], c[2])
}

// previewURL marks an uploaded image's data URI as safe for an img src.
// Anything that is not an image data URI renders as an empty source.
func previewURL(img *upload.Image) template.URL {
	if img == nil || !strings.HasPrefix(img.DataURI, "data:image/") {
		return ""
	}
	return template.URL(img.DataURI)
}

type homeData struct {
	Varieties []knowledge.Variety
}

type roleOption struct {
	Value    string
	Label    string
	Selected bool
}

type identifyData struct {
	identify.Snapshot
	Roles       []roleOption
	RequireRole bool
	MaxUpload   string
}

func roleOptions(selected identify.Role) []roleOption {
	out := make([]roleOption, 0, len(identify.Roles))
	for _, r := range identify.Roles {
		out = append(out, roleOption{
			Value:    string(r),
			Label:    r.Label(),
			Selected: r == selected,
		})
	}
	return out
}
