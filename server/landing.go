package server

import (
	"bytes"
	"html/template"
	"io/fs"

	"github.com/yuin/goldmark"
)

type landingData struct {
	Intro template.HTML
}

// renderLanding converts web/landing.md with goldmark and places it in the
// web/index.html shell. Called once at startup.
func renderLanding(web fs.FS) ([]byte, error) {
	md, err := fs.ReadFile(web, "web/landing.md")
	if err != nil {
		return nil, err
	}
	var intro bytes.Buffer
	if err := goldmark.Convert(md, &intro); err != nil {
		return nil, err
	}

	tpl, err := template.ParseFS(web, "web/index.html")
	if err != nil {
		return nil, err
	}
	var page bytes.Buffer
	// landing.md ships in the binary, so its HTML is trusted.
	if err := tpl.Execute(&page, landingData{Intro: template.HTML(intro.String())}); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}
