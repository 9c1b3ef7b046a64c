// Package domain holds the admin embed model
package domain

import (
	"net/url"
	"strings"

	"benchmarks/internal/platform/config"
	perr "benchmarks/internal/platform/errors"
	str "benchmarks/internal/platform/strings"
)

// Embed is one spreadsheet the admin pages show inline
type Embed struct {
	Slug      string `json:"slug" example:"popular-objects"`
	Title     string `json:"title" example:"ADMIN - Popular Objects"`
	SheetURL  string `json:"sheet_url" example:"https://docs.google.com/spreadsheets/d/abc/edit?usp=sharing"`
	EmbedURL  string `json:"embed_url" example:"https://docs.google.com/spreadsheets/d/abc/preview"`
	FolderURL string `json:"folder_url,omitempty" example:"https://drive.google.com/drive/folders/xyz"`
}

// Defaults are the two admin pages of the benchmark dashboard
func Defaults() []Embed {
	return []Embed{
		New(
			"popular-objects",
			"ADMIN - Popular Objects",
			"https://docs.google.com/spreadsheets/d/1I7rzIKf_CNjdP1iYGHivom5eS8YtGlSaP7ltG-HVw3w/edit?usp=sharing",
			"https://drive.google.com/drive/u/0/folders/1qZP_dE9Hk7QTjSaf3hQPqHjgKbVHOGk5",
		),
		New(
			"digital-calendar",
			"ADMIN - Digital Calendar",
			"https://docs.google.com/spreadsheets/d/1oaMzcoyGzpY8Wg8EL8wlLtb4OHWzExOu/edit?usp=sharing",
			"",
		),
	}
}

// New builds an Embed and derives its preview url
func New(slug, title, sheetURL, folderURL string) Embed {
	return Embed{
		Slug:      slug,
		Title:     title,
		SheetURL:  sheetURL,
		EmbedURL:  PreviewURL(sheetURL),
		FolderURL: folderURL,
	}
}

// PreviewURL turns a sheet edit link into its read only preview
// Links without an /edit segment come back unchanged
func PreviewURL(sheet string) string {
	u, err := url.Parse(sheet)
	if err != nil {
		return sheet
	}
	i := strings.Index(u.Path, "/edit")
	if i < 0 {
		return sheet
	}
	u.Path = u.Path[:i] + "/preview"
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

// Parse reads embeds from slug|title|sheet_url|folder_url entries
// The folder url is optional
func Parse(entries []string) ([]Embed, error) {
	out := make([]Embed, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		parts := strings.Split(e, "|")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, perr.InvalidArgf("embed %q: want slug|title|sheet_url|folder_url", e)
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		folder := ""
		if len(parts) == 4 {
			folder = parts[3]
		}
		em := New(parts[0], parts[1], parts[2], folder)
		if err := em.Validate(); err != nil {
			return nil, err
		}
		if seen[em.Slug] {
			return nil, perr.WithField(perr.InvalidArgf("duplicate embed slug %q", em.Slug), "slug")
		}
		seen[em.Slug] = true
		out = append(out, em)
	}
	return out, nil
}

// Validate checks the slug and that every url is absolute http(s)
func (e Embed) Validate() error {
	switch {
	case !str.IsSlug(e.Slug):
		return perr.WithField(perr.InvalidArgf("embed slug %q is not a url slug", e.Slug), "slug")
	case e.Title == "":
		return perr.WithField(perr.InvalidArgf("embed %s has no title", e.Slug), "title")
	case !config.ValidURL(e.SheetURL):
		return perr.WithField(perr.InvalidArgf("embed %s sheet url %q is not absolute http(s)", e.Slug, e.SheetURL), "sheet_url")
	case e.FolderURL != "" && !config.ValidURL(e.FolderURL):
		return perr.WithField(perr.InvalidArgf("embed %s folder url %q is not absolute http(s)", e.Slug, e.FolderURL), "folder_url")
	}
	return nil
}
