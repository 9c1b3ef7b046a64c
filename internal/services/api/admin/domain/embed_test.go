package domain

import (
	"testing"

	perr "benchmarks/internal/platform/errors"
)

func TestPreviewURL(t *testing.T) {
	cases := map[string]string{
		"https://docs.google.com/spreadsheets/d/abc/edit?usp=sharing": "https://docs.google.com/spreadsheets/d/abc/preview",
		"https://docs.google.com/spreadsheets/d/abc/edit#gid=0":       "https://docs.google.com/spreadsheets/d/abc/preview",
		"https://docs.google.com/spreadsheets/d/abc/edit/extra?x=1":   "https://docs.google.com/spreadsheets/d/abc/preview",
		"https://docs.google.com/spreadsheets/d/e/xyz/pub?output=csv": "https://docs.google.com/spreadsheets/d/e/xyz/pub?output=csv",
	}
	for in, want := range cases {
		if got := PreviewURL(in); got != want {
			t.Fatalf("%s: got %s", in, got)
		}
	}
}

func TestDefaultsAreValid(t *testing.T) {
	d := Defaults()
	if len(d) != 2 || d[0].Slug != "popular-objects" || d[1].Slug != "digital-calendar" {
		t.Fatalf("defaults %+v", d)
	}
	for _, e := range d {
		if err := e.Validate(); err != nil {
			t.Fatalf("%s: %v", e.Slug, err)
		}
	}
	if d[0].EmbedURL != "https://docs.google.com/spreadsheets/d/1I7rzIKf_CNjdP1iYGHivom5eS8YtGlSaP7ltG-HVw3w/preview" {
		t.Fatalf("embed url %s", d[0].EmbedURL)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse([]string{
		"weekly | Weekly | https://docs.google.com/spreadsheets/d/w/edit",
		"monthly|Monthly|https://docs.google.com/spreadsheets/d/m/edit|https://drive.google.com/drive/folders/f",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "weekly" || got[0].FolderURL != "" || got[1].FolderURL == "" {
		t.Fatalf("got %+v", got)
	}
	if got[1].EmbedURL != "https://docs.google.com/spreadsheets/d/m/preview" {
		t.Fatalf("embed %s", got[1].EmbedURL)
	}

	bad := []struct {
		entry string
		field string
	}{
		{"only|two", ""},
		{"Bad Slug|T|https://x.test/a", "slug"},
		{"ok||https://x.test/a", "title"},
		{"ok|T|ftp://x.test/a", "sheet_url"},
		{"ok|T|https://x.test/a|/relative", "folder_url"},
	}
	for _, b := range bad {
		_, err := Parse([]string{b.entry})
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != b.field {
			t.Fatalf("%q: got %v", b.entry, err)
		}
	}

	_, err = Parse([]string{"a|A|https://x.test/1", "a|B|https://x.test/2"})
	if e, ok := perr.As(err); !ok || e.Field() != "slug" {
		t.Fatalf("duplicate: %v", err)
	}
}
