// Package models defines the catalog entry and the input used to save one.
package models

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

// Entry is one catalog item as held in memory, in the local cache and
// (field for field) in the remote entries table.
type Entry struct {
	// ID is opaque and immutable after creation.
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Theme1      string `json:"theme1" yaml:"theme1,omitempty"`
	Theme2      string `json:"theme2" yaml:"theme2,omitempty"`
	Description string `json:"description" yaml:"description,omitempty"`
	Link        string `json:"link" yaml:"link,omitempty"`
	Month       int    `json:"month" yaml:"month"`
	Year        int    `json:"year" yaml:"year"`

	// ImageURL is the public retrieval URL, or empty.
	ImageURL string `json:"imageUrl" yaml:"image_url,omitempty"`
	// ImagePath is the remote object key; empty when there is no image or
	// the URL was supplied by hand.
	ImagePath string `json:"imagePath" yaml:"image_path,omitempty"`
}

// ImageFile is an image to upload alongside a save.
type ImageFile struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Draft carries the user-editable fields of a save.
type Draft struct {
	Title       string
	Category    string
	Theme1      string
	Theme2      string
	Description string
	Link        string
	Month       int
	Year        int
	ImageURL    string
	Image       *ImageFile
}

// Normalize trims every string field and truncates the description.
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Category = strings.TrimSpace(d.Category)
	d.Theme1 = strings.TrimSpace(d.Theme1)
	d.Theme2 = strings.TrimSpace(d.Theme2)
	d.Description = Truncate(strings.TrimSpace(d.Description), common.DescriptionMaxLen)
	d.Link = strings.TrimSpace(d.Link)
	d.ImageURL = strings.TrimSpace(d.ImageURL)
	return d
}

// Entry builds the candidate entry for id. ImagePath is left empty; it is
// only set from an upload result.
func (d Draft) Entry(id string) Entry {
	return Entry{
		ID:          id,
		Title:       d.Title,
		Category:    d.Category,
		Theme1:      d.Theme1,
		Theme2:      d.Theme2,
		Description: d.Description,
		Link:        d.Link,
		Month:       d.Month,
		Year:        d.Year,
		ImageURL:    d.ImageURL,
	}
}

// Truncate cuts s to at most n characters (runes).
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// ByID returns the index of the entry with the given id, or -1.
func ByID(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Upsert replaces the entry with the same ID in place or appends it.
func Upsert(entries []Entry, e Entry) []Entry {
	if i := ByID(entries, e.ID); i >= 0 {
		entries[i] = e
		return entries
	}
	return append(entries, e)
}

// Remove drops the entry with the given id and reports whether it existed.
func Remove(entries []Entry, id string) ([]Entry, bool) {
	i := ByID(entries, id)
	if i < 0 {
		return entries, false
	}
	return append(entries[:i], entries[i+1:]...), true
}

// Clone returns an independent copy of entries; never nil.
func Clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
