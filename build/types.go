package main

import (
	"html/template"
	"time"
)

// kind identifies the export table a record came from
type kind string

const (
	kindShare   kind = "share"
	kindComment kind = "comment"
)

// Label returns the human readable name of the kind
func (k kind) Label() string {
	switch k {
	case kindShare:
		return "Share"
	case kindComment:
		return "Comment"
	default:
		return string(k)
	}
}

// Badge returns the Bootstrap background class for the kind badge
func (k kind) Badge() string {
	if k == kindComment {
		return "bg-success"
	}
	return "bg-primary"
}

// record represents a single post or comment from the archive
type record struct {
	Timestamp  time.Time
	Text       string
	Link       string
	SharedLink string
	Kind       kind
}

// DisplayDate formats the timestamp for cards
func (r record) DisplayDate() string {
	return r.Timestamp.Format(displayDateLayout)
}

// MachineDate formats the timestamp for the datetime attribute
func (r record) MachineDate() string {
	return r.Timestamp.Format(machineDateLayout)
}

// monthGroup holds the records of one calendar month, newest first
type monthGroup struct {
	Key     string
	Records []record
}

// FileName returns the HTML page name of the month
func (g monthGroup) FileName() string {
	return g.Key + ".html"
}

// Shares counts the records that came from the posts table
func (g monthGroup) Shares() int {
	return g.count(kindShare)
}

// Comments counts the records that came from the comments table
func (g monthGroup) Comments() int {
	return g.count(kindComment)
}

func (g monthGroup) count(k kind) int {
	n := 0
	for _, r := range g.Records {
		if r.Kind == k {
			n++
		}
	}
	return n
}

// config holds the site configuration loaded from config.toml
type config struct {
	Title       string `mapstructure:"title" validate:"required"`
	Link        string `mapstructure:"link"`
	Author      string `mapstructure:"author"`
	Description string `mapstructure:"description"`
	StaticDir   string `mapstructure:"static_dir" validate:"omitempty,dir"`
	Markdown    bool   `mapstructure:"markdown"`
	Atom        bool   `mapstructure:"atom"`
}

// source describes one hard-wired export table
type source struct {
	name      string
	kind      kind
	dateCol   string
	textCol   string
	linkCol   string
	sharedCol string
}

// feedLink is a feed advertised on the index page
type feedLink struct {
	Label string
	File  string
}

// templateData is passed to page templates
type templateData struct {
	PageTitle string
	Site      *config
	Group     *monthGroup
	Months    []monthGroup
	Intro     template.HTML
	Feeds     []feedLink
}

// feedItem is a single RSS item
type feedItem struct {
	Title   string
	Link    string
	PubDate string
	Text    string
}

// feedData is passed to the RSS template
type feedData struct {
	Site          *config
	Description   string
	LastBuildDate string
	Items         []feedItem
}
