package main

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/otiai10/copy"
)

const (
	configFile = "config.toml"
	sourceDir  = "."
	outputDir  = "."

	indexFile = "index.html"
	rssFile   = "feed.xml"
	atomFile  = "feed.atom"

	feedDescription = "LinkedIn archive"

	// feedTitleLength caps item titles; longer texts are cut without ellipsis
	feedTitleLength = 50
)

// Template names
const (
	tmplIndex = "index"
	tmplMonth = "month"
	tmplRSS   = "feeds/feed.xml"
)

// Timestamp layouts
const (
	sourceDateLayout  = "2006-01-02 15:04:05"
	displayDateLayout = "2006-01-02 15:04"
	machineDateLayout = "2006-01-02T15:04:05"
	monthKeyLayout    = "2006-01"
)

// sources lists the export tables in the order they are combined
var sources = []source{
	{name: "Shares", kind: kindShare, dateCol: "Date", textCol: "ShareCommentary", linkCol: "ShareLink", sharedCol: "SharedUrl"},
	{name: "Comments", kind: kindComment, dateCol: "Date", textCol: "Message", linkCol: "Link"},
}

// builder handles the archive build process
type builder struct {
	srcDir        string
	outDir        string
	templates     map[string]*template.Template
	feedTemplates map[string]*texttemplate.Template
	site          *config
}

// newBuilder creates a builder reading inputs from srcDir and writing to outDir
func newBuilder(srcDir, outDir string) (*builder, error) {
	slog.Info("building archive", "source", srcDir, "output", outDir)

	cfg, err := loadConfig(filepath.Join(srcDir, configFile))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	b := &builder{
		srcDir:        srcDir,
		outDir:        outDir,
		templates:     make(map[string]*template.Template),
		feedTemplates: make(map[string]*texttemplate.Template),
		site:          cfg,
	}

	if err := b.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	if err := b.loadFeedTemplates(); err != nil {
		return nil, fmt.Errorf("loading feed templates: %w", err)
	}

	return b, nil
}

// build executes the full build process
func (b *builder) build() error {
	if err := os.MkdirAll(b.outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if b.site.StaticDir != "" {
		slog.Info("copying static files", "dir", b.site.StaticDir)
		if err := b.copyStatic(); err != nil {
			return fmt.Errorf("copying static files: %w", err)
		}
	}

	records, err := b.collectRecords()
	if err != nil {
		return fmt.Errorf("collecting records: %w", err)
	}

	groups := groupMonths(records)

	slog.Info("rendering pages")
	if err := b.renderPages(groups); err != nil {
		return fmt.Errorf("rendering pages: %w", err)
	}

	slog.Info("generating feeds")
	if err := b.buildFeeds(records); err != nil {
		return fmt.Errorf("building feeds: %w", err)
	}

	shares, comments := 0, 0
	for _, g := range groups {
		shares += g.Shares()
		comments += g.Comments()
	}
	slog.Info("build complete",
		"months", len(groups),
		"shares", shares,
		"comments", comments)

	return nil
}

// copyStatic copies the contents of the static directory to the output directory
func (b *builder) copyStatic() error {
	return copy.Copy(b.site.StaticDir, b.outDir)
}

// outPath joins a file name onto the output directory
func (b *builder) outPath(name string) string {
	return filepath.Join(b.outDir, name)
}
