package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/lo"
	atom "github.com/thomas11/atomgenerator"
)

// buildFeeds generates the RSS feed and, when enabled, the Atom feed
func (b *builder) buildFeeds(records []record) error {
	sorted := newestFirst(records)

	if err := b.renderRSS(sorted); err != nil {
		return fmt.Errorf("rendering feed %s: %w", rssFile, err)
	}

	if b.site.Atom {
		if err := b.renderAtom(sorted); err != nil {
			return fmt.Errorf("rendering feed %s: %w", atomFile, err)
		}
	}

	return nil
}

// renderRSS writes the RSS feed from records sorted newest first
func (b *builder) renderRSS(sorted []record) error {
	tmpl, ok := b.feedTemplates[tmplRSS]
	if !ok {
		return fmt.Errorf("feed template %s not found", tmplRSS)
	}

	data := feedData{
		Site:        b.site,
		Description: feedDescription,
		Items: lo.Map(sorted, func(r record, _ int) feedItem {
			return feedItem{
				Title:   truncate(r.Text, feedTitleLength),
				Link:    r.Link,
				PubDate: formatDateRSS(r.Timestamp),
				Text:    r.Text,
			}
		}),
	}
	if len(sorted) > 0 {
		data.LastBuildDate = formatDateRSS(sorted[0].Timestamp)
	}

	return writeTemplate(b.outPath(rssFile), tmpl, data)
}

// renderAtom writes the Atom feed from records sorted newest first
func (b *builder) renderAtom(sorted []record) error {
	link := b.site.Link
	if link == "" {
		link = indexFile
	}

	feed := atom.Feed{
		Title: b.site.Title,
		Link:  link,
	}
	if len(sorted) > 0 {
		feed.PubDate = sorted[0].Timestamp
	}
	feed.AddAuthor(atom.Author{
		Name: b.site.author(),
		Uri:  b.site.Link,
	})

	for _, r := range sorted {
		feed.AddEntry(entryForRecord(r))
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		for _, e := range errs {
			slog.Warn("invalid atom feed", "error", e.Error())
		}
		return fmt.Errorf("atom feed has %d problems: %w", len(errs), errs[0])
	}

	atomXML, err := feed.GenXml()
	if err != nil {
		return err
	}

	return os.WriteFile(b.outPath(atomFile), atomXML, 0644)
}

// entryForRecord builds an Atom entry. Records without text are titled by
// kind and records without a safe link point at their month page.
func entryForRecord(r record) *atom.Entry {
	title := truncate(r.Text, feedTitleLength)
	if title == "" {
		title = "LinkedIn " + r.Kind.Label()
	}

	link := r.Link
	if link == "" || !isSafeURL(link) {
		link = r.Timestamp.Format(monthKeyLayout) + ".html"
	}

	e := &atom.Entry{
		Title:       title,
		Description: title,
		Link:        link,
		PubDate:     r.Timestamp,
		Content:     string(textHTML(r.Text)),
	}
	e.AddCategory(atom.Category{Term: string(r.Kind)})

	return e
}
