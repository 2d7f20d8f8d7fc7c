package main

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path"
	"strings"
	texttemplate "text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates
var templateFS embed.FS

const templatesDir = "templates"

// loadTemplates loads all HTML templates
func (b *builder) loadTemplates() error {
	basePath := path.Join(templatesDir, "base.html")

	funcMap := template.FuncMap{
		"text": textHTML,
		"href": hrefAttr,
	}

	for _, name := range []string{tmplIndex, tmplMonth} {
		tmplPath := path.Join(templatesDir, name+".html")
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(templateFS, basePath, tmplPath)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		b.templates[name] = tmpl
	}

	return nil
}

// loadFeedTemplates loads all feed templates
func (b *builder) loadFeedTemplates() error {
	funcMap := texttemplate.FuncMap{
		"xml": escapeXML,
	}

	for _, name := range []string{tmplRSS} {
		tmplPath := path.Join(templatesDir, name)
		tmpl, err := texttemplate.New(path.Base(name)).Funcs(funcMap).ParseFS(templateFS, tmplPath)
		if err != nil {
			return fmt.Errorf("parsing feed template %s: %w", name, err)
		}
		b.feedTemplates[name] = tmpl
	}

	return nil
}

// renderPages renders the index page followed by one page per month
func (b *builder) renderPages(groups []monthGroup) error {
	if err := b.renderIndex(groups); err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}

	for i := range groups {
		if err := b.renderMonth(&groups[i]); err != nil {
			return fmt.Errorf("rendering %s: %w", groups[i].Key, err)
		}
	}

	return nil
}

// renderMonth writes the digest page of a single month
func (b *builder) renderMonth(g *monthGroup) error {
	data := templateData{
		PageTitle: g.Key + " - " + b.site.Title,
		Site:      b.site,
		Group:     g,
	}

	if err := writeTemplate(b.outPath(g.FileName()), b.templates[tmplMonth], data); err != nil {
		return err
	}

	if b.site.Markdown {
		return b.writeMarkdownPage(g.FileName(), b.generateMonthMarkdown(g))
	}
	return nil
}

// renderIndex writes the index page listing every month
func (b *builder) renderIndex(groups []monthGroup) error {
	data := templateData{
		PageTitle: b.site.Title,
		Site:      b.site,
		Months:    groups,
		Feeds:     b.feedLinks(),
	}

	if b.site.Description != "" {
		data.Intro = template.HTML(renderMarkdown([]byte(b.site.Description)))
	}

	if err := writeTemplate(b.outPath(indexFile), b.templates[tmplIndex], data); err != nil {
		return err
	}

	if b.site.Markdown {
		return b.writeMarkdownPage(indexFile, b.generateIndexMarkdown(groups))
	}
	return nil
}

// feedLinks lists the feeds produced by this build
func (b *builder) feedLinks() []feedLink {
	links := []feedLink{{Label: "RSS feed", File: rssFile}}
	if b.site.Atom {
		links = append(links, feedLink{Label: "Atom feed", File: atomFile})
	}
	return links
}

// writeMarkdownPage writes the markdown companion of an HTML page
func (b *builder) writeMarkdownPage(htmlName string, content []byte) error {
	mdName := strings.TrimSuffix(htmlName, ".html") + ".md"

	if len(content) > 0 && content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}

	return os.WriteFile(b.outPath(mdName), content, 0644)
}

// yamlScalar formats a string as a properly escaped YAML scalar value
func yamlScalar(s string) string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return strings.TrimSpace(string(data))
}

// writeFrontmatter writes YAML frontmatter with properly escaped values
func writeFrontmatter(sb *strings.Builder, title, date string) {
	sb.WriteString("---\n")
	sb.WriteString(fmt.Sprintf("title: %s\n", yamlScalar(title)))
	if date != "" {
		sb.WriteString(fmt.Sprintf("date: %s\n", yamlScalar(date)))
	}
	sb.WriteString("---\n\n")
}

// generateMonthMarkdown generates markdown content for a month page
func (b *builder) generateMonthMarkdown(g *monthGroup) []byte {
	var sb strings.Builder

	writeFrontmatter(&sb, g.Key+" - "+b.site.Title, g.Key)
	sb.WriteString(fmt.Sprintf("# %s\n", g.Key))

	for _, r := range g.Records {
		sb.WriteString(fmt.Sprintf("\n## %s %s\n\n", r.DisplayDate(), r.Kind.Label()))
		if r.Text != "" {
			sb.WriteString(r.Text)
			sb.WriteString("\n\n")
		}
		if r.Link != "" {
			sb.WriteString(fmt.Sprintf("[Original](%s)\n", r.Link))
		}
		if r.SharedLink != "" {
			sb.WriteString(fmt.Sprintf("[Shared link](%s)\n", r.SharedLink))
		}
	}

	sb.WriteString(fmt.Sprintf("\n[Index](%s)\n", strings.TrimSuffix(indexFile, ".html")+".md"))

	return []byte(sb.String())
}

// generateIndexMarkdown generates markdown content for the index page
func (b *builder) generateIndexMarkdown(groups []monthGroup) []byte {
	var sb strings.Builder

	writeFrontmatter(&sb, b.site.Title, "")
	sb.WriteString(fmt.Sprintf("# %s\n\n", b.site.Title))

	if b.site.Description != "" {
		sb.WriteString(strings.TrimSpace(b.site.Description))
		sb.WriteString("\n\n")
	}

	for _, g := range groups {
		mdName := strings.TrimSuffix(g.FileName(), ".html") + ".md"
		sb.WriteString(fmt.Sprintf("- [%s](%s) (%d shares, %d comments)\n", g.Key, mdName, g.Shares(), g.Comments()))
	}

	sb.WriteString("\n")
	for _, f := range b.feedLinks() {
		sb.WriteString(fmt.Sprintf("- [%s](%s)\n", f.Label, f.File))
	}

	return []byte(sb.String())
}

// writeTemplate creates a file and executes a template to it
func writeTemplate[T interface{ Execute(w io.Writer, data any) error }](file string, tmpl T, data any) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return tmpl.Execute(f, data)
}
