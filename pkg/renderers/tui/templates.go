package tui

import (
	"embed"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.tpl
var templateFS embed.FS

const (
	summaryTemplate = "templates/summary.tpl"
	successTemplate = "templates/success.tpl"
)

// templates renders the multi-line blocks printed by the notes and success
// steps.
type templates struct {
	set     *pongo2.TemplateSet
	summary *pongo2.Template
	success *pongo2.Template
}

func loadTemplates() (*templates, error) {
	set := pongo2.NewSet("quoteform", pongo2.NewFSLoader(templateFS))
	summary, err := set.FromFile(summaryTemplate)
	if err != nil {
		return nil, fmt.Errorf("tui: load %s: %w", summaryTemplate, err)
	}
	success, err := set.FromFile(successTemplate)
	if err != nil {
		return nil, fmt.Errorf("tui: load %s: %w", successTemplate, err)
	}
	return &templates{set: set, summary: summary, success: success}, nil
}

// SummaryView is the data shown before a submission.
type SummaryView struct {
	Heading     string
	Labels      map[string]string
	Method      string
	Particular  string
	Height      int
	From        string
	To          string
	FromDate    string
	ToDate      string
	NotesLength int
	NotesMax    int
}

// SuccessView is the data shown on the success page.
type SuccessView struct {
	Title        string
	Body         string
	RequestLabel string
	RequestID    string
	Unavailable  string
}

func (t *templates) renderSummary(view SummaryView) (string, error) {
	out, err := t.summary.Execute(pongo2.Context{
		"heading":     view.Heading,
		"labels":      view.Labels,
		"method":      view.Method,
		"particular":  view.Particular,
		"height":      view.Height,
		"from":        view.From,
		"to":          view.To,
		"fromDate":    view.FromDate,
		"toDate":      view.ToDate,
		"notesLength": view.NotesLength,
		"notesMax":    view.NotesMax,
	})
	if err != nil {
		return "", fmt.Errorf("tui: render summary: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

func (t *templates) renderSuccess(view SuccessView) (string, error) {
	out, err := t.success.Execute(pongo2.Context{
		"title":        view.Title,
		"body":         view.Body,
		"requestLabel": view.RequestLabel,
		"requestId":    view.RequestID,
		"unavailable":  view.Unavailable,
	})
	if err != nil {
		return "", fmt.Errorf("tui: render success: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
