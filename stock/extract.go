package stock

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selectors for the Screener company page
const (
	ratiosSelector   = "div.company-ratios"
	ratioLabel       = "span.name"
	ratioValue       = "span.number"
	analysisSelector = "section#analysis"
	prosConsSelector = "div.flex.flex-column-mobile.flex-gap-32"
	prosSelector     = "div.pros"
	consSelector     = "div.cons"
)

// Diagnostic notes recorded when part of the page is missing
const (
	NoteNoAnalysis = "no analysis section found"
	NoteNoProsCons = "no pros/cons container found in analysis section"
	NoteNoPros     = "no pros list found"
	NoteNoCons     = "no cons list found"
)

// Result is everything extracted from one company page
type Result struct {
	Metrics *Metrics `json:"metrics"`
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Notes   []string `json:"notes,omitempty"`
}

// Empty reports whether nothing at all could be extracted
func (r *Result) Empty() bool {
	return r.Metrics.Len() == 0 && len(r.Pros) == 0 && len(r.Cons) == 0
}

// Extract pulls key ratios and the pros/cons lists out of a company page.
// Each part is extracted independently; missing markup leaves that part empty
// and adds a note instead of failing.
func Extract(doc *goquery.Document) *Result {
	result := &Result{
		Metrics: ExtractMetrics(doc),
		Pros:    []string{},
		Cons:    []string{},
	}
	extractProsCons(doc, result)
	return result
}

// ExtractMetrics reads label/value pairs from every key-ratios block
func ExtractMetrics(doc *goquery.Document) *Metrics {
	metrics := NewMetrics()

	doc.Find(ratiosSelector).Each(func(i int, ratios *goquery.Selection) {
		ratios.Find("li").Each(func(j int, item *goquery.Selection) {
			label := item.Find(ratioLabel).First()
			value := item.Find(ratioValue).First()
			if label.Length() == 0 || value.Length() == 0 {
				return
			}
			metrics.Set(strings.TrimSpace(label.Text()), strings.TrimSpace(value.Text()))
		})
	})

	return metrics
}

func extractProsCons(doc *goquery.Document, result *Result) {
	analysis := doc.Find(analysisSelector).First()
	if analysis.Length() == 0 {
		result.Notes = append(result.Notes, NoteNoAnalysis)
		return
	}

	flex := analysis.Find(prosConsSelector).First()
	if flex.Length() == 0 {
		result.Notes = append(result.Notes, NoteNoProsCons)
		return
	}

	if pros := flex.Find(prosSelector).First(); pros.Length() > 0 {
		result.Pros = textLines(pros)
	} else {
		result.Notes = append(result.Notes, NoteNoPros)
	}

	if cons := flex.Find(consSelector).First(); cons.Length() > 0 {
		result.Cons = textLines(cons)
	} else {
		result.Notes = append(result.Notes, NoteNoCons)
	}
}

// textLines returns the visible text under sel one line per text node:
// every text node is trimmed, blank ones are dropped, and text nodes that
// themselves span several lines are split.
func textLines(sel *goquery.Selection) []string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	if len(parts) == 0 {
		return []string{}
	}
	return strings.Split(strings.Join(parts, "\n"), "\n")
}

func collectText(node *html.Node, parts *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}
