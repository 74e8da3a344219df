// Package page applies the page-load mutations to the download page:
// revealing the one matching download button and rewriting download links
// against a resolved release prefix.
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DownloadLinkClass tags the anchors whose targets get the release prefix.
const DownloadLinkClass = "download-link"

// Link is one download anchor: its element id and current target.
type Link struct {
	ID   string
	Href string
}

// PlanRewrites returns the links to update for the given prefix, each with
// its new target prefix+href. Links with an empty target are skipped, and an
// empty prefix plans nothing — originals stay untouched. Each input link
// appears at most once in the result.
func PlanRewrites(prefix string, links []Link) []Link {
	if prefix == "" {
		return nil
	}

	planned := make([]Link, 0, len(links))

	for _, l := range links {
		if l.Href == "" {
			continue
		}

		planned = append(planned, Link{ID: l.ID, Href: prefix + l.Href})
	}

	return planned
}

// Render parses an HTML document from r, reveals the element whose id equals
// reveal (buttons ship with the hidden attribute), prepends prefix to the
// href of every download-link anchor, and writes the document to w. An empty
// prefix leaves every link untouched; an empty reveal reveals nothing.
func Render(w io.Writer, r io.Reader, reveal, prefix string) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parsing page: %w", err)
	}

	apply(doc, reveal, prefix)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	return nil
}

// apply walks the node tree once, so each anchor is rewritten at most once.
func apply(n *html.Node, reveal, prefix string) {
	if n.Type == html.ElementNode {
		if reveal != "" && attrVal(n, "id") == reveal {
			removeAttr(n, "hidden")
		}

		if prefix != "" && n.DataAtom == atom.A && hasClass(n, DownloadLinkClass) {
			if href := attrVal(n, "href"); href != "" {
				setAttr(n, "href", prefix+href)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		apply(c, reveal, prefix)
	}
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}

	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val

			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)

			return
		}
	}
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}

	return false
}
