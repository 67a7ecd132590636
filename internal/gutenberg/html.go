package gutenberg

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText reduces an HTML document to its visible text. Scripting and
// styling elements are dropped; everything else keeps its document order.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript, template").Remove()

	if body := doc.Find("body"); body.Length() > 0 {
		return body.Text(), nil
	}
	return doc.Text(), nil
}
