package source

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"horactl/pkg/timetable"
)

// ErrNoBlocks is returned when a document contains no recognisable period block
var ErrNoBlocks = errors.New("no timetable blocks found")

// ParseDocument extracts period blocks from an HTML page. A block is any
// element whose data-period attribute or id names a period, e.g.
// <pre id="manha"> or <textarea data-period="evening">. The first element
// found for a period wins; blocks are returned in period order.
func ParseDocument(r io.Reader) ([]timetable.RawBlock, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	texts := make(map[timetable.Period]string)
	doc.Find("[data-period], pre[id], textarea[id], div[id]").Each(func(i int, sel *goquery.Selection) {
		name, ok := sel.Attr("data-period")
		if !ok {
			name, _ = sel.Attr("id")
		}
		period, ok := timetable.ParsePeriod(name)
		if !ok {
			return
		}
		if _, seen := texts[period]; seen {
			return
		}
		texts[period] = strings.Trim(sel.Text(), "\r\n")
	})

	if len(texts) == 0 {
		return nil, ErrNoBlocks
	}

	var blocks []timetable.RawBlock
	for _, p := range timetable.Periods {
		if text, ok := texts[p]; ok {
			blocks = append(blocks, timetable.NewBlock(p, text))
		}
	}
	return blocks, nil
}
