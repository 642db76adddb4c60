package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
	"github.com/fwojciec/catscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fragment parses html and returns the selection matched by selector.
func fragment(t *testing.T, html, selector string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	sel := doc.Find(selector)
	require.Positive(t, sel.Length())
	return sel
}

func TestSegmentBlocks(t *testing.T) {
	t.Parallel()

	t.Run("br siblings delimit blocks", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div>
			<h3>ACCT 201A - Financial Accounting (3)</h3>
			<hr>
			Accounting concepts and techniques.
			<br>
			Prerequisite: ACCT 201A
			<br>
			Department Consent Required
		</div>`, "div")

		blocks, err := goquery.SegmentBlocks(cell)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"Accounting concepts and techniques.",
			"Prerequisite: ACCT 201A",
			"Department Consent Required",
		}, blocks)
	})

	t.Run("inline text within a block is joined with single spaces", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t,
			`<div><h3>H - T (3)</h3><hr>Prerequisite: <a href="#">ACCT 301A</a> , <a href="#">BUAD 301</a> or better</div>`,
			"div")

		blocks, err := goquery.SegmentBlocks(cell)

		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "Prerequisite: ACCT 301A , BUAD 301 or better", blocks[0])
	})

	t.Run("no break markers yields a single block", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div><h3>H - T (3)</h3><hr>Just the description.</div>`, "div")

		blocks, err := goquery.SegmentBlocks(cell)

		require.NoError(t, err)
		assert.Equal(t, []string{"Just the description."}, blocks)
	})

	t.Run("nothing after the separator yields no blocks", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div><h3>H - T (3)</h3><hr></div>`, "div")

		blocks, err := goquery.SegmentBlocks(cell)

		require.NoError(t, err)
		assert.Empty(t, blocks)
	})

	t.Run("consecutive breaks never emit empty blocks", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div><h3>H - T (3)</h3><hr>one<br><br>  <br>two</div>`, "div")

		blocks, err := goquery.SegmentBlocks(cell)

		require.NoError(t, err)
		assert.Equal(t, []string{"one", "two"}, blocks)
	})

	t.Run("missing header element is an error", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div><hr>text</div>`, "div")

		_, err := goquery.SegmentBlocks(cell)

		require.Error(t, err)
		assert.Equal(t, catscrape.ENOTFOUND, catscrape.ErrorCode(err))
	})

	t.Run("missing separator is an error", func(t *testing.T) {
		t.Parallel()

		cell := fragment(t, `<div><h3>H - T (3)</h3>text without separator</div>`, "div")

		_, err := goquery.SegmentBlocks(cell)

		require.Error(t, err)
		assert.Equal(t, catscrape.ENOTFOUND, catscrape.ErrorCode(err))
	})
}
