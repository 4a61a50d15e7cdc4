package goquery_test

import (
	"testing"

	"github.com/fwojciec/campscout"
	"github.com/fwojciec/campscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) campscout.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse(html)
	require.NoError(t, err)
	return doc
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses well-formed HTML", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1>Hello</h1></body></html>`)
		el, ok := doc.Find("h1")
		require.True(t, ok)
		assert.Equal(t, "Hello", el.Text())
	})

	t.Run("recovers from malformed markup", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body><h1>Unclosed <p>still here`)
		el, ok := doc.Find("p")
		require.True(t, ok)
		assert.Equal(t, "still here", el.Text())
	})

	t.Run("empty input yields empty document", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "")
		_, ok := doc.Find("h1")
		assert.False(t, ok)
		assert.Empty(t, doc.Text())
	})
}

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><head><title>My Title</title></head><body><p>body text</p></body></html>`)

	// Whole-document text includes the title.
	assert.Contains(t, doc.Text(), "My Title")
	assert.Contains(t, doc.Text(), "body text")
}

func TestDocument_Find(t *testing.T) {
	t.Parallel()

	t.Run("attribute selectors", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><head>
			<meta name="description" content="a description">
			<meta property="og:title" content="OG Title">
		</head></html>`)

		el, ok := doc.Find(`meta[name="description"]`)
		require.True(t, ok)
		assert.Equal(t, "a description", el.Attr("content"))

		el, ok = doc.Find(`meta[property="og:title"]`)
		require.True(t, ok)
		assert.Equal(t, "OG Title", el.Attr("content"))
	})

	t.Run("returns first match only", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><h1>first</h1><h1>second</h1></body>`)
		el, ok := doc.Find("h1")
		require.True(t, ok)
		assert.Equal(t, "first", el.Text())
	})

	t.Run("missing attribute returns empty string", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><img src="/a.jpg"></body>`)
		el, ok := doc.Find("img")
		require.True(t, ok)
		assert.Empty(t, el.Attr("data-src"))
	})
}

func TestDocument_Each(t *testing.T) {
	t.Parallel()

	t.Run("visits in document order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><p>one</p><p>two</p><p>three</p></body>`)

		var texts []string
		doc.Each("p", func(el campscout.Element) bool {
			texts = append(texts, el.Text())
			return true
		})
		assert.Equal(t, []string{"one", "two", "three"}, texts)
	})

	t.Run("stops when fn returns false", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<body><p>one</p><p>two</p><p>three</p></body>`)

		var count int
		doc.Each("p", func(el campscout.Element) bool {
			count++
			return count < 2
		})
		assert.Equal(t, 2, count)
	})
}
