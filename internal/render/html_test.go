package render

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/fielddoc/internal/funcdoc"
	"go.abhg.dev/fielddoc/internal/highlight"
	"golang.org/x/net/html"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, new(HTML).Render(&buff, testPackages()))
	doc, err := html.Parse(&buff)
	require.NoError(t, err)

	t.Run("packages", func(t *testing.T) {
		t.Parallel()

		sections := querySelectorAll(doc, "section.package")
		require.Len(t, sections, 2)
		assert.Equal(t, "example.com/kv", attr(sections[0], "id"))
		assert.Equal(t, "package kv", textContent(querySelector(sections[0], "h2")))
		assert.Equal(t, "Package kv stores values.",
			textContent(querySelector(sections[0], "p.synopsis")))

		assert.Empty(t, querySelectorAll(sections[1], "article"))
		assert.Nil(t, querySelector(sections[1], "p.synopsis"))
	})

	t.Run("functions", func(t *testing.T) {
		t.Parallel()

		var ids []string
		for _, article := range querySelectorAll(doc, "article.function") {
			ids = append(ids, attr(article, "id"))
		}
		assert.Equal(t, []string{"example.com/kv.Open", "example.com/kv.Store.Get"}, ids)

		get := querySelector(doc, `article[id="example.com/kv.Store.Get"]`)
		require.NotNil(t, get)
		assert.Equal(t, "(*Store) Get", textContent(querySelector(get, "h3")))
		assert.Equal(t, "Get looks up a key.", textContent(querySelector(get, "p.short")))
	})

	t.Run("long description", func(t *testing.T) {
		t.Parallel()

		var got []string
		for _, p := range querySelectorAll(doc, `article[id="example.com/kv.Open"] p.long`) {
			got = append(got, textContent(p))
		}
		assert.Equal(t, []string{"The store is created if needed.", "It must be closed."}, got)
	})

	t.Run("parameters", func(t *testing.T) {
		t.Parallel()

		rows := querySelectorAll(doc, `article[id="example.com/kv.Open"] table.params tbody tr`)
		require.Len(t, rows, 2)

		assert.Equal(t, "documented", attr(rows[0], "class"))
		link := querySelector(rows[0], "td.name a")
		require.NotNil(t, link)
		assert.Equal(t, "#example.com/kv.Open.path", attr(link, "href"))
		assert.Equal(t, "string", textContent(querySelector(rows[0], "td.go-type")))
		assert.Equal(t, "str", textContent(querySelector(rows[0], "td.type")))
		assert.Equal(t, "where the store lives", textContent(querySelector(rows[0], "td.description")))

		assert.Equal(t, "undocumented", attr(rows[1], "class"))
		assert.Nil(t, querySelector(rows[1], "td.name a"), "blank parameters have no anchor")
		assert.Equal(t, "_", textContent(querySelector(rows[1], "td.name")))
		assert.Empty(t, textContent(querySelector(rows[1], "td.type")))
	})

	t.Run("signature", func(t *testing.T) {
		t.Parallel()

		get := querySelector(doc, `article[id="example.com/kv.Store.Get"]`)
		pre := querySelector(get, "pre")
		require.NotNil(t, pre)
		assert.Equal(t, "func (s *Store) Get(key string) ([]byte, error)", textContent(pre))

		name := querySelector(pre, "a")
		require.NotNil(t, name)
		assert.Equal(t, "#example.com/kv.Store.Get", attr(name, "href"))
		assert.Equal(t, "Get", textContent(name))

		anchor := querySelector(pre, `span[id="example.com/kv.Store.Get.key"]`)
		require.NotNil(t, anchor)
		assert.Equal(t, "key", textContent(anchor))
	})

	t.Run("returns", func(t *testing.T) {
		t.Parallel()

		returns := querySelector(doc, `article[id="example.com/kv.Store.Get"] p.returns`)
		require.NotNil(t, returns)
		assert.Equal(t, "the valueor nil", textContent(returns))
		assert.Len(t, querySelectorAll(returns, "br"), 1)
	})
}

func TestHTML_customHighlighter(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	r := HTML{Highlighter: stubHighlighter{}}
	require.NoError(t, r.Render(&buff, testPackages()))
	assert.Equal(t, 2, strings.Count(buff.String(), "<code>stub</code>"))
}

func TestHTML_badDecl(t *testing.T) {
	t.Parallel()

	pkgs := []*funcdoc.Package{
		{
			Name:       "bad",
			ImportPath: "example.com/bad",
			Functions: []*funcdoc.Function{
				{Name: "Broken", Decl: "var Broken int"},
			},
		},
	}

	var buff bytes.Buffer
	err := new(HTML).Render(&buff, pkgs)
	require.Error(t, err)
	assert.ErrorContains(t, err, "signature of example.com/bad.Broken")
	assert.ErrorContains(t, err, "not a function declaration")
}

type stubHighlighter struct{}

func (stubHighlighter) Highlight(*highlight.Code) template.HTML {
	return "<code>stub</code>"
}

func querySelector(n *html.Node, sel string) *html.Node {
	return cascadia.Query(n, cascadia.MustCompile(sel))
}

func querySelectorAll(n *html.Node, sel string) []*html.Node {
	return cascadia.QueryAll(n, cascadia.MustCompile(sel))
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	if n == nil {
		return ""
	}

	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}
