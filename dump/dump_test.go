package dump

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/foundation/multimap"
	"github.com/npillmayer/foundation/seq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func sampleMap() *multimap.Map[string, int] {
	m := multimap.New[string, int]()
	m.Add("odd", 1)
	m.Add("even", 2)
	m.Add("odd", 3)
	return m
}

func TestMultiMapConsole(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "foundation.dump")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, MultiMap(&buf, sampleMap(), nil))
	require.Equal(t, "odd  : 1, 3\neven : 2\n", buf.String())
}

func TestMultiMapWrapsValues(t *testing.T) {
	m := multimap.New[string, string]()
	for _, w := range []string{"alpha", "beta", "gamma", "delta"} {
		m.Add("k", w)
	}
	var buf bytes.Buffer
	require.NoError(t, MultiMap(&buf, m, &Config{LineWidth: 16, Separator: " "}))
	require.Equal(t, "k : alpha beta\n    gamma delta\n", buf.String())
}

func TestRejectsNarrowLines(t *testing.T) {
	var buf bytes.Buffer
	err := MultiMap(&buf, sampleMap(), &Config{LineWidth: 3})
	require.True(t, errors.Is(err, ErrInvalidConfig))
	require.Zero(t, buf.Len())
}

func TestOutcomes(t *testing.T) {
	outcomes := seq.IfMap(seq.Range(1, 3), func(n int) bool { return n == 2 },
		func(n int) string { return "two" }).Outcomes()
	var buf bytes.Buffer
	require.NoError(t, Outcomes(&buf, outcomes, &Config{LineWidth: 40}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"   0  else   1",
		"   1  if#0   2 → two",
		"   2  else   3",
	}, lines)
}

func TestLineWidthHeuristic(t *testing.T) {
	require.Equal(t, 70, lineWidthFor(80))
	require.Equal(t, 35, lineWidthFor(40))
	require.Equal(t, 20, lineWidthFor(20))
	require.Equal(t, MinLineWidth, lineWidthFor(5))
}

func TestHTMLTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, sampleMap()))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<table class="multimap"><tr><th>odd</th><td>1</td><td>3</td></tr>`), out)
	text, err := TextFromHTML(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, "odd\n1\n3\neven\n2\n", text)
}

func TestDotSharesValueNodes(t *testing.T) {
	m := multimap.New[string, int]()
	m.Add("a", 1)
	m.Add("b", 1)
	m.Add("b", 2)
	var buf bytes.Buffer
	require.NoError(t, Dot(&buf, m))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "digraph {\n"))
	require.Equal(t, 1, strings.Count(out, `"v1" [label="1"`), "value 1 must have a single node")
	require.Contains(t, out, `"k1" -> "v1";`)
	require.Contains(t, out, `"k2" -> "v1";`)
	require.Contains(t, out, `"k2" -> "v2";`)
}
