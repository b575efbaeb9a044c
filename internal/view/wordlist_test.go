package view

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWordListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWordList(&buf, nil))

	out := buf.String()
	assert.Contains(t, out, WordListHeader)
	assert.Zero(t, strings.Count(out, "<li"))
}

func TestRenderWordListRowsInOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWordList(&buf, []string{"cat", "car"}))

	out := buf.String()
	assert.Contains(t, out, WordListHeader)
	assert.Equal(t, 2, strings.Count(out, "<li"))

	catAt := strings.Index(out, ">cat<")
	carAt := strings.Index(out, ">car<")
	require.NotEqual(t, -1, catAt)
	require.NotEqual(t, -1, carAt)
	assert.Less(t, catAt, carAt)
}

func TestRenderWordListRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, 40} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			words := make([]string, n)
			for i := range words {
				words[i] = fmt.Sprintf("word%d", i)
			}

			var buf bytes.Buffer
			require.NoError(t, RenderWordList(&buf, words))
			assert.Equal(t, n, strings.Count(buf.String(), "<li"))
		})
	}
}

func TestRenderWordListKeepsDuplicatesAndOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWordList(&buf, []string{"cat", "cat", "zzz", "aaa"}))

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "<li"))
	assert.Equal(t, 2, strings.Count(out, ">cat<"))
	// order preserved, not sorted
	assert.Less(t, strings.Index(out, ">zzz<"), strings.Index(out, ">aaa<"))
}

func TestRenderWordListEscapesMarkup(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderWordList(&buf, []string{"<b>cat</b>"}))

	out := buf.String()
	assert.NotContains(t, out, "<b>cat</b>")
	assert.Contains(t, out, "&lt;b&gt;cat&lt;/b&gt;")
}
