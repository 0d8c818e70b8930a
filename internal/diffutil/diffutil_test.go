package diffutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sourcegraph/go-diff/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int, change map[int]string) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if s, ok := change[i]; ok {
			b.WriteString(s + "\n")
			continue
		}
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestUnifiedEqual(t *testing.T) {
	out, err := Unified("a.js", "x\n", "x\n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUnifiedSingleHunk(t *testing.T) {
	out, err := Unified("src/a.js", "a\nb\nc\n", "a\nB\nc\n")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "--- a/src/a.js\n+++ b/src/a.js\n"), out)
	assert.Contains(t, out, " a\n-b\n+B\n c\n")

	fd, err := diff.ParseFileDiff([]byte(out))
	require.NoError(t, err)
	require.Len(t, fd.Hunks, 1)
	h := fd.Hunks[0]
	assert.Equal(t, int32(1), h.OrigStartLine)
	assert.Equal(t, int32(3), h.OrigLines)
	assert.Equal(t, int32(1), h.NewStartLine)
	assert.Equal(t, int32(3), h.NewLines)
}

func TestUnifiedSeparateHunks(t *testing.T) {
	before := numbered(20, nil)
	after := numbered(20, map[int]string{2: "second", 18: "eighteenth"})

	out, err := Unified("a.js", before, after)
	require.NoError(t, err)

	fd, err := diff.ParseFileDiff([]byte(out))
	require.NoError(t, err)
	require.Len(t, fd.Hunks, 2)

	assert.Equal(t, int32(1), fd.Hunks[0].OrigStartLine)
	assert.Equal(t, int32(5), fd.Hunks[0].OrigLines)
	assert.Equal(t, int32(15), fd.Hunks[1].OrigStartLine)
	assert.Equal(t, int32(6), fd.Hunks[1].OrigLines)
	assert.Contains(t, string(fd.Hunks[1].Body), "-line 18\n+eighteenth\n")
}

func TestUnifiedMergesCloseChanges(t *testing.T) {
	before := numbered(12, nil)
	after := numbered(12, map[int]string{3: "three", 8: "eight"})

	out, err := Unified("a.js", before, after)
	require.NoError(t, err)

	fd, err := diff.ParseFileDiff([]byte(out))
	require.NoError(t, err)
	require.Len(t, fd.Hunks, 1)
	assert.Equal(t, int32(11), fd.Hunks[0].OrigLines)
}

func TestUnifiedRemovedLines(t *testing.T) {
	before := "class A {\n  constructor() {\n    this.a = this.a.bind(this);\n  }\n}\n"
	after := "class A {\n  constructor() {}\n}\n"

	out, err := Unified("a.js", before, after)
	require.NoError(t, err)
	assert.Contains(t, out, "-  constructor() {\n-    this.a = this.a.bind(this);\n-  }\n+  constructor() {}\n")
}

func TestUnifiedNoNewlineAtEnd(t *testing.T) {
	out, err := Unified("a.js", "a\nb", "a\nc")
	require.NoError(t, err)
	assert.Contains(t, out, "-b\n"+noNewline+"+c\n"+noNewline)
}

func TestStat(t *testing.T) {
	added, removed := Stat("a\nb\nc\n", "a\nx\ny\nc\n")
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, removed)

	added, removed = Stat("", "a\n")
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, removed)
}

func TestUnifiedLargeFile(t *testing.T) {
	before := numbered(6000, nil)
	after := numbered(6000, map[int]string{3: "three", 5990: "near the end"})

	out, err := Unified("big.js", before, after)
	require.NoError(t, err)

	fd, err := diff.ParseFileDiff([]byte(out))
	require.NoError(t, err)
	require.Len(t, fd.Hunks, 2)
	assert.Equal(t, int32(5987), fd.Hunks[1].OrigStartLine)
	assert.Contains(t, string(fd.Hunks[1].Body), "-line 5990\n+near the end\n")

	added, removed := Stat(before, after)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, removed)
}
