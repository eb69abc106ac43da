package util

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func numbered(from, to int) string {
	var sb strings.Builder
	for i := from; i <= to; i++ {
		fmt.Fprintf(&sb, "step %d\n", i)
	}
	return sb.String()
}

func TestTailLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", "", ""},
		{"single unterminated", "loading", "loading"},
		{"fewer than ten", numbered(1, 3), numbered(1, 3)},
		{"exactly ten", numbered(1, 10), numbered(1, 10)},
		{"more than ten", numbered(1, 25), numbered(16, 25)},
		{"partial last line", numbered(1, 12) + "step 13 45%", numbered(4, 12) + "step 13 45%"},
		{"crlf", strings.ReplaceAll(numbered(1, 12), "\n", "\r\n"), numbered(3, 12)},
		{"carriage return redraws", "loading\n" + strings.Repeat("50%\r", 12) + "100%", strings.Repeat("50%\n", 9) + "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TailLines(writeLog(t, tt.content), 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTailLinesAcrossChunks(t *testing.T) {
	long := strings.Repeat("x", tailChunk) + "\n"
	content := numbered(1, 500) + long + numbered(501, 509)
	got, err := TailLines(writeLog(t, content), 10)
	require.NoError(t, err)
	assert.Equal(t, long+numbered(501, 509), got)
}

func TestTailLinesLongFile(t *testing.T) {
	got, err := TailLines(writeLog(t, numbered(1, 5000)), 10)
	require.NoError(t, err)
	assert.Equal(t, numbered(4991, 5000), got)
}

func TestTailLinesMissingFile(t *testing.T) {
	_, err := TailLines(filepath.Join(t.TempDir(), "absent.txt"), 10)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
