//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package util

import (
	"bytes"
	"io"
	"os"
	"strings"
)

const tailChunk = 4096

// TailLines returns the last n lines of the file at path, newlines preserved and
// concatenated in file order. An unterminated last line is returned as written.
// "\r\n" and a bare "\r" both end a line and come back as "\n", so progress bars
// redrawn with carriage returns count one line per redraw.
func TailLines(path string, n int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	if n <= 0 {
		return "", nil
	}

	offset := st.Size()
	var buf []byte
	for offset > 0 && bytes.Count(normalizeNewlines(buf), []byte{'\n'}) <= n {
		size := int64(tailChunk)
		if size > offset {
			size = offset
		}
		offset -= size
		chunk := make([]byte, size)
		read, err := f.ReadAt(chunk, offset)
		if err != nil && err != io.EOF {
			return "", err
		}
		buf = append(chunk[:read], buf...)
	}

	lines := strings.SplitAfter(string(normalizeNewlines(buf)), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if offset > 0 {
		// first segment may start mid-line
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, ""), nil
}

func normalizeNewlines(b []byte) []byte {
	if bytes.IndexByte(b, '\r') < 0 {
		return b
	}
	b = bytes.ReplaceAll(b, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(b, []byte("\r"), []byte("\n"))
}
