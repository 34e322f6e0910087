package fs

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dirwatcher/internal/core/domain"
	"go.trai.ch/dirwatcher/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LineScanner = (*Scanner)(nil)

const (
	initialBufferSize = 64 * 1024
	// maxLineSize leaves line length bounded only by memory; bufio.Scanner
	// grows its buffer on demand.
	maxLineSize = math.MaxInt
)

var errInvalidEncoding = zerr.New("line is not valid UTF-8")

// Scanner reads tracked files line by line and reports search text hits.
// Lines of any length are supported.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads path from its first line. Lines at or past watermark that contain
// text are passed to onMatch as they are found. The whole file is read on every
// call, so a file truncated below watermark yields no matches and a smaller
// watermark.
func (*Scanner) Scan(
	ctx context.Context,
	path string,
	watermark int,
	text string,
	onMatch func(line int),
) (domain.ScanResult, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the watched directory listing
	if err != nil {
		return domain.ScanResult{}, readError(err, "failed to open file", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	sc := bufio.NewScanner(io.TeeReader(f, digest))
	sc.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)
	sc.Split(scanUniversalLines)

	needle := []byte(text)
	var res domain.ScanResult
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if !utf8.Valid(b) {
			return domain.ScanResult{}, zerr.With(readError(errInvalidEncoding, "failed to decode file", path), "line", line)
		}
		if line >= watermark && bytes.Contains(b, needle) {
			res.Matches++
			if onMatch != nil {
				onMatch(line)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return domain.ScanResult{}, zerr.With(readError(err, "failed to read file", path), "line", line+1)
	}

	res.Lines = line
	res.Watermark = line + 1
	res.Digest = digest.Sum64()

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelDebug, fmt.Sprintf("scanned %s: %d lines, %d new matches", filepath.Base(path), res.Lines, res.Matches))
	}

	return res, nil
}

func readError(err error, msg, path string) error {
	return errors.Join(domain.ErrReadFile, zerr.With(zerr.Wrap(err, msg), "path", path))
}

// scanUniversalLines is a bufio.SplitFunc that accepts "\n", "\r\n" and a lone
// "\r" as line terminators. A final line without a terminator is still a line.
func scanUniversalLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
