package image

import (
	"errors"
	"io"
)

// MaxImageBytes bounds how much encoded data Decode will read.
const MaxImageBytes int64 = 64 << 20

// ErrImageTooLarge is returned when the encoded image exceeds the read limit.
var ErrImageTooLarge = errors.New("image exceeds size limit")

// limitedReader fails, rather than truncating, once max bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, ErrImageTooLarge
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
