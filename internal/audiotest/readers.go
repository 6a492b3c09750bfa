// SPDX-License-Identifier: EPL-2.0

package audiotest

import "io"

// NoSeek hides any Seek method of the wrapped reader, forcing consumers
// onto their non-seekable code paths.
type NoSeek struct {
	R io.Reader
}

func (n *NoSeek) Read(p []byte) (int, error) { return n.R.Read(p) }

// CountingReader counts the bytes handed out, so tests can assert how much
// of a stream an operation consumed.
type CountingReader struct {
	R io.Reader
	N int64
}

func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.R.Read(p)
	c.N += int64(n)
	return n, err
}

// ErrReader fails every read with Err.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read([]byte) (int, error) { return 0, e.Err }
