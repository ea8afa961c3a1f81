package ziputil

import "io"

// DefaultBufferSize is the size of the intermediate buffer used by Copy.
const DefaultBufferSize = 1024

// Copy moves every remaining byte from src to dst through a buffer of
// bufSize bytes and returns the number of bytes written. A non-positive
// bufSize selects DefaultBufferSize. It stops cleanly at io.EOF and returns
// the first read or write error otherwise.
func Copy(dst io.Writer, src io.Reader, bufSize int) (int64, error) {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := make([]byte, bufSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			w, writeErr := dst.Write(buf[:n])
			written += int64(w)
			if writeErr != nil {
				return written, writeErr
			}
			if w != n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}
