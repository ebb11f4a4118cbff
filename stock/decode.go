package stock

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// readBody reads the response body, undoing whatever Content-Encoding the
// server applied.
func readBody(resp *http.Response) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		return io.ReadAll(gzipReader)
	case "deflate":
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return inflate(raw)
	case "br":
		return io.ReadAll(brotli.NewReader(resp.Body))
	case "zstd":
		zstdReader, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zstdReader.Close()
		return io.ReadAll(zstdReader)
	default:
		return io.ReadAll(resp.Body)
	}
}

// inflate handles "deflate" bodies. The header means zlib-wrapped data, but
// plenty of servers send a bare deflate stream, so fall back to that.
func inflate(raw []byte) ([]byte, error) {
	if zlibReader, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
		defer zlibReader.Close()
		if body, err := io.ReadAll(zlibReader); err == nil {
			return body, nil
		}
	}

	flateReader := flate.NewReader(bytes.NewReader(raw))
	defer flateReader.Close()
	return io.ReadAll(flateReader)
}
