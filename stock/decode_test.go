package stock

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainBody = `<div class="company-ratios"><li><span class="name">ROE</span><span class="number">8.5</span></li></div>`

func compress(t *testing.T, encoding string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error

	switch encoding {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "zlib":
		w = zlib.NewWriter(&buf)
	case "flate":
		w, err = flate.NewWriter(&buf, flate.DefaultCompression)
	case "br":
		w = brotli.NewWriter(&buf)
	case "zstd":
		w, err = zstd.NewWriter(&buf)
	default:
		t.Fatalf("unknown encoding %q", encoding)
	}
	require.NoError(t, err)

	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func responseWith(header string, body []byte) *http.Response {
	resp := &http.Response{
		Header: make(http.Header),
		Body:   io.NopCloser(bytes.NewReader(body)),
	}
	if header != "" {
		resp.Header.Set("Content-Encoding", header)
	}
	return resp
}

func TestReadBodyEncodings(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		encoding string
	}{
		{"gzip", "gzip", "gzip"},
		{"deflate zlib-wrapped", "deflate", "zlib"},
		{"deflate raw", "deflate", "flate"},
		{"brotli", "br", "br"},
		{"zstd", "zstd", "zstd"},
		{"upper-case header", "GZIP", "gzip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := compress(t, tt.encoding, []byte(plainBody))

			got, err := readBody(responseWith(tt.header, body))
			require.NoError(t, err)
			assert.Equal(t, plainBody, string(got))
		})
	}
}

func TestReadBodyIdentity(t *testing.T) {
	got, err := readBody(responseWith("", []byte(plainBody)))
	require.NoError(t, err)
	assert.Equal(t, plainBody, string(got))
}

func TestReadBodyBadGzip(t *testing.T) {
	_, err := readBody(responseWith("gzip", []byte("not gzip")))
	assert.Error(t, err)
}
