package middleware

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

var gzipMagic = []byte{0x1f, 0x8b}

// DecompressMiddleware decodes brotli bodies and any gzip body resty has not
// already inflated. The Content-Encoding header is dropped once decoded.
func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	encoding := resp.Header().Get("Content-Encoding")
	body := resp.Body()
	if encoding == "" || len(body) == 0 {
		return nil
	}

	var reader io.Reader
	switch encoding {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(body))
	case "gzip":
		if !bytes.HasPrefix(body, gzipMagic) {
			return nil
		}
		gz, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return err
		}
		defer gz.Close()
		reader = gz
	default:
		return nil
	}

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	resp.SetBody(decompressed)
	resp.Header().Del("Content-Encoding")
	return nil
}
