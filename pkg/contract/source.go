package contract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const sourceTimeout = 10 * time.Second

// LoadSource builds a Checker from a document at location, which is either
// an http(s) URL or a file path. An empty location uses the embedded
// document.
func LoadSource(ctx context.Context, location string, options ...Option) (*Checker, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return New(ctx, options...)
	}

	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		data, err = loadHTTP(ctx, location)
	} else {
		data, err = loadFile(ctx, location)
	}
	if err != nil {
		return nil, fmt.Errorf("contract: read %s: %w", location, err)
	}
	return Load(ctx, data, options...)
}

func loadFile(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return os.ReadFile(path)
}

func loadHTTP(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, sourceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.New("unexpected status " + resp.Status)
	}
	return io.ReadAll(resp.Body)
}
