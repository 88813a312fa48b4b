package textcheck

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// maxBodySize caps how much of a page or file is read.
const maxBodySize = 10 * 1024 * 1024

// Load returns the text of src, which is a URL, an HTML file or a plain
// text file. HTML goes through FromHTML.
func Load(ctx context.Context, client *http.Client, src string) (string, error) {
	if u, err := url.Parse(src); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		body, err := fetch(ctx, client, u)
		if err != nil {
			return "", err
		}
		a, err := FromHTML(bytes.NewReader(body), u)
		if err != nil {
			return "", err
		}
		return a.Text, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()
	body, err := io.ReadAll(io.LimitReader(f, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", src, err)
	}
	if !isHTML(src, body) {
		return string(body), nil
	}
	a, err := FromHTML(bytes.NewReader(body), nil)
	if err != nil {
		return "", err
	}
	return a.Text, nil
}

func fetch(ctx context.Context, client *http.Client, u *url.URL) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", u, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func isHTML(name string, body []byte) bool {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return true
	}
	head := strings.ToLower(string(body[:min(len(body), 512)]))
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}
