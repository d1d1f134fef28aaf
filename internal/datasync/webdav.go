package datasync

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"resty.dev/v3"

	"github.com/chenchunyii/Chewing-Editor/internal/external"
)

const webDAVTool = "webdav"

// WebDAVPublisher uploads the dictionary with an HTTP PUT.
type WebDAVPublisher struct {
	httpClient *resty.Client
	baseURL    string
}

func NewWebDAVPublisher(baseURL, username, password string) *WebDAVPublisher {
	client := resty.New()
	if username != "" {
		client.SetBasicAuth(username, password)
	}
	client.SetHeader("Content-Type", "application/json; charset=utf-8")

	return &WebDAVPublisher{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

func (p *WebDAVPublisher) Close() error {
	return p.httpClient.Close()
}

// DestinationURL is the URL path is uploaded to.
func (p *WebDAVPublisher) DestinationURL(path string) string {
	return p.baseURL + "/" + url.PathEscape(filepath.Base(path))
}

func (p *WebDAVPublisher) Publish(ctx context.Context, path string) external.Result {
	if p.baseURL == "" {
		return external.ToolMissing(webDAVTool, fmt.Errorf("webdav url is not configured"))
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return external.ToolFailed(webDAVTool, fmt.Errorf("os.ReadFile(%s) > %w", path, err))
	}

	destination := p.DestinationURL(path)
	response, err := p.httpClient.R().
		SetContext(ctx).
		SetBody(contents).
		Put(destination)
	if err != nil {
		return external.ToolMissing(webDAVTool, fmt.Errorf("PUT %s > %w", destination, err))
	}
	if response.IsError() {
		return external.ToolFailed(webDAVTool, fmt.Errorf("PUT %s: response error %s", destination, response.Status()))
	}
	return external.OK(webDAVTool)
}
