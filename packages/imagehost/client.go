// Package imagehost is the narrow boundary to the external media host. The
// application only needs to enumerate hosted images and delete individual
// ones; uploads go straight from the admin browser to the host.
package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
)

type RemoteImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Client interface {
	ListImages(ctx context.Context) ([]RemoteImage, error)
	DeleteImage(ctx context.Context, key string) error
}

type HTTPClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewHTTPClientFromEnv() *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(envconfig.String("IMAGE_HOST_API_URL", "https://api.imagehost.example"), "/"),
		apiKey:  envconfig.String("IMAGE_HOST_API_KEY", ""),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) ListImages(ctx context.Context) ([]RemoteImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/images", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host list returned status %d", resp.StatusCode)
	}

	var payload struct {
		Images []RemoteImage `json:"images"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Images, nil
}

func (c *HTTPClient) DeleteImage(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/v1/images/"+url.PathEscape(key), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("image host delete returned status %d", resp.StatusCode)
	}
	return nil
}

// KeyFromURL extracts the host's opaque reference key from a stored image
// URL: the last path segment, query stripped. An empty result means the URL
// does not point at the media host.
func KeyFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	key := path.Base(u.Path)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
