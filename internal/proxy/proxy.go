package proxy

import (
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// Proxy forwards API requests from the edge server to the backend. The
// request path and query string are passed through verbatim, so the backend
// sees exactly what the browser sent.
type Proxy struct {
	target *url.URL
	client *http.Client
}

// New creates a proxy forwarding to the given backend base URL.
func New(target string) (*Proxy, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	return &Proxy{
		target: u,
		client: &http.Client{
			Timeout: 30 * time.Second,
			// redirects are the backend's business, pass them through
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}, nil
}

// Handle forwards one request. Any failure to reach the backend yields a
// fixed 500 JSON body with an "error" field; backend responses, including
// backend errors, are relayed as-is.
func (p *Proxy) Handle(c echo.Context) error {
	req := c.Request()

	outURL := *p.target
	outURL.Path = req.URL.Path
	outURL.RawPath = req.URL.RawPath
	outURL.RawQuery = req.URL.RawQuery

	out, err := http.NewRequestWithContext(req.Context(), req.Method, outURL.String(), req.Body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "proxy error",
		})
	}

	// headers pass through verbatim; Host is rewritten to the backend
	for k, vals := range req.Header {
		for _, v := range vals {
			out.Header.Add(k, v)
		}
	}
	out.Host = p.target.Host

	resp, err := p.client.Do(out)
	if err != nil {
		log.Printf("proxy: backend unreachable: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "proxy error",
		})
	}
	defer resp.Body.Close()

	header := c.Response().Header()
	for k, vals := range resp.Header {
		for _, v := range vals {
			header.Add(k, v)
		}
	}
	c.Response().WriteHeader(resp.StatusCode)
	_, err = io.Copy(c.Response(), resp.Body)
	return err
}
