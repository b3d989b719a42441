// Package metadata scrapes a page's title, description and favicon.
// Fetch is best effort: every failure yields an empty Metadata.
package metadata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/internal/metrics"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; Urlist/1.0; +https://urlist.com)"
	DefaultTimeout   = 5 * time.Second

	maxBodySize = 2 << 20
)

type Metadata struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	FaviconURL  string `json:"favicon_url,omitempty"`
}

func (m Metadata) IsEmpty() bool {
	return m.Title == "" && m.Description == "" && m.FaviconURL == ""
}

var ErrBlockedAddress = errors.New("destination address is not public")

type Config struct {
	Timeout   time.Duration
	UserAgent string
	// AllowPrivateHosts lets fetches reach loopback, private and link-local
	// addresses. Off in production.
	AllowPrivateHosts bool
}

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	client := &http.Client{Timeout: cfg.Timeout}
	if !cfg.AllowPrivateHosts {
		client.Transport = publicOnlyTransport()
	}

	return &Fetcher{
		client:    client,
		userAgent: cfg.UserAgent,
	}
}

// publicOnlyTransport checks every resolved address at connect time, which
// also covers redirects and hostnames that resolve to internal addresses.
func publicOnlyTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
		Control: func(network, address string, _ syscall.RawConn) error {
			host, _, err := net.SplitHostPort(address)
			if err != nil {
				return err
			}
			ip := net.ParseIP(host)
			if ip == nil || !IsPublicIP(ip) {
				return fmt.Errorf("%s: %w", host, ErrBlockedAddress)
			}
			return nil
		},
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return transport
}

func IsPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified())
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) Metadata {
	log := logger.FromContext(ctx).With(slog.String("url", rawURL))
	start := time.Now()

	pageURL, err := url.Parse(rawURL)
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		metrics.RecordMetadataFetch("invalid_url", time.Since(start))
		return Metadata{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		metrics.RecordMetadataFetch("invalid_url", time.Since(start))
		return Metadata{}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if errors.Is(err, ErrBlockedAddress) {
		log.Warn("Metadata fetch blocked", slog.String("error", err.Error()))
		metrics.RecordMetadataFetch("blocked", time.Since(start))
		return Metadata{}
	}
	if err != nil {
		log.Debug("Metadata fetch failed", slog.String("error", err.Error()))
		metrics.RecordMetadataFetch("network_error", time.Since(start))
		return Metadata{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug("Metadata fetch returned non-success status", slog.Int("status", resp.StatusCode))
		metrics.RecordMetadataFetch("bad_status", time.Since(start))
		return Metadata{}
	}

	md, err := Parse(io.LimitReader(resp.Body, maxBodySize), pageURL)
	if err != nil {
		log.Debug("Metadata parse failed", slog.String("error", err.Error()))
		metrics.RecordMetadataFetch("parse_error", time.Since(start))
		return Metadata{}
	}

	metrics.RecordMetadataFetch("ok", time.Since(start))
	return md
}

// Parse extracts metadata from an HTML document. The first matching title,
// description and icon link win.
func Parse(r io.Reader, pageURL *url.URL) (Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Metadata{}, err
	}

	var md Metadata

	md.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		if !strings.EqualFold(strings.TrimSpace(name), "description") {
			return true
		}
		content, _ := s.Attr("content")
		if content = strings.TrimSpace(content); content == "" {
			return true
		}
		md.Description = content
		return false
	})

	doc.Find("link[rel][href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		rel, _ := s.Attr("rel")
		rel = strings.ToLower(strings.TrimSpace(rel))
		if rel != "icon" && rel != "shortcut icon" {
			return true
		}
		href, _ := s.Attr("href")
		if href = strings.TrimSpace(href); href == "" {
			return true
		}
		md.FaviconURL = ResolveFavicon(href, pageURL)
		return false
	})

	return md, nil
}

// ResolveFavicon makes an icon href absolute against the page origin. Hrefs
// that are neither absolute nor root-relative fall back to /favicon.ico.
func ResolveFavicon(href string, pageURL *url.URL) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}

	origin := pageURL.Scheme + "://" + pageURL.Host

	switch {
	case strings.HasPrefix(href, "//"):
		return pageURL.Scheme + ":" + href
	case strings.HasPrefix(href, "/"):
		return origin + href
	default:
		return origin + "/favicon.ico"
	}
}
