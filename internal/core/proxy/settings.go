package proxy

import (
	"fmt"
	"net/url"
)

// Settings describes an optional upstream HTTP proxy for outbound requests.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HostPort returns the proxy address without credentials (e.g., "http://proxy.local:3128").
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// FullURL returns the proxy URL including credentials when both are set.
func (p Settings) FullURL() string {
	if !p.HasProxy() {
		return ""
	}
	if p.Username != "" && p.Password != "" {
		u := url.URL{
			Scheme: "http",
			User:   url.UserPassword(p.Username, p.Password),
			Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
		}
		return u.String()
	}
	return p.HostPort()
}

// URL returns the parsed proxy URL, or nil when no proxy is configured.
func (p Settings) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u, err := url.Parse(p.FullURL())
	if err != nil {
		return nil
	}
	return u
}
