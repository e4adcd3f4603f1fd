package infrastructure

import (
	"net"
	"net/http"
	"time"
)

const (
	defaultClientTimeout       = 10 * time.Second
	defaultDialTimeout         = 5 * time.Second
	defaultTLSHandshakeTimeout = 5 * time.Second
	defaultIdleConnTimeout     = 30 * time.Second
	defaultMaxIdleConns        = 4
)

type HTTPClientConfig struct {
	Timeout             time.Duration
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
	IdleConnTimeout     time.Duration
	MaxIdleConns        int
}

func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:             defaultClientTimeout,
		DialTimeout:         defaultDialTimeout,
		TLSHandshakeTimeout: defaultTLSHandshakeTimeout,
		IdleConnTimeout:     defaultIdleConnTimeout,
		MaxIdleConns:        defaultMaxIdleConns,
	}
}

func NewHTTPClient(cfg HTTPClientConfig) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultClientTimeout
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.TLSHandshakeTimeout <= 0 {
		cfg.TLSHandshakeTimeout = defaultTLSHandshakeTimeout
	}
	if cfg.IdleConnTimeout <= 0 {
		cfg.IdleConnTimeout = defaultIdleConnTimeout
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = defaultMaxIdleConns
	}

	return &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: cfg.DialTimeout,
			}).DialContext,
			TLSHandshakeTimeout: cfg.TLSHandshakeTimeout,
			IdleConnTimeout:     cfg.IdleConnTimeout,
			MaxIdleConns:        cfg.MaxIdleConns,
		},
	}
}
