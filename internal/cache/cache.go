// Package cache keeps rendered read models (menus, company info) between
// requests. Values are stored as JSON so both backends behave the same.
package cache

import (
	"context"
	"time"
)

const (
	KeyNavbar      = "nav:navbar"
	KeyFooter      = "nav:footer"
	KeyCompanyInfo = "site:company_info"
)

type Cache interface {
	// Get decodes the cached value into dst and reports whether it was found.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// Options configures a backend.
type Options struct {
	TTL time.Duration
}
