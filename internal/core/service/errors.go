package service

import (
	"strings"

	"github.com/snapshot/storefront/internal/core/domain"
)

// storageErr passes tagged errors through and wraps anything else as a
// persistence failure.
func storageErr(msg string, err error) error {
	if domain.KindOf(err) != domain.KindInternal {
		return err
	}
	return domain.Persistence(msg, err)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
