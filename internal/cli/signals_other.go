//go:build !unix

package cli

import "sitesearch/internal/search"

func watchActivationSignals(search.Activator) (stop func()) {
	return func() {}
}
