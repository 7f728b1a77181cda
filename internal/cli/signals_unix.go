//go:build unix

package cli

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"sitesearch/internal/search"
)

// watchActivationSignals lets other processes drive the overlay:
// SIGUSR1 opens it and SIGUSR2 closes it.
func watchActivationSignals(a search.Activator) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, syscall.SIGUSR1, syscall.SIGUSR2)

	go func() {
		for {
			select {
			case sig := <-sigs:
				log.Printf("Received %v", sig)
				if sig == syscall.SIGUSR1 {
					a.Open()
				} else {
					a.Close()
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
