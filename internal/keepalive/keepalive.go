// Package keepalive runs the periodic liveness tick that stops the hosting
// platform from idling the process out. It has no functional role beyond
// logging a heartbeat.
package keepalive

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval matches the hosting platform's idle timeout margin.
const DefaultInterval = 105 * time.Second

// Start launches the tick goroutine and returns a stop function. Stopping is
// only needed in tests; in the server the tick runs for the process lifetime.
func Start(interval time.Duration, log zerolog.Logger) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				log.Info().Msg("tick: server is alive")
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
