package logger

import (
	"os"
	"os/signal"

	"go.uber.org/zap"
)

// ReloadOnSignal reopens the log file every time one of sig arrives, so logrotate can move it away.
// The returned function stops listening.
func ReloadOnSignal(ws *ReopenableWriteSyncer, log *zap.Logger, sig ...os.Signal) (stop func()) {
	c := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(c, sig...)
	go func() {
		for {
			select {
			case <-c:
				log.Info("receive logrotate signal, reloading log file")
				if e := ws.Reload(); e != nil {
					log.Error("failed to reload log file", zap.Error(e))
				} else {
					log.Info("successfully reloaded log file")
				}
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}
