package events

import (
	pool "github.com/kurobbs/core/core/events"
	"github.com/op/go-logging"
)

var (
	log = logging.MustGetLogger("main")
)

func init() {
	reportHandlers()
}

func register(list []pool.EventHandler) {
	for _, h := range list {
		pool.On <- h
	}
}
