package deps

import (
	slog "log"
)

// Contains bootstraped dependencies.
var Container Deps

// An Ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Bootstrap runs ignitors to fulfill the deps container.
func Bootstrap() {
	ignitors := []Ignitor{
		IgniteLogger,
		IgniteClock,
		IgniteMongoDB,
		IgniteCache,
		IgniteLedisDB,
	}

	Container = Deps{}
	for _, fn := range ignitors {
		var err error
		Container, err = fn(Container)
		if err != nil {
			slog.Panic(err)
		}
	}
}
