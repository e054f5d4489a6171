package deps

import (
	"github.com/kurobbs/core/core/clock"
)

func IgniteClock(container Deps) (Deps, error) {
	container.ClockProvider = clock.Real()
	return container, nil
}
