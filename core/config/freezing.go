package config

import (
	"github.com/dop251/goja"
)

// FreezeRules config def. Code is an optional javascript snippet
// computing the effects of the nth freeze; when empty the built-in
// ladder applies.
type FreezeRules struct {
	Code string `json:"effects"`
}

// FreezeEffects def (duration in minutes).
type FreezeEffects struct {
	Duration int64
}

// Built-in escalation: 24h, 72h, 1 week, then 1 month for every
// freeze after that.
var ladder = []int64{60 * 24, 60 * 72, 60 * 24 * 7, 60 * 24 * 30}

// Effects from config (duration) for a user frozen `times` times before.
func (fr FreezeRules) Effects(times int) (FreezeEffects, error) {
	if len(fr.Code) == 0 {
		if times < 0 {
			times = 0
		}
		if times >= len(ladder) {
			times = len(ladder) - 1
		}
		return FreezeEffects{ladder[times]}, nil
	}
	vm := goja.New()
	vm.RunString(`
		var exports = {};
	`)
	vm.Set("freezeN", times)
	if _, err := vm.RunString(fr.Code); err != nil {
		return FreezeEffects{}, err
	}
	obj := vm.Get("exports").ToObject(vm)
	duration := obj.Get("duration").ToInteger()

	return FreezeEffects{duration}, nil
}
