package rules

import (
	"github.com/donaldgifford/hyprconf/internal/rules/lint"
)

func init() {
	RegisterRule(&lint.DuplicateMonitor{})
	RegisterRule(&lint.DuplicateKeybind{})
	RegisterRule(&lint.EmptySubmap{})
	RegisterRule(&lint.UndefinedBezier{})
	RegisterRule(&lint.UndefinedVariable{})
}
