package main

import (
	"fmt"
	"os"
	"strings"
)

// toggle is an auto|on|off setting. Auto follows whether the stream is a
// terminal.
type toggle uint8

const (
	toggleAuto toggle = iota
	toggleOn
	toggleOff
)

func parseToggle(flag, value string) (toggle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return toggleAuto, nil
	case "on":
		return toggleOn, nil
	case "off":
		return toggleOff, nil
	}
	return toggleAuto, fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

func (t toggle) resolve(f *os.File) bool {
	if t == toggleAuto {
		return isTerminal(f)
	}
	return t == toggleOn
}
