package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// X11Probe reads desktop state through the standard X11 command-line tools
// (xdotool, xsel). Shelling out per tick is cheap at overlay poll rates and
// avoids cgo against Xlib.
type X11Probe struct {
	timeout time.Duration
}

func NewX11Probe() *X11Probe {
	return &X11Probe{timeout: 2 * time.Second}
}

func (p *X11Probe) run(name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}

func (p *X11Probe) ForegroundWindowTitle() (string, error) {
	title, err := p.run("xdotool", "getactivewindow", "getwindowname")
	if err != nil {
		// No active window is a normal condition, e.g. on an empty desktop.
		if strings.Contains(err.Error(), "exit status 1") {
			return "", nil
		}
		return "", err
	}
	return title, nil
}

// ModifierPressed checks the core keyboard state via xinput. Both the left
// and right variant of a modifier count as pressed.
func (p *X11Probe) ModifierPressed(name string) (bool, error) {
	codes, ok := modifierKeycodes[strings.ToLower(name)]
	if !ok {
		return false, fmt.Errorf("unknown modifier %q", name)
	}

	state, err := p.run("xinput", "--query-state", "Virtual core keyboard")
	if err != nil {
		return false, err
	}
	for _, code := range codes {
		if strings.Contains(state, fmt.Sprintf("key[%d]=down", code)) {
			return true, nil
		}
	}
	return false, nil
}

func (p *X11Probe) SelectedText() (string, error) {
	// PRIMARY selection tracks whatever the user highlighted last.
	text, err := p.run("xsel", "-o", "-p")
	if err != nil {
		return "", err
	}
	return text, nil
}

// Standard X11 keycodes for the left/right variants of each modifier.
var modifierKeycodes = map[string][]int{
	"ctrl":  {37, 105},
	"alt":   {64, 108},
	"shift": {50, 62},
}
