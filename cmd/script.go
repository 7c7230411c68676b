package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BrandonKowalski/navstate/pkg/navstate"
	"github.com/BrandonKowalski/navstate/pkg/navstate/router"
)

// ErrBadStep is wrapped by every script parse error.
var ErrBadStep = errors.New("bad script step")

// Step is one parsed script command.
type Step struct {
	Line   int
	Verb   string
	Target string         // Route or tab ID, when the verb takes one
	Params map[string]any // key=value arguments after the target
}

// arity is the number of positional arguments each verb takes.
var arity = map[string]int{
	"push":       1,
	"popto":      1,
	"replace":    1,
	"replaceall": 1,
	"sheet":      1,
	"fullscreen": 1,
	"tab":        1,
	"reset":      1,
	"pop":        0,
	"root":       0,
	"dismiss":    0,
	"dismissall": 0,
	"back":       0,
	"resetall":   0,
}

// ParseScript reads one command per line. Parameter values that parse as
// integers or booleans are stored as int and bool; everything else is a string.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		step, err := parseStep(line, strings.Fields(text))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseStep(line int, fields []string) (Step, error) {
	step := Step{Line: line, Verb: strings.ToLower(fields[0])}
	want, ok := arity[step.Verb]
	if !ok {
		return Step{}, fmt.Errorf("line %d: %w: unknown command %q", line, ErrBadStep, fields[0])
	}

	args := fields[1:]
	if want == 0 {
		if len(args) > 0 {
			return Step{}, fmt.Errorf("line %d: %w: %s takes no arguments", line, ErrBadStep, step.Verb)
		}
		return step, nil
	}
	if len(args) == 0 {
		return Step{}, fmt.Errorf("line %d: %w: %s needs a target", line, ErrBadStep, step.Verb)
	}

	step.Target = args[0]
	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return Step{}, fmt.Errorf("line %d: %w: expected key=value, got %q", line, ErrBadStep, arg)
		}
		if step.Params == nil {
			step.Params = make(map[string]any)
		}
		step.Params[key] = parseValue(value)
	}
	return step, nil
}

func parseValue(raw string) any {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func (s Step) route() router.Route {
	return router.NewRoute(s.Target, s.Params)
}

// Apply runs the step against host. Commands that cannot apply, such as
// popping the root, are not errors; they simply change nothing.
func (s Step) Apply(host *navstate.Host) error {
	nav := host.Navigator()
	switch s.Verb {
	case "push":
		nav.Navigate(s.route())
	case "pop":
		nav.NavigateBack()
	case "popto":
		nav.NavigateBackTo(s.route())
	case "root":
		nav.NavigateBackToRoot()
	case "replace":
		nav.Replace(s.route())
	case "replaceall":
		nav.ReplaceAll(s.route())
	case "sheet", "fullscreen":
		dismissible := true
		if v, ok := s.Params["dismissible"].(bool); ok {
			dismissible = v
		}
		style := router.ModalStyleSheet
		if s.Verb == "fullscreen" {
			style = router.ModalStyleFullScreen
		}
		nav.PresentModal(router.NewModal(s.route(), style, dismissible))
	case "dismiss":
		nav.DismissModal()
	case "dismissall":
		nav.DismissAllModals()
	case "back":
		nav.Back()
	case "tab":
		host.SwitchTab(s.Target)
	case "reset":
		host.ResetTab(s.Target)
	case "resetall":
		host.ResetAllTabs()
	default:
		return fmt.Errorf("line %d: %w: unknown command %q", s.Line, ErrBadStep, s.Verb)
	}
	return nil
}
