package widget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsvensson/viewstyle/internal/style"
)

// ErrUnknownKind is returned by Build for a kind not in Kinds.
var ErrUnknownKind = errors.New("unknown widget kind")

// Kinds lists the widget kinds Build accepts.
var Kinds = []string{"view", "button", "label", "textField", "textView"}

// Build returns a new widget of the given kind with its text set and s
// applied. A view has no text.
func Build(kind, text string, s style.Style) (any, error) {
	switch kind {
	case "view":
		return NewView().Apply(s), nil
	case "button":
		return NewButton(text).Apply(s), nil
	case "label":
		return NewLabel(text).Apply(s), nil
	case "textField":
		return NewTextField().SetText(text).Apply(s), nil
	case "textView":
		return NewTextView().SetText(text).Apply(s), nil
	}
	return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownKind, kind, strings.Join(Kinds, ", "))
}
