package preferences

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"workplay/internal/core/model"
)

// Spinner is a minutes field with -/+ buttons.
type Spinner struct {
	entry    *widget.Entry
	minus    *widget.Button
	plus     *widget.Button
	value    int
	onChange func(int) error
	onError  func(error)
	syncing  bool
	object   fyne.CanvasObject
}

func newSpinner(value int, onChange func(int) error, onError func(error)) *Spinner {
	spinner := &Spinner{
		value:    value,
		onChange: onChange,
		onError:  onError,
	}

	spinner.entry = widget.NewEntry()
	spinner.entry.SetText(strconv.Itoa(value))
	spinner.entry.OnChanged = spinner.handleText
	spinner.entry.OnSubmitted = spinner.handleText

	spinner.minus = widget.NewButton("-", func() {
		spinner.apply(spinner.value - 1)
	})
	spinner.plus = widget.NewButton("+", func() {
		spinner.apply(spinner.value + 1)
	})

	spinner.object = container.NewBorder(nil, nil, spinner.minus, spinner.plus, spinner.entry)
	return spinner
}

// Value returns the last accepted minutes.
func (spinner *Spinner) Value() int {
	return spinner.value
}

func (spinner *Spinner) handleText(text string) {
	if spinner.syncing {
		return
	}
	minutes, err := parseMinutes(text)
	if err != nil {
		spinner.onError(err)
		return
	}
	spinner.apply(minutes)
}

func (spinner *Spinner) apply(minutes int) {
	if err := model.ValidateMinutes(minutes); err != nil {
		spinner.onError(err)
		return
	}
	if spinner.onChange != nil {
		if err := spinner.onChange(minutes); err != nil {
			spinner.onError(err)
			return
		}
	}
	spinner.value = minutes
	spinner.onError(nil)

	text := strconv.Itoa(minutes)
	if spinner.entry.Text != text {
		spinner.syncing = true
		spinner.entry.SetText(text)
		spinner.syncing = false
	}
}

func parseMinutes(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", model.ErrInvalidDuration, value)
	}
	return parsed, nil
}
