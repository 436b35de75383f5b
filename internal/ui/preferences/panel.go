package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"workplay/internal/core/model"
	"workplay/internal/i18n"
)

// Callbacks receive accepted minute values. Returning an error rejects the
// value and keeps the previous one.
type Callbacks struct {
	OnWorkMinutes func(int) error
	OnPlayMinutes func(int) error
}

// Panel holds the work and play spinners.
type Panel struct {
	work       *Spinner
	play       *Spinner
	errorLabel *widget.Label
	object     fyne.CanvasObject
}

// New creates the durations panel.
func New(durations model.Durations, callbacks Callbacks) *Panel {
	panel := &Panel{
		errorLabel: widget.NewLabel(""),
	}
	panel.errorLabel.Importance = widget.DangerImportance
	panel.errorLabel.Hide()

	panel.work = newSpinner(durations.WorkMinutes, callbacks.OnWorkMinutes, panel.showError)
	panel.play = newSpinner(durations.PlayMinutes, callbacks.OnPlayMinutes, panel.showError)

	form := container.New(
		&formLayout{},
		widget.NewLabel(i18n.T("Work minutes")), panel.work.object,
		widget.NewLabel(i18n.T("Play minutes")), panel.play.object,
	)
	panel.object = container.NewVBox(form, panel.errorLabel)
	return panel
}

// CanvasObject returns the panel content.
func (panel *Panel) CanvasObject() fyne.CanvasObject {
	return panel.object
}

// Durations returns the last accepted values.
func (panel *Panel) Durations() model.Durations {
	return model.Durations{
		WorkMinutes: panel.work.Value(),
		PlayMinutes: panel.play.Value(),
	}
}

// Error returns the message currently shown, if any.
func (panel *Panel) Error() string {
	if panel.errorLabel.Hidden {
		return ""
	}
	return panel.errorLabel.Text
}

func (panel *Panel) showError(err error) {
	if err == nil {
		panel.errorLabel.SetText("")
		panel.errorLabel.Hide()
		return
	}
	panel.errorLabel.SetText(err.Error())
	panel.errorLabel.Show()
}

// formLayout places label/field pairs in two columns, labels at min width.
type formLayout struct{}

func (layout *formLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	labelWidth := layout.labelWidth(objects)
	y := float32(0)
	for i := 0; i+1 < len(objects); i += 2 {
		label, field := objects[i], objects[i+1]
		rowHeight := fyne.Max(label.MinSize().Height, field.MinSize().Height)

		label.Move(fyne.NewPos(0, y))
		label.Resize(fyne.NewSize(labelWidth, rowHeight))

		fieldWidth := size.Width - labelWidth
		if fieldWidth < 0 {
			fieldWidth = 0
		}
		field.Move(fyne.NewPos(labelWidth, y))
		field.Resize(fyne.NewSize(fieldWidth, rowHeight))

		y += rowHeight
	}
}

func (layout *formLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	labelWidth := layout.labelWidth(objects)
	fieldWidth := float32(0)
	height := float32(0)
	for i := 0; i+1 < len(objects); i += 2 {
		fieldWidth = fyne.Max(fieldWidth, objects[i+1].MinSize().Width)
		height += fyne.Max(objects[i].MinSize().Height, objects[i+1].MinSize().Height)
	}
	return fyne.NewSize(labelWidth+fieldWidth, height)
}

func (layout *formLayout) labelWidth(objects []fyne.CanvasObject) float32 {
	width := float32(0)
	for i := 0; i < len(objects); i += 2 {
		width = fyne.Max(width, objects[i].MinSize().Width)
	}
	return width
}
