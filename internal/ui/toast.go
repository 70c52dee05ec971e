package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/desirely/creator-desk/internal/model"
)

// ToastPanel renders the notification queue as a stack of dismissible
// toasts. The queue owns lifetimes; the panel only mirrors its entries and
// forwards manual dismissals.
type ToastPanel struct {
	box     *fyne.Container
	dismiss func(id string)
}

// NewToastPanel creates the panel. dismiss is called with the notification
// id when the user clicks a toast's close button.
func NewToastPanel(dismiss func(id string)) *ToastPanel {
	return &ToastPanel{
		box:     container.NewVBox(),
		dismiss: dismiss,
	}
}

// Container returns the object to place in the window overlay.
func (tp *ToastPanel) Container() fyne.CanvasObject {
	return tp.box
}

// SetNotifications rebuilds the panel from the queue's current entries, in
// insertion order. Must be called on the Fyne thread.
func (tp *ToastPanel) SetNotifications(notifications []model.Notification) {
	objects := make([]fyne.CanvasObject, 0, len(notifications))
	for _, n := range notifications {
		objects = append(objects, tp.makeToast(n))
	}
	tp.box.Objects = objects
	tp.box.Refresh()
}

// makeToast builds one toast row.
func (tp *ToastPanel) makeToast(n model.Notification) fyne.CanvasObject {
	background := canvas.NewRectangle(severityColor(n.Severity))
	background.CornerRadius = 4

	label := widget.NewLabel(n.Message)
	label.Wrapping = fyne.TextWrapWord

	id := n.ID // capture for closure
	closeBtn := widget.NewButton(IconClose, func() {
		tp.dismiss(id)
	})
	closeBtn.Importance = widget.LowImportance

	row := container.NewBorder(nil, nil, nil, closeBtn, label)
	toast := container.NewStack(background, container.NewPadded(row))

	wrap := container.NewGridWrap(fyne.NewSize(ToastWidth, ToastHeight), toast)
	return wrap
}

// severityColor maps a severity onto its toast background.
func severityColor(severity model.Severity) color.Color {
	switch severity {
	case model.SeveritySuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 230}
	case model.SeverityWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 230}
	case model.SeverityError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 230}
	default:
		return theme.DefaultTheme().Color(theme.ColorNamePrimary, theme.VariantDark)
	}
}
