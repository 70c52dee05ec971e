// Package ui builds the Fyne user interface: the creator list with its
// search box, the register and edit forms, toast notifications, and the
// delete confirmation dialog. Screen routing lives in Controller so it can
// be tested without a running window.
package ui
