package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppIconResource returns the icon used for the app and its windows
func AppIconResource() fyne.Resource {
	return theme.FileImageIcon()
}
