// Package gui is the fyne desktop front end. A sidebar selects one of the
// four views; every interaction builds a new ui.State and shows the page
// ui.Render returns for it.
package gui
