package gioui

import "gioui.org/widget"

var iconCache = map[*byte]*widget.Icon{}

// widgetForIcon caches the widgets for the icons, so we don't have to create
// them anew every frame
func widgetForIcon(icon []byte) *widget.Icon {
	if icon == nil {
		return nil
	}
	if w, ok := iconCache[&icon[0]]; ok {
		return w
	}
	w, err := widget.NewIcon(icon)
	if err != nil {
		panic(err)
	}
	iconCache[&icon[0]] = w
	return w
}
