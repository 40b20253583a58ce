package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goarea/internal/measure"
	"github.com/philipparndt/goarea/pkg/geometry"
)

// Panel is the measurement side panel: point list, perimeter/area readout,
// and the tool controls. Every control press also arms the controller's
// click suppression so a press that lands over the viewport does not place
// a point as well.
type Panel struct {
	controller *measure.Controller

	modeLabel      *widget.Label
	perimeterLabel *widget.Label
	areaLabel      *widget.Label
	planarityLabel *widget.Label
	modelInfoLabel *widget.Label

	pointList *widget.List
	points    []geometry.Vector3
	redoIndex *int

	toggleButton *widget.Button
	active       bool

	content fyne.CanvasObject
}

// NewPanel builds the side panel bound to a controller
func NewPanel(controller *measure.Controller) *Panel {
	p := &Panel{
		controller:     controller,
		modeLabel:      widget.NewLabel("Tool: off"),
		perimeterLabel: widget.NewLabel("Perimeter: -"),
		areaLabel:      widget.NewLabel("Area: -"),
		planarityLabel: widget.NewLabel("Planarity RMS: -"),
		modelInfoLabel: widget.NewLabel(""),
	}
	p.areaLabel.TextStyle = fyne.TextStyle{Bold: true}

	p.pointList = widget.NewList(
		func() int { return len(p.points) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			pt := p.points[id]
			label.SetText(fmt.Sprintf("%d: (%.3f, %.3f, %.3f)", id+1, pt.X, pt.Y, pt.Z))
		},
	)
	// Selecting a placed point marks it for replacement by the next click.
	p.pointList.OnSelected = func(id widget.ListItemID) {
		p.controller.SuppressClicksBriefly()
		p.controller.RequestRedo(id)
	}

	p.toggleButton = widget.NewButton("Start Measuring", func() {
		p.controller.SuppressClicksBriefly()
		if p.active {
			p.controller.Deactivate()
		} else {
			p.controller.Activate()
		}
	})

	closeButton := widget.NewButton("Close Polygon", func() {
		p.controller.SuppressClicksBriefly()
		p.controller.ClosePolygon()
	})

	clearButton := widget.NewButton("Clear Points", func() {
		p.controller.SuppressClicksBriefly()
		p.controller.Clear()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on the model to place points\n" +
			"• Drag to rotate, scroll to zoom\n" +
			"• Select a point to re-place it\n" +
			"• Close the polygon to measure area",
	)
	instructions.Wrapping = fyne.TextWrapWord

	listScroll := container.NewVScroll(p.pointList)
	listScroll.SetMinSize(fyne.NewSize(0, 160))

	p.content = container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		p.modelInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Measurement:"),
		widget.NewSeparator(),
		p.modeLabel,
		listScroll,
		p.perimeterLabel,
		p.areaLabel,
		p.planarityLabel,
		widget.NewSeparator(),
		p.toggleButton,
		closeButton,
		clearButton,
		widget.NewSeparator(),
		instructions,
	)

	return p
}

// Content returns the panel's root canvas object
func (p *Panel) Content() fyne.CanvasObject {
	return p.content
}

// SetModelInfo updates the model summary block
func (p *Panel) SetModelInfo(info string) {
	p.modelInfoLabel.SetText(info)
}

// SetActive reflects tool activation state on the toggle button
func (p *Panel) SetActive(active bool) {
	p.active = active
	if active {
		p.toggleButton.SetText("Stop Measuring")
		p.modeLabel.SetText("Tool: on")
	} else {
		p.toggleButton.SetText("Start Measuring")
		p.modeLabel.SetText("Tool: off")
	}
}

// Update refreshes the readout from a measurement snapshot
func (p *Panel) Update(s measure.Snapshot) {
	p.points = s.Points
	p.redoIndex = s.RedoIndex
	p.pointList.Refresh()
	if s.RedoIndex == nil {
		p.pointList.UnselectAll()
	}

	if len(s.Edges) > 0 {
		p.perimeterLabel.SetText(fmt.Sprintf("Perimeter: %.6f units", s.Perimeter()))
	} else {
		p.perimeterLabel.SetText("Perimeter: -")
	}

	if s.Area != nil {
		p.areaLabel.SetText(fmt.Sprintf("Area: %.6f units²", *s.Area))
	} else {
		p.areaLabel.SetText("Area: -")
	}

	if s.Closed && len(s.Points) >= 3 {
		if fit, err := geometry.FitPlane(s.Points); err == nil {
			p.planarityLabel.SetText(fmt.Sprintf("Planarity RMS: %.6f", fit.RMS))
		} else {
			p.planarityLabel.SetText("Planarity RMS: degenerate")
		}
	} else {
		p.planarityLabel.SetText("Planarity RMS: -")
	}
}
