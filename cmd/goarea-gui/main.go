package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goarea/internal/config"
	"github.com/philipparndt/goarea/internal/log"
	"github.com/philipparndt/goarea/internal/measure"
	"github.com/philipparndt/goarea/internal/ui"
	"github.com/philipparndt/goarea/pkg/scene"
	"github.com/philipparndt/goarea/pkg/watcher"
)

const watchDebounce = 300 * time.Millisecond

type App struct {
	window     fyne.Window
	cfg        config.AppConfig
	mesh       *scene.Mesh
	viewport   *ui.Viewport
	panel      *ui.Panel
	controller *measure.Controller
	watcher    *watcher.ModelWatcher
	modelPath  string
}

func main() {
	cfg := config.Defaults()
	if path, err := config.DefaultPath(); err == nil {
		loaded, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	log.Init(log.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})

	a := app.New()
	w := a.NewWindow("GoArea - Planar Area Measurement")

	appInstance := &App{
		window: w,
		cfg:    cfg,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.SetOnClosed(appInstance.shutdown)
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to GoArea")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open STL File' to load a 3D model")

	openButton := widget.NewButton("Open STL File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	mesh, err := scene.LoadSTL(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load STL file: %w", err), a.window)
		return
	}

	a.mesh = mesh
	a.modelPath = filename
	a.setupMainUI()
	a.watchModel(filename)
}

func (a *App) setupMainUI() {
	a.viewport = ui.NewViewport(a.mesh)

	// Picks restore the camera they probed with, so a pick never leaves
	// the view in a different orientation.
	camera := a.viewport.Camera()
	picker := measure.NewRestoringPicker(
		a.viewport.Picker().ProjectScreenToWorld,
		func() func() {
			state := camera.Save()
			return func() { camera.Restore(state) }
		},
	)

	a.controller = measure.NewController(a.viewport, picker, measure.Options{
		MaxClickDistancePx: a.cfg.Gesture.MaxClickDistancePx,
		MaxClickDuration:   a.cfg.Gesture.MaxClickDuration(),
		SuppressWindow:     a.cfg.Gesture.SuppressWindow(),
	})

	a.panel = ui.NewPanel(a.controller)
	a.panel.SetModelInfo(a.modelInfo())

	a.controller.Subscribe(func(s measure.Snapshot) {
		a.viewport.SetSnapshot(s)
		a.panel.Update(s)
		a.panel.SetActive(a.controller.Session().Mode() != measure.Inactive)
	})

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	panelBox := container.NewVBox(a.panel.Content(), widget.NewSeparator(), openButton)
	infoScroll := container.NewVScroll(panelBox)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,
		nil,
		nil,
		infoScroll,
		a.viewport,
	)

	a.window.SetContent(content)
	a.viewport.Render(800, 600)
}

func (a *App) modelInfo() string {
	bbox := a.mesh.BoundingBox()
	size := bbox.Size()
	return fmt.Sprintf(
		"Model: %s\nTriangles: %d\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.mesh.Name,
		a.mesh.TriangleCount(),
		a.mesh.SurfaceArea(),
		size.X, size.Y, size.Z,
	)
}

// watchModel reloads the mesh when the file changes on disk. The camera
// orientation and any in-progress measurement survive the reload.
func (a *App) watchModel(filename string) {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}

	w, err := watcher.New(watchDebounce)
	if err != nil {
		log.L().Warn("model watching disabled", "error", err)
		return
	}
	if err := w.Watch(filename, func(path string) {
		mesh, err := scene.LoadSTL(path)
		if err != nil {
			log.L().Warn("model reload failed", "path", path, "error", err)
			return
		}
		fyne.Do(func() {
			a.mesh = mesh
			a.viewport.SetMesh(mesh)
			a.panel.SetModelInfo(a.modelInfo())
		})
		log.L().Info("model reloaded", "path", path)
	}); err != nil {
		log.L().Warn("model watching disabled", "path", filename, "error", err)
		w.Close()
		return
	}
	w.Start()
	a.watcher = w
}

func (a *App) shutdown() {
	if a.watcher != nil {
		a.watcher.Close()
	}
}
