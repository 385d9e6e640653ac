package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/vizpanel/internal/app"
	"github.com/philipparndt/vizpanel/internal/camera"
	"github.com/philipparndt/vizpanel/internal/config"
	"github.com/philipparndt/vizpanel/internal/drawing"
	"github.com/philipparndt/vizpanel/internal/logging"
	"github.com/philipparndt/vizpanel/internal/measurement"
	"github.com/philipparndt/vizpanel/pkg/geometry"
	"github.com/philipparndt/vizpanel/pkg/viewer"
	"github.com/philipparndt/vizpanel/pkg/watcher"
	"go.uber.org/zap"
)

type GUI struct {
	window     fyne.Window
	configPath string
	controller *app.App
	view       *viewer.PlanView
	info       *InfoPanel
	logger     *zap.Logger

	mu        sync.Mutex
	lastWrite []byte // config bytes last saved by this window
}

type InfoPanel struct {
	toolLabel        *widget.Label
	cameraLabel      *widget.Label
	selectionLabel   *widget.Label
	measurementLabel *widget.Label
	variablesLabel   *widget.Label
	polygonEntry     *widget.Entry
}

func main() {
	logger, err := logging.New(os.Getenv("VIZPANEL_LOG_LEVEL"), "console")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := fyneapp.New()
	w := a.NewWindow("vizpanel")

	g := &GUI{window: w, logger: logger}

	cfg := config.Default()
	if len(os.Args) > 1 {
		g.configPath = os.Args[1]
		if cfg, err = config.Load(g.configPath); err != nil {
			logger.Error("failed to load config", zap.String("path", g.configPath), zap.Error(err))
			cfg = config.Default()
		}
	}

	g.setup(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if g.configPath != "" {
		if err := g.watchConfig(ctx); err != nil {
			logger.Warn("auto-reload will not be available", zap.Error(err))
		}
	}

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (g *GUI) setup(cfg config.Config) {
	g.controller = app.New(app.Options{
		Config:          cfg,
		SaveCameraState: g.saveCameraState,
		Logger:          g.logger,
	})

	cam := cfg.CameraState
	g.view = viewer.NewPlanView(
		viewer.NewCamera(geometry.FromArray(cam.Target), camera.TargetHeading(cam), cam.Distance),
		func() []viewer.Segment { return segments(g.controller.Markers()) },
		controller{app: g.controller, onChange: g.updateInfo},
	)

	g.info = &InfoPanel{
		toolLabel:        widget.NewLabel(""),
		cameraLabel:      widget.NewLabel(""),
		selectionLabel:   widget.NewLabel(""),
		measurementLabel: widget.NewLabel(""),
		variablesLabel:   widget.NewLabel(""),
		polygonEntry:     widget.NewMultiLineEntry(),
	}
	g.info.polygonEntry.SetMinRowsVisible(8)

	tools := container.NewGridWithColumns(2,
		widget.NewButton("Polygons (p)", func() { g.controller.ToggleDrawing(drawing.Polygons); g.redraw() }),
		widget.NewButton("Camera (c)", func() { g.controller.ToggleDrawing(drawing.Camera); g.redraw() }),
		widget.NewButton("Measure (m)", func() { g.controller.ToggleMeasuring(); g.redraw() }),
		widget.NewButton("3D / 2D (3)", func() { g.controller.ToggleCameraMode(); g.redraw() }),
	)

	crosshairCheck := widget.NewCheck("Show crosshair", func(checked bool) {
		g.controller.SetShowCrosshair(checked)
		g.redraw()
	})
	crosshairCheck.SetChecked(cfg.ShowCrosshair)

	formatSelect := widget.NewSelect([]string{string(drawing.FormatYAML), string(drawing.FormatJSON)}, func(s string) {
		g.controller.SetEditFormat(drawing.EditFormat(s))
		g.updateInfo()
	})
	formatSelect.SetSelected(string(g.controller.EditFormat()))

	applyButton := widget.NewButton("Apply polygons", func() {
		if err := g.controller.ApplyPolygonEdit([]byte(g.info.polygonEntry.Text)); err != nil {
			dialog.ShowError(err, g.window)
			return
		}
		g.redraw()
	})

	chooseButton := widget.NewButton("Choose object...", g.showPendingSelection)
	clearButton := widget.NewButton("Clear selection", func() {
		g.controller.ClearSelectedObject()
		g.updateInfo()
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Ctrl+click adds polygon points, double-click closes\n" +
			"• Drag points or polygons to move them\n" +
			"• Middle-drag pans, scroll zooms\n" +
			"• Escape leaves the drawing tool",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Tools:"),
		widget.NewSeparator(),
		tools,
		crosshairCheck,
		widget.NewSeparator(),
		g.info.toolLabel,
		g.info.cameraLabel,
		g.info.measurementLabel,
		widget.NewSeparator(),
		widget.NewLabel("Selection:"),
		g.info.selectionLabel,
		container.NewGridWithColumns(2, chooseButton, clearButton),
		g.info.variablesLabel,
		widget.NewSeparator(),
		widget.NewLabel("Polygons:"),
		formatSelect,
		g.info.polygonEntry,
		applyButton,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	g.window.SetContent(container.NewBorder(nil, nil, nil, infoScroll, g.view))
	g.window.Canvas().Focus(g.view)
	g.updateInfo()
}

// saveCameraState persists camera changes made by the controller
func (g *GUI) saveCameraState(s camera.State) {
	if g.configPath == "" {
		return
	}
	cfg := g.controller.Config()
	cfg.CameraState = s
	if err := config.Save(g.configPath, cfg); err != nil {
		g.logger.Error("failed to save config", zap.Error(err))
		return
	}
	data, err := os.ReadFile(g.configPath)
	if err != nil {
		return
	}
	g.mu.Lock()
	g.lastWrite = data
	g.mu.Unlock()
}

// ownWrite reports whether path still holds what this window saved last
func (g *GUI) ownWrite(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastWrite != nil && bytes.Equal(data, g.lastWrite)
}

func (g *GUI) redraw() {
	g.view.Redraw()
	g.updateInfo()
}

func (g *GUI) updateInfo() {
	c := g.controller
	g.info.toolLabel.SetText(fmt.Sprintf("Drawing tool: %s", c.Drawing.Type()))

	mode := "perspective"
	if !c.CurrentCamera().Perspective {
		mode = "orthographic"
	}
	g.info.cameraLabel.SetText(fmt.Sprintf("Camera: %s", mode))

	m := c.Measurement.State()
	switch {
	case m.Phase == measurement.Idle && c.Measurement.Active():
		g.info.measurementLabel.SetText("Measure: click the first point")
	case m.Phase == measurement.Idle:
		g.info.measurementLabel.SetText("Measure: -")
	default:
		g.info.measurementLabel.SetText(fmt.Sprintf("Measure: %.3f units", m.Distance()))
	}

	state := c.Selection.State()
	if data := c.InteractionData(); data != nil {
		g.info.selectionLabel.SetText(fmt.Sprintf("Selected: %s", data.Topic))
	} else if objects, _, ok := state.Pending(); ok {
		g.info.selectionLabel.SetText(fmt.Sprintf("%d objects under the pointer", len(objects)))
	} else {
		g.info.selectionLabel.SetText("Nothing selected")
	}

	cfg := c.Config()
	vars := make([]string, 0, len(cfg.GlobalData))
	for k, v := range cfg.GlobalData {
		vars = append(vars, fmt.Sprintf("$%s = %v", k, v))
	}
	g.info.variablesLabel.SetText(strings.Join(vars, "\n"))

	if text, err := c.EditPolygons(); err == nil {
		g.info.polygonEntry.SetText(string(text))
	}
}

func (g *GUI) showPendingSelection() {
	objects, _, ok := g.controller.Selection.State().Pending()
	if !ok {
		return
	}
	options := make([]string, len(objects))
	for i, obj := range objects {
		options[i] = fmt.Sprintf("%d: %s", i, obj.Topic)
	}
	choice := widget.NewRadioGroup(options, nil)
	dialog.ShowCustomConfirm("Choose object", "Select", "Cancel", choice, func(ok bool) {
		if !ok || choice.Selected == "" {
			return
		}
		for i, o := range options {
			if o == choice.Selected {
				if _, err := g.controller.SelectObject(i); err != nil {
					dialog.ShowError(err, g.window)
				}
			}
		}
		g.updateInfo()
	}, g.window)
}

// watchConfig reloads polygons and the crosshair setting when the config file
// is edited outside the panel
func (g *GUI) watchConfig(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(500*time.Millisecond, g.logger.Named("watcher"))
	if err != nil {
		return err
	}
	if err := fw.Watch([]string{g.configPath}, func(path string) {
		if g.ownWrite(path) {
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			g.logger.Warn("ignoring invalid config", zap.Error(err))
			return
		}
		fyne.Do(func() {
			g.controller.ReloadConfig(cfg)
			g.redraw()
		})
	}); err != nil {
		fw.Close()
		return err
	}
	fw.Start(ctx)
	go func() {
		<-ctx.Done()
		fw.Close()
	}()
	return nil
}
