package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/measurekit/internal/config"
	"github.com/philipparndt/measurekit/internal/export"
	"github.com/philipparndt/measurekit/internal/logging"
	"github.com/philipparndt/measurekit/internal/measurement"
	"github.com/philipparndt/measurekit/internal/session"
	"github.com/philipparndt/measurekit/pkg/compositor"
	"github.com/philipparndt/measurekit/pkg/viewer"
	"go.uber.org/zap"
)

type App struct {
	window  fyne.Window
	cfg     *config.Config
	log     *zap.Logger
	path    string
	session *session.Controller
	view    *viewer.AnnotationView
	status  *widget.Label
	save    *widget.Button
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync(log)

	a := app.New()
	w := a.NewWindow("measurekit - Measurement Editor")

	appInstance := &App{
		window: w,
		cfg:    cfg,
		log:    log,
	}

	// Check if file was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.SetOnClosed(appInstance.closeSession)
	w.Resize(fyne.NewSize(float32(cfg.GUI.Width), float32(cfg.GUI.Height)))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to measurekit")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Image' to annotate a product photo")

	openButton := widget.NewButton("Open Image", func() {
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
	data, err := os.ReadFile(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to read image: %w", err), a.window)
		return
	}

	s, err := session.Open(data,
		session.WithName(filepath.Base(filename)),
		session.WithLogger(a.log),
		session.WithRenderOptions(compositor.Options{
			Background: a.cfg.BackgroundColor(),
			Quality:    a.cfg.Render.Quality,
		}))
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	src, err := s.Source()
	if err != nil {
		s.Close()
		dialog.ShowError(err, a.window)
		return
	}

	a.closeSession()
	a.path = filename
	a.session = s
	a.view = viewer.NewAnnotationView(s, src, a.log)
	a.setupMainUI()
}

func (a *App) closeSession() {
	if a.session != nil {
		a.session.Close()
		a.session = nil
	}
}

func (a *App) setupMainUI() {
	a.status = widget.NewLabel("")
	a.status.Wrapping = fyne.TextWrapWord

	panel := container.NewVBox(
		widget.NewLabel("Measurements:"),
		widget.NewSeparator(),
	)

	snapshot := a.session.Snapshot()
	for _, kind := range measurement.Kinds {
		panel.Add(a.measurementControls(kind, snapshot.Get(kind)))
	}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Check a measurement to show it\n" +
			"• Drag the round handles to move an end\n" +
			"• Drag the line or its label to move it\n" +
			"• Ends snap level or plumb near the other end",
	)
	instructions.Wrapping = fyne.TextWrapWord

	a.save = widget.NewButton("Save JPEG", a.saveImage)
	a.save.Importance = widget.HighImportance

	openButton := widget.NewButton("Open Image", func() {
		a.showFileDialog()
	})

	panel.Add(widget.NewSeparator())
	panel.Add(instructions)
	panel.Add(widget.NewSeparator())
	panel.Add(a.save)
	panel.Add(openButton)
	panel.Add(a.status)

	panelScroll := container.NewVScroll(panel)
	panelScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,         // top
		nil,         // bottom
		nil,         // left
		panelScroll, // right
		a.view,      // center
	)

	a.window.SetContent(content)
}

// measurementControls returns the toggle and value entry of one kind
func (a *App) measurementControls(kind measurement.Kind, m measurement.Measurement) fyne.CanvasObject {
	check := widget.NewCheck(kind.Label(), func(checked bool) {
		if err := a.session.SetActive(kind, checked); err != nil {
			a.setStatus(err.Error())
			return
		}
		a.view.Refresh()
	})
	check.SetChecked(m.Active)

	entry := widget.NewEntry()
	entry.SetPlaceHolder("e.g. 120 cm")
	entry.SetText(m.Value)
	entry.OnChanged = func(text string) {
		if err := a.session.SetValue(kind, text); err != nil {
			a.setStatus(err.Error())
			return
		}
		a.view.Refresh()
	}

	return container.NewVBox(check, entry)
}

// saveImage composites on a worker goroutine and writes next to the source
func (a *App) saveImage() {
	s := a.session
	output, err := export.ResolveOutput(a.path, "", a.cfg.Output.Suffix)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.save.Disable()
	a.setStatus("Saving...")

	go func() {
		_, err := s.SaveTo(context.Background(), export.FileSink{}, output)

		fyne.Do(func() {
			a.save.Enable()
			if err != nil {
				a.setStatus("")
				dialog.ShowError(err, a.window)
				return
			}
			a.setStatus(fmt.Sprintf("Saved %s", filepath.Base(output)))
		})
	}()
}

func (a *App) setStatus(text string) {
	if a.status != nil {
		a.status.SetText(text)
	}
}
