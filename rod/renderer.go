// Package rod provides a headless-Chrome screenshot renderer.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/campscout"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Screenshot viewport dimensions.
const (
	ViewportWidth  = 1200
	ViewportHeight = 800
)

// Ensure Renderer implements campscout.Renderer at compile time.
var _ campscout.Renderer = (*Renderer)(nil)

// Renderer captures page screenshots using Chrome browser automation.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewRenderer creates a new Renderer that launches a headless Chrome
// browser. Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer() (*Renderer, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Renderer{browser: browser, launcher: l}, nil
}

// Screenshot navigates to the URL and returns a PNG of the rendered
// viewport.
func (r *Renderer) Screenshot(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             ViewportWidth,
		Height:            ViewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, err
	}

	if err := page.Navigate(url); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	return page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.browser.Close()
}
