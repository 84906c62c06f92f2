// Package browser owns the Chrome process and the single tab a scenario
// runs in. Page objects drive the tab through Session.Run.
package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"vectra-e2e/config"
	"vectra-e2e/utils"

	"github.com/chromedp/chromedp"
)

type Session struct {
	cfg *config.Config
	log *utils.Logger

	allocCtx    context.Context
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
}

// NewSession launches Chrome and opens the tab every page object shares,
// like a Playwright serial suite reusing one page.
func NewSession(cfg *config.Config) (*Session, error) {
	log := utils.NewLogger("Browser")
	log.Info("Launching Chrome (headless=%v)...", cfg.Headless)

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.ChromeOpts(utils.BrowserOptions{
			Headless: cfg.Headless,
			Width:    cfg.WindowWidth,
			Height:   cfg.WindowHeight,
			ExecPath: cfg.ChromePath,
		})...,
	)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	// The first Run starts the browser; surface launch failures here rather
	// than in the first step.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("start chrome: %w", err)
	}

	if err := os.MkdirAll(cfg.SnapshotDir, 0755); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("could not create snapshot dir: %w", err)
	}

	log.Success("Browser ready")
	return &Session{
		cfg:         cfg,
		log:         log,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
	}, nil
}

// CloseTab closes the shared tab but keeps Chrome running.
func (s *Session) CloseTab() error {
	s.log.Info("Closing tab...")
	if err := chromedp.Cancel(s.tabCtx); err != nil {
		return fmt.Errorf("close tab: %w", err)
	}
	return nil
}

func (s *Session) Close() {
	s.log.Info("Closing browser...")
	s.tabCancel()
	s.allocCancel()
}

func (s *Session) Config() *config.Config {
	return s.cfg
}

// Run executes actions in the shared tab. It gives up after timeout or when
// ctx is cancelled, whichever comes first.
func (s *Session) Run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.tabCtx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if s.cfg.SlowMo > 0 {
		actions = append([]chromedp.Action{utils.SlowMo(s.cfg.SlowMo)}, actions...)
	}
	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and waits for the document body.
func (s *Session) Navigate(ctx context.Context, url string) error {
	s.log.Info("Navigating to %s", url)
	err := s.Run(ctx, s.cfg.NavigationTimeout,
		chromedp.Navigate(url),
		utils.HideWebDriver(),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *Session) CurrentURL(ctx context.Context) (string, error) {
	var loc string
	if err := s.Run(ctx, s.cfg.ElementTimeout, chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("read location: %w", err)
	}
	return loc, nil
}

func (s *Session) Title(ctx context.Context) (string, error) {
	var title string
	if err := s.Run(ctx, s.cfg.ElementTimeout, chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("read title: %w", err)
	}
	return title, nil
}

// EnsureOnPage re-navigates only when the tab has drifted away from
// expectedURL.
func (s *Session) EnsureOnPage(ctx context.Context, expectedURL string, navigate func(context.Context) error) error {
	_, err := EnsureOnPage(ctx, s, s.log, expectedURL, navigate)
	return err
}

func (s *Session) WaitForURL(ctx context.Context, expectedURL string, timeout time.Duration) error {
	return WaitForURL(ctx, s, expectedURL, timeout, 250*time.Millisecond)
}

// Focus focuses the first node matching sel. Spans and headings cannot take
// focus in Chrome; for those it scrolls the node into view instead and only
// logs, the way Playwright's focus() tolerates them.
func (s *Session) Focus(ctx context.Context, log *utils.Logger, sel interface{}, opts ...chromedp.QueryOption) error {
	err := s.Run(ctx, s.cfg.ElementTimeout, chromedp.Focus(sel, opts...))
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return err
	}
	log.Info("Element %v cannot take focus (%v), scrolling it into view", sel, err)
	if err := s.Run(ctx, s.cfg.ElementTimeout, chromedp.ScrollIntoView(sel, opts...)); err != nil {
		return fmt.Errorf("scroll %v into view: %w", sel, err)
	}
	return nil
}

// Screenshot writes a PNG of the viewport, or of the whole page when
// fullPage is set, under the snapshot dir and returns its path.
func (s *Session) Screenshot(ctx context.Context, name string, fullPage bool) (string, error) {
	var buf []byte
	var action chromedp.Action = chromedp.CaptureScreenshot(&buf)
	if fullPage {
		action = chromedp.FullScreenshot(&buf, 100)
	}
	if err := s.Run(ctx, s.cfg.ElementTimeout, action); err != nil {
		return "", fmt.Errorf("screenshot %s: %w", name, err)
	}
	return s.writeSnapshot(name, buf)
}

// ElementScreenshot captures the first node matching sel.
func (s *Session) ElementScreenshot(ctx context.Context, sel interface{}, name string, opts ...chromedp.QueryOption) (string, error) {
	var buf []byte
	if err := s.Run(ctx, s.cfg.ElementTimeout, chromedp.Screenshot(sel, &buf, opts...)); err != nil {
		return "", fmt.Errorf("element screenshot %s: %w", name, err)
	}
	return s.writeSnapshot(name, buf)
}

// Snap takes a screenshot and only logs a failure. Screenshots are
// diagnostics; they never fail a step.
func (s *Session) Snap(ctx context.Context, log *utils.Logger, name string, fullPage bool) {
	path, err := s.Screenshot(ctx, name, fullPage)
	if err != nil {
		log.Warn("Could not take screenshot: %v", err)
		return
	}
	log.Info("Screenshot saved: %s", path)
}

// SnapElement is Snap for a single element.
func (s *Session) SnapElement(ctx context.Context, log *utils.Logger, sel interface{}, name string, opts ...chromedp.QueryOption) {
	path, err := s.ElementScreenshot(ctx, sel, name, opts...)
	if err != nil {
		log.Warn("Could not take element screenshot: %v", err)
		return
	}
	log.Info("Element screenshot saved: %s", path)
}

func (s *Session) writeSnapshot(name string, buf []byte) (string, error) {
	path := filepath.Join(s.cfg.SnapshotDir, name)
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
