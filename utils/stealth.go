package utils

import (
	"context"

	"github.com/chromedp/chromedp"
)

// desktopChromeUA matches the desktop Chrome profile the suite targets.
const desktopChromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// BrowserOptions describes how Chrome is launched for a run.
type BrowserOptions struct {
	Headless  bool
	Width     int
	Height    int
	UserAgent string
	// ExecPath overrides the Chrome binary chromedp would find on its own.
	ExecPath string
}

// ChromeOpts returns allocator options for a desktop-sized Chrome with the
// automation banner and navigator.webdriver hint turned off. The cookie
// banner on the site behaves differently for flagged automation.
func ChromeOpts(o BrowserOptions) []chromedp.ExecAllocatorOption {
	ua := o.UserAgent
	if ua == "" {
		ua = desktopChromeUA
	}
	width, height := o.Width, o.Height
	if width <= 0 || height <= 0 {
		width, height = 1920, 1080
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(width, height),
		chromedp.UserAgent(ua),
	}

	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}

	if o.Headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

// HideWebDriver clears navigator.webdriver on the current document.
func HideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return chromedp.Evaluate(`Object.defineProperty(navigator, 'webdriver', { get: () => undefined });`, nil).Do(ctx)
	})
}
