// Package vectra holds page objects for www.vectra.pl. Each page object
// wraps selectors and interactions; text parsing is delegated to extract.
package vectra

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vectra-e2e/browser"
	"vectra-e2e/extract"
	"vectra-e2e/models"
	"vectra-e2e/utils"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

var (
	ErrMenuItemNotUnique  = errors.New("menu item is not unique")
	ErrUnexpectedMenuItem = errors.New("unexpected menu item")
)

type HomePage struct {
	URL string

	s   *browser.Session
	log *utils.Logger
}

func NewHomePage(s *browser.Session) *HomePage {
	return &HomePage{
		URL: s.Config().BaseURL,
		s:   s,
		log: utils.NewLogger("HomePage"),
	}
}

func (p *HomePage) Navigate(ctx context.Context) error {
	if err := p.s.Navigate(ctx, p.URL); err != nil {
		return err
	}
	p.log.Info("Navigated to %s and the page has loaded", p.URL)
	p.s.Snap(ctx, p.log, "home_navigated.png", false)
	return nil
}

// NavigateAndAcceptCookies is what a step uses to recover when the tab has
// drifted away from the home page.
func (p *HomePage) NavigateAndAcceptCookies(ctx context.Context) error {
	if err := p.Navigate(ctx); err != nil {
		return err
	}
	return p.AcceptCookies(ctx)
}

// AcceptCookies dismisses the cookie consent banner. A banner that never
// shows up is not an error: consent may already be stored.
func (p *HomePage) AcceptCookies(ctx context.Context) error {
	cfg := p.s.Config()
	p.log.Info("Trying to accept cookies")

	err := p.s.Run(ctx, cfg.CookieTimeout,
		chromedp.WaitVisible(cookieBannerXPath, chromedp.BySearch),
		chromedp.WaitVisible(acceptCookiesButtonXPath, chromedp.BySearch),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.log.Info("Cookie banner or accept button did not show up in %v. Assuming consent is already given.", cfg.CookieTimeout)
			return nil
		}
		return p.cookieFailure(ctx, err)
	}
	p.log.Info("Cookie banner and accept button are visible")

	if err := p.s.Focus(ctx, p.log, acceptCookiesButtonXPath, chromedp.BySearch); err != nil {
		return p.cookieFailure(ctx, err)
	}
	p.s.SnapElement(ctx, p.log, acceptCookiesButtonXPath, "cookies_accept_button_focused.png", chromedp.BySearch)

	// The banner is either hidden or removed from the DOM after the click.
	var hidden bool
	err = p.s.Run(ctx, cfg.ElementTimeout,
		chromedp.Click(acceptCookiesButtonXPath, chromedp.BySearch),
		chromedp.Poll(cookieBannerHiddenJS, &hidden, chromedp.WithPollingInterval(200*time.Millisecond)),
	)
	if err != nil {
		return p.cookieFailure(ctx, err)
	}
	p.log.Success("Clicked 'Akceptuj wszystkie', cookie banner is gone")
	p.s.Snap(ctx, p.log, "cookies_accepted.png", false)
	return nil
}

// cookieFailure logs an unexpected cookie banner error and keeps going;
// the banner does not block the scenario.
func (p *HomePage) cookieFailure(ctx context.Context, err error) error {
	p.log.Warn("Unexpected error while accepting cookies: %v", err)
	p.s.Snap(ctx, p.log, "cookie_acceptance_error_debug.png", true)
	return nil
}

// VerifyTitle checks that the document title mentions want.
func (p *HomePage) VerifyTitle(ctx context.Context, want string) error {
	title, err := p.s.Title(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(title, want) {
		return fmt.Errorf("page title %q does not contain %q", title, want)
	}
	p.log.Info("Page title verified: %q", title)
	return nil
}

// PriceTexts returns the text of every offer price node on the page.
func (p *HomePage) PriceTexts(ctx context.Context) ([]string, error) {
	var html string
	err := p.s.Run(ctx, p.s.Config().ElementTimeout,
		chromedp.WaitVisible(offersContainerXPath, chromedp.BySearch),
		chromedp.OuterHTML("body", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("offer prices not visible: %w", err)
	}
	return extract.TextsBySelector(html, priceSelector)
}

// LogHighestAndLowestPrices logs every offer price plus the extremes.
func (p *HomePage) LogHighestAndLowestPrices(ctx context.Context) (models.PriceSummary, error) {
	p.log.Info("Looking for the highest and lowest offer prices")

	texts, err := p.PriceTexts(ctx)
	if err != nil {
		return models.PriceSummary{}, err
	}
	if len(texts) == 0 {
		p.log.Warn("No %q elements found, cannot log prices", priceSelector)
	}

	summary, err := extract.AggregatePrices(texts)
	for _, skipped := range summary.Skipped {
		p.log.Warn("Skipping price text %q: %s", skipped.Text, skipped.Reason)
	}
	if err != nil {
		return summary, err
	}

	for _, price := range summary.Samples {
		p.log.Info("Found price: %.2f", price)
	}
	p.log.Info("All prices found: %v", summary.Samples)
	p.log.Success("Highest price: %.2f", summary.Highest)
	p.log.Success("Lowest price: %.2f", summary.Lowest)

	p.s.Snap(ctx, p.log, "step_2_offer_prices.png", false)
	return summary, nil
}

// VerifyInternetMenuItemIsUnique checks there is exactly one "Internet"
// entry in the top-level menu.
func (p *HomePage) VerifyInternetMenuItemIsUnique(ctx context.Context) error {
	p.log.Info("Checking that 'Internet' appears once in the top-level menu")

	var nodes []*cdp.Node
	err := p.s.Run(ctx, p.s.Config().ElementTimeout,
		chromedp.Nodes(internetMenuItemXPath, &nodes, chromedp.BySearch),
	)
	if err != nil {
		return fmt.Errorf("find 'Internet' menu item: %w", err)
	}
	if len(nodes) != 1 {
		return fmt.Errorf("%w: found %d 'Internet' entries", ErrMenuItemNotUnique, len(nodes))
	}
	p.log.Success("Found exactly one 'Internet' entry in the top-level menu")

	if err := p.s.Focus(ctx, p.log, internetMenuItemXPath, chromedp.BySearch); err != nil {
		return fmt.Errorf("focus 'Internet' menu item: %w", err)
	}
	p.s.SnapElement(ctx, p.log, internetMenuItemXPath, "step_3_internet_menu_focused.png", chromedp.BySearch)
	p.s.Snap(ctx, p.log, "step_3_internet_menu_verified.png", false)
	return nil
}

// VerifyLastMenuItemText checks the text of the last top-level menu entry.
func (p *HomePage) VerifyLastMenuItemText(ctx context.Context, expected string) error {
	p.log.Info("Checking that the last top-level menu entry is %q", expected)
	cfg := p.s.Config()

	var nodes []*cdp.Node
	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.Nodes(zeroLevelMenuItemsXPath, &nodes, chromedp.BySearch)); err != nil {
		return fmt.Errorf("%w: no top-level menu entries: %v", ErrUnexpectedMenuItem, err)
	}
	p.log.Info("Top-level menu has %d entries", len(nodes))

	var text string
	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.TextContent(lastMenuItemXPath, &text, chromedp.BySearch)); err != nil {
		return fmt.Errorf("read last menu entry: %w", err)
	}
	if got := strings.TrimSpace(text); got != expected {
		return fmt.Errorf("%w: last entry is %q, want %q", ErrUnexpectedMenuItem, got, expected)
	}
	p.log.Success("Last top-level menu entry is %q", expected)

	if err := p.s.Focus(ctx, p.log, lastMenuItemXPath, chromedp.BySearch); err != nil {
		return fmt.Errorf("focus last menu entry: %w", err)
	}
	p.s.SnapElement(ctx, p.log, lastMenuItemXPath, "step_4_last_menu_item_focused.png", chromedp.BySearch)
	p.s.Snap(ctx, p.log, "step_4_last_menu_item_verified.png", false)
	return nil
}

func (p *HomePage) ClickKontaktLink(ctx context.Context) error {
	p.log.Info("Clicking the 'Kontakt' link")
	cfg := p.s.Config()

	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.WaitVisible(kontaktLinkXPath, chromedp.BySearch)); err != nil {
		return fmt.Errorf("'Kontakt' link not visible: %w", err)
	}
	if err := p.s.Focus(ctx, p.log, kontaktLinkXPath, chromedp.BySearch); err != nil {
		return err
	}
	p.s.SnapElement(ctx, p.log, kontaktLinkXPath, "step_5_kontakt_link_focused.png", chromedp.BySearch)

	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.Click(kontaktLinkXPath, chromedp.BySearch)); err != nil {
		return fmt.Errorf("click 'Kontakt' link: %w", err)
	}
	p.log.Success("Clicked the 'Kontakt' link")
	p.s.Snap(ctx, p.log, "step_5_kontakt_link_clicked.png", false)
	return nil
}
