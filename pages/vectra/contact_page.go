package vectra

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vectra-e2e/browser"
	"vectra-e2e/extract"
	"vectra-e2e/models"
	"vectra-e2e/utils"

	"github.com/chromedp/chromedp"
)

var (
	ErrPhoneNotFound    = errors.New("expected phone number not found")
	ErrUnexpectedHeader = errors.New("unexpected page header")
)

type ContactPage struct {
	URL string

	// Phone is the normalized customer-service number the page must show.
	Phone string

	s   *browser.Session
	log *utils.Logger
}

func NewContactPage(s *browser.Session) *ContactPage {
	cfg := s.Config()
	return &ContactPage{
		URL:   cfg.ContactURL(),
		Phone: cfg.CustomerServicePhone,
		s:     s,
		log:   utils.NewLogger("ContactPage"),
	}
}

func (p *ContactPage) Navigate(ctx context.Context) error {
	if err := p.s.Navigate(ctx, p.URL); err != nil {
		return err
	}
	p.log.Info("Navigated to %s and the page has loaded", p.URL)
	p.s.Snap(ctx, p.log, "contact_page_loaded.png", false)
	return nil
}

// VerifyLoaded makes sure the tab is on the contact page and that the
// customer-service card has rendered.
func (p *ContactPage) VerifyLoaded(ctx context.Context) error {
	cfg := p.s.Config()
	p.log.Info("Verifying the contact page at %s", p.URL)

	if err := p.s.EnsureOnPage(ctx, p.URL, p.Navigate); err != nil {
		return err
	}
	if err := p.s.WaitForURL(ctx, p.URL, cfg.ContactURLTimeout); err != nil {
		return err
	}
	p.log.Info("Tab is on %s", p.URL)

	card := customerServiceCardSelector(p.Phone)
	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.WaitVisible(card, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("customer service card not visible: %w", err)
	}
	if err := p.s.Focus(ctx, p.log, card, chromedp.ByQuery); err != nil {
		return err
	}
	p.log.Success("Customer service card is visible, contact page content has loaded")

	p.s.SnapElement(ctx, p.log, card, "step_5_1_contact_card_focused.png", chromedp.ByQuery)
	p.s.Snap(ctx, p.log, "step_5_2_contact_page_full.png", true)
	return nil
}

func (p *ContactPage) VerifyPageHeader(ctx context.Context, expected string) error {
	cfg := p.s.Config()
	p.log.Info("Verifying the contact page header")

	var text string
	err := p.s.Run(ctx, cfg.ElementTimeout,
		chromedp.WaitVisible(pageHeaderXPath, chromedp.BySearch),
		chromedp.TextContent(pageHeaderXPath, &text, chromedp.BySearch),
	)
	if err != nil {
		return fmt.Errorf("contact page header not visible: %w", err)
	}
	if err := p.s.Focus(ctx, p.log, pageHeaderXPath, chromedp.BySearch); err != nil {
		return err
	}
	p.s.SnapElement(ctx, p.log, pageHeaderXPath, "step_6_contact_header_focused.png", chromedp.BySearch)

	if got := strings.Join(strings.Fields(extract.NormalizeSpaces(text)), " "); got != expected {
		return fmt.Errorf("%w: got %q, want %q", ErrUnexpectedHeader, got, expected)
	}
	p.log.Success("Contact page header is %q", expected)
	p.s.Snap(ctx, p.log, "step_6_contact_header.png", false)
	return nil
}

// SectionText captures the text of the contact cards section.
func (p *ContactPage) SectionText(ctx context.Context) (string, error) {
	var html string
	err := p.s.Run(ctx, p.s.Config().ElementTimeout,
		chromedp.WaitVisible(contactCardsSelector, chromedp.ByQuery),
		chromedp.OuterHTML(contactCardsSelector, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("contact cards section not visible: %w", err)
	}
	return extract.TextOf(html)
}

// FindAndVerifyPhoneNumbers logs every phone number on the contact cards
// and fails when the customer-service number is not among them.
func (p *ContactPage) FindAndVerifyPhoneNumbers(ctx context.Context) (models.PhoneNumberSet, error) {
	p.log.Info("Collecting phone numbers from the contact cards")

	text, err := p.SectionText(ctx)
	if err != nil {
		return nil, err
	}

	found := extract.ExtractPhoneNumbers(text)
	if found.Len() > 0 {
		p.log.Info("Unique 9-digit phone numbers on the page: %s", strings.Join(found.Sorted(), ", "))
	} else {
		p.log.Warn("No 9-digit phone numbers found in the contact cards")
	}

	if !found.Contains(p.Phone) {
		p.log.Error("Expected phone number %s was NOT found on the page", p.Phone)
		p.s.Snap(ctx, p.log, "step_7_phones_missing.png", true)
		return found, fmt.Errorf("%w: %s on %s", ErrPhoneNotFound, p.Phone, p.URL)
	}

	p.log.Success("Expected phone number %s is on the page", p.Phone)
	p.s.Snap(ctx, p.log, "step_7_phones_verified.png", false)
	return found, nil
}

func (p *ContactPage) ClickPhoneNumberLink(ctx context.Context) error {
	cfg := p.s.Config()
	link := customerServiceLinkSelector(p.Phone)
	linkText := extract.FormatPhoneNumber(p.Phone)

	p.log.Info("Clicking the customer service phone link")
	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.WaitVisible(link, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("phone link %q not visible: %w", linkText, err)
	}
	if err := p.s.Focus(ctx, p.log, link, chromedp.ByQuery); err != nil {
		return err
	}
	p.log.Info("Phone link %q is visible", linkText)
	p.s.SnapElement(ctx, p.log, link, "step_8_phone_link_focused.png", chromedp.ByQuery)

	if err := p.s.Run(ctx, cfg.ElementTimeout, chromedp.Click(link, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("click phone link %q: %w", linkText, err)
	}
	p.log.Success("Clicked phone link %q", linkText)
	p.s.Snap(ctx, p.log, "step_8_phone_link_clicked.png", false)
	return nil
}
