package scenario

import (
	"context"
	"time"

	"vectra-e2e/browser"
	"vectra-e2e/models"
	"vectra-e2e/pages/vectra"
	"vectra-e2e/utils"
)

// Vectra is the full www.vectra.pl walkthrough: home page, offers, menu,
// contact page and the customer-service phone number.
type Vectra struct {
	session *browser.Session
	home    *vectra.HomePage
	contact *vectra.ContactPage
	runner  *Runner
	log     *utils.Logger

	prices *models.PriceSummary
	phones models.PhoneNumberSet
}

func NewVectra(s *browser.Session) *Vectra {
	return &Vectra{
		session: s,
		home:    vectra.NewHomePage(s),
		contact: vectra.NewContactPage(s),
		runner:  NewRunner(s.Config()),
		log:     utils.NewLogger("VectraTest"),
	}
}

func (v *Vectra) Run(ctx context.Context) models.RunResult {
	run := models.RunResult{
		BaseURL:       v.home.URL,
		ExpectedPhone: v.contact.Phone,
		StartedAt:     time.Now(),
	}

	run.Steps = v.runner.Run(ctx, v.setup(), v.Steps(), v.teardown())
	run.FinishedAt = time.Now()
	run.Prices = v.prices
	run.Phones = v.phones
	return run
}

func (v *Vectra) setup() Step {
	return Step{
		Name: "Setup: open home page and accept cookies",
		Run: func(ctx context.Context) error {
			if err := v.home.NavigateAndAcceptCookies(ctx); err != nil {
				return err
			}
			v.log.Info("Setup done: on %s with cookies handled", v.home.URL)
			return nil
		},
	}
}

func (v *Vectra) teardown() Step {
	return Step{
		Name: "Teardown: close the tab",
		Run: func(context.Context) error {
			return v.session.CloseTab()
		},
	}
}

// onHome and onContact re-navigate when a previous step left the tab
// somewhere else.
func (v *Vectra) onHome(ctx context.Context) error {
	return v.session.EnsureOnPage(ctx, v.home.URL, v.home.NavigateAndAcceptCookies)
}

func (v *Vectra) onContact(ctx context.Context) error {
	return v.session.EnsureOnPage(ctx, v.contact.URL, v.contact.Navigate)
}

// Steps lists the scenario in order. Each step only assumes the tab is
// on the right page, which it checks itself.
func (v *Vectra) Steps() []Step {
	return []Step{
		{
			Name: "Step 1: home page loads",
			Run: func(ctx context.Context) error {
				if err := v.onHome(ctx); err != nil {
					return err
				}
				v.session.Snap(ctx, v.log, "step_1_home_loaded.png", true)
				return v.home.VerifyTitle(ctx, "Vectra")
			},
		},
		{
			Name: "Step 2: highest and lowest offer prices",
			Run: func(ctx context.Context) error {
				if err := v.onHome(ctx); err != nil {
					return err
				}
				summary, err := v.home.LogHighestAndLowestPrices(ctx)
				if err != nil {
					return err
				}
				v.prices = &summary
				return nil
			},
		},
		{
			Name: "Step 3: 'Internet' is unique in the menu",
			Run: func(ctx context.Context) error {
				if err := v.onHome(ctx); err != nil {
					return err
				}
				return v.home.VerifyInternetMenuItemIsUnique(ctx)
			},
		},
		{
			Name: "Step 4: last menu entry is 'Kontakt'",
			Run: func(ctx context.Context) error {
				if err := v.onHome(ctx); err != nil {
					return err
				}
				return v.home.VerifyLastMenuItemText(ctx, vectra.LastMenuItemText)
			},
		},
		{
			Name: "Step 5: open the contact page",
			Run: func(ctx context.Context) error {
				if err := v.onHome(ctx); err != nil {
					return err
				}
				if err := v.home.ClickKontaktLink(ctx); err != nil {
					return err
				}
				return v.contact.VerifyLoaded(ctx)
			},
		},
		{
			Name: "Step 6: contact page header",
			Run: func(ctx context.Context) error {
				if err := v.onContact(ctx); err != nil {
					return err
				}
				return v.contact.VerifyPageHeader(ctx, vectra.DefaultHeaderText)
			},
		},
		{
			Name: "Step 7: customer service phone number is listed",
			Run: func(ctx context.Context) error {
				if err := v.onContact(ctx); err != nil {
					return err
				}
				phones, err := v.contact.FindAndVerifyPhoneNumbers(ctx)
				v.phones = phones
				return err
			},
		},
		{
			Name: "Step 8: click the customer service phone link",
			Run: func(ctx context.Context) error {
				if err := v.onContact(ctx); err != nil {
					return err
				}
				return v.contact.ClickPhoneNumberLink(ctx)
			},
		},
	}
}
