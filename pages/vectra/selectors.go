package vectra

import "fmt"

// XPath selectors are resolved with chromedp.BySearch, CSS with ByQuery.
const (
	acceptCookiesButtonXPath = `//*[normalize-space(text())='Akceptuj wszystkie']`
	cookieBannerXPath        = `//*[@id='cookiescript_injected_wrapper']`
	offersContainerXPath     = `//div[contains(@class, 'mainPrice')]`
	priceSelector            = `.mainPrice`
	internetMenuItemXPath    = `//span[normalize-space(text())='Internet' and contains(@class, 'firstMenuItem')]`
	zeroLevelMenuItemsXPath  = `//li[contains(@class, "menu-level-one-item")]/a/span[contains(@class, "firstMenuItem")]`
	lastMenuItemXPath        = `(//li[contains(@class, "menu-level-one-item")]/a/span[contains(@class, "firstMenuItem")])[last()]`
	kontaktLinkXPath         = `//span[normalize-space(text())='Kontakt' and contains(@class, 'firstMenuItem')]`

	contactCardsSelector = `section[data-widget="(/kontakt) - formy kontaktu - boksy"]`
	pageHeaderXPath      = `//h1[contains(normalize-space(.), 'Kontakt z firmą Vectra')]`
)

const cookieBannerHiddenJS = `(() => {
	const el = document.getElementById('cookiescript_injected_wrapper');
	return !el || !(el.offsetWidth || el.offsetHeight || el.getClientRects().length);
})()`

const (
	DefaultHeaderText = "Kontakt z firmą Vectra"
	LastMenuItemText  = "Kontakt"
)

// customerServiceCardSelector matches the contact card that links to phone.
func customerServiceCardSelector(phone string) string {
	return fmt.Sprintf(`#card-number-2:has(a[href="tel:+48%s"])`, phone)
}

func customerServiceLinkSelector(phone string) string {
	return fmt.Sprintf(`a.button.btn-outlined[href="tel:+48%s"]`, phone)
}
