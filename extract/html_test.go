package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const offersFixture = `
<section class="offers">
	<div class="offer"><div class="mainPrice">99,99 <span>zł/mies.</span></div></div>
	<div class="offer"><div class="mainPrice">45,50&nbsp;zł</div></div>
	<div class="offer"><div class="mainPrice">200 zł</div></div>
	<div class="offer"><div class="oldPrice">300 zł</div></div>
</section>`

const contactFixture = `
<section data-widget="(/kontakt) - formy kontaktu - boksy">
	<div id="card-number-1"><h3>Sprzedaż</h3><a href="tel:+48222333444">+48 222 333 444</a></div>
	<div id="card-number-2"><h3>Obsługa klienta</h3><a class="button btn-outlined" href="tel:+48600500400">600&nbsp;500&nbsp;400</a></div>
</section>`

func TestTextsBySelectorFeedsPriceAggregation(t *testing.T) {
	texts, err := TextsBySelector(offersFixture, ".mainPrice")
	require.NoError(t, err)
	require.Len(t, texts, 3)
	assert.Contains(t, texts[0], "99,99")

	summary, err := AggregatePrices(texts)
	require.NoError(t, err)
	assert.Equal(t, 200.0, summary.Highest)
	assert.Equal(t, 45.5, summary.Lowest)
}

func TestTextsBySelectorNoMatches(t *testing.T) {
	texts, err := TextsBySelector(offersFixture, ".missing")
	require.NoError(t, err)
	assert.Empty(t, texts)

	_, err = AggregatePrices(texts)
	assert.ErrorIs(t, err, ErrNoValidPrices)
}

func TestTextOfContactSection(t *testing.T) {
	text, err := TextOf(contactFixture)
	require.NoError(t, err)

	phones := ExtractPhoneNumbers(text)
	assert.Equal(t, []string{"222333444", "600500400"}, phones.Sorted())
	assert.True(t, ContainsPhoneNumber(phones, "600500400"))
}
