package vectra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerServiceSelectors(t *testing.T) {
	assert.Equal(t, `#card-number-2:has(a[href="tel:+48600500400"])`, customerServiceCardSelector("600500400"))
	assert.Equal(t, `a.button.btn-outlined[href="tel:+48600500400"]`, customerServiceLinkSelector("600500400"))
}
