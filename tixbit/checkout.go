package tixbit

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	minCheckoutQty = 1
	maxCheckoutQty = 8
)

// CheckoutLink builds the checkout URL for a listing. Pure string work, no
// network call; quantity is clamped to the purchasable range.
func (c *Client) CheckoutLink(listingID string, quantity int) CheckoutLink {
	if quantity < minCheckoutQty {
		quantity = minCheckoutQty
	}
	if quantity > maxCheckoutQty {
		quantity = maxCheckoutQty
	}
	q := url.Values{}
	q.Set("listing", listingID)
	q.Set("quantity", fmt.Sprintf("%d", quantity))
	return CheckoutLink{
		URL:       c.baseURL + "/checkout/process?" + q.Encode(),
		ListingID: listingID,
		Quantity:  quantity,
	}
}

// EventURL builds the public event page URL. Inputs containing a path
// separator are treated as already-qualified slugs and pass through; bare
// identifiers are normalized first.
func (c *Client) EventURL(slugOrID string) string {
	if strings.Contains(slugOrID, "/") {
		return c.baseURL + "/events/" + slugOrID
	}
	return c.baseURL + "/events/" + NormalizeEventID(slugOrID)
}
