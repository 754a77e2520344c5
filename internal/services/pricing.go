package services

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// PricingContext carries the economic parameters for exactly one use of the
// calculator. Checkout captures one from live settings and snapshots the
// delivery charge and driver commission onto the order; settlement builds a
// fresh one so the seller tax rate is read live.
type PricingContext struct {
	BuyerTaxPercentage    decimal.Decimal
	SellerTaxPercentage   decimal.Decimal
	DeliveryCharge        decimal.Decimal
	DriverCommissionFixed decimal.Decimal
}

// CheckoutQuote is the buyer-facing price breakdown for a cart.
type CheckoutQuote struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// QuoteCheckout prices a cart subtotal for the buyer. The tax line is the
// buyer tax applied to the subtotal; delivery is a flat fee.
func QuoteCheckout(subtotal decimal.Decimal, pc PricingContext) CheckoutQuote {
	subtotal = RoundMoney(subtotal)
	tax := RoundMoney(subtotal.Mul(pc.BuyerTaxPercentage).Div(oneHundred))
	deliveryFee := RoundMoney(pc.DeliveryCharge)
	total := RoundMoney(subtotal.Add(tax).Add(deliveryFee))
	return CheckoutQuote{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       total,
	}
}

// Settlement is the split of a paid order's value between the parties.
type Settlement struct {
	SellerEarnings   decimal.Decimal
	SellerTax        decimal.Decimal
	DriverCommission decimal.Decimal
}

// SettleOrder splits a paid order. The delivery charge and driver commission
// come from the order row where checkout snapshotted them; only the seller
// tax rate is taken from the context.
//
// The seller's share is derived from the buyer-paid total, so the buyer tax
// collected at checkout stays inside it while the seller tax is charged on
// the subtotal and netted out separately. Finance reconciles against this
// exact subtraction order; do not restructure it.
func SettleOrder(subtotal, total, deliveryCharge, driverCommission decimal.Decimal, pc PricingContext) Settlement {
	sellerTax := RoundMoney(subtotal.Mul(pc.SellerTaxPercentage).Div(oneHundred))
	sellerEarnings := RoundMoney(total.Sub(deliveryCharge).Sub(driverCommission).Sub(sellerTax))
	return Settlement{
		SellerEarnings:   sellerEarnings,
		SellerTax:        sellerTax,
		DriverCommission: RoundMoney(driverCommission),
	}
}
