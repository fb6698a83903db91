package domain

// DiscountedPrice applies a percent discount to a course price, flooring to
// whole units. Percent is clamped to the voucher range elsewhere; here it is
// trusted to be within [0, 100].
func DiscountedPrice(price int64, percent int) int64 {
	return price - price*int64(percent)/100
}
