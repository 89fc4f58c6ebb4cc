// Package converter turns raw URL path segments into typed values.
//
// Each converter is configured once, when the route that uses it is
// registered, and is immutable afterwards.
// Conversion never fails with an error: input that does not match the
// converter's grammar or constraints is reported with a false second return
// value so that a router can go on to try another route.
//
//	c, err := converter.NewInt(converter.Digits(4), converter.MinInt(1900))
//	if err != nil {
//		…
//	}
//	year, ok := c.Parse("2017")
//
// Configuration errors wrap ErrConfig.
package converter // import "code.soquee.net/convmux/converter"
