package deprecate

import "sync/atomic"

// Gate fires a trigger at most once. The zero value is ready to use.
//
// Every wrapper in this package owns exactly one Gate. Library authors
// deprecating a method by hand can embed one next to the method:
//
//	var fetchGate deprecate.Gate
//
//	func (c *Client) Fetch(key string) (string, error) {
//		if err := fetchGate.Do(facility, func() error {
//			return facility.Warn("Client.Fetch", "Client.Get")
//		}); err != nil {
//			return "", err
//		}
//		return c.Get(key)
//	}
//
// A Gate must not be copied after first use.
type Gate struct {
	fired atomic.Bool
}

// Do runs trigger on the first call, unless f suppresses deprecations, in
// which case trigger never runs. Concurrent first calls race on a single
// compare-and-swap, so trigger runs at most once. The trigger's error is
// returned from that one call only.
func (g *Gate) Do(f *Facility, trigger func() error) error {
	if f.Suppressed() {
		return nil
	}
	if !g.fired.CompareAndSwap(false, true) {
		return nil
	}
	return trigger()
}
