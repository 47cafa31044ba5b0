package dragon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// cmpAngles compares angles by unit tag and magnitude, within a small
// tolerance.
func cmpAngles() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(a, b Angle) bool {
			if a.Unit() != b.Unit() {
				return false
			}
			const tolerance = 1e-9
			d := a.Value() - b.Value()
			return d < tolerance && d > -tolerance
		}),
	}
}

// cmpColors compares colors channel-wise within a small tolerance.
func cmpColors() []cmp.Option {
	return []cmp.Option{cmpopts.EquateApprox(0, 1e-9)}
}
