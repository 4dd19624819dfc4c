package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := P(2, 3)

	if got := p.Add(1, -1); got != P(3, 2) {
		t.Errorf("Add(1, -1) = %v, expected (3,2)", got)
	}
	if got := p.Sub(P(5, 5)); got != P(-3, -2) {
		t.Errorf("Sub((5,5)) = %v, expected (-3,-2)", got)
	}
	if p.String() != "(2,3)" {
		t.Errorf("String() = %q, expected \"(2,3)\"", p.String())
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point
		expected int
	}{
		{"same point", P(3, 3), P(3, 3), 0},
		{"x dominant", P(2, 2), P(7, 5), 5},
		{"y dominant", P(0, 0), P(1, 6), 6},
		{"negative direction", P(9, 9), P(0, 4), 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Chebyshev(tc.b); got != tc.expected {
				t.Errorf("Chebyshev() = %d, expected %d", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Chebyshev(tc.a); got != tc.expected {
				t.Errorf("Chebyshev() (reversed) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		size     int
		expected Point
	}{
		{10, P(5, 5)},
		{9, P(4, 4)},
		{1, P(0, 0)},
	}

	for _, tc := range tests {
		if got := Center(tc.size); got != tc.expected {
			t.Errorf("Center(%d) = %v, expected %v", tc.size, got, tc.expected)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(-7) != -1 {
		t.Error("Sign(-7) should be -1")
	}
	if Sign(0) != 0 {
		t.Error("Sign(0) should be 0")
	}
	if Sign(4) != 1 {
		t.Error("Sign(4) should be 1")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned the wrong value")
	}
}
