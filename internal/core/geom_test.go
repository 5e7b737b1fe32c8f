package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-pixel overlap",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewBox(-60, -60, 50, 50),
			b:        NewBox(-20, -20, 50, 50),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if b.CenterX() != 15 {
		t.Errorf("CenterX() = %v, expected 15", b.CenterX())
	}
}

func TestNewBoxPanicsOnInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h float64
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBox(%v, %v) should panic", tc.w, tc.h)
				}
			}()
			NewBox(0, 0, tc.w, tc.h)
		})
	}
}

func TestBoxClamp(t *testing.T) {
	b := NewBox(-10, 700, 50, 50)

	clamped := b.ClampX(800)
	if clamped.X != 0 {
		t.Errorf("ClampX left: X = %v, expected 0", clamped.X)
	}

	clamped = NewBox(790, 0, 50, 50).ClampX(800)
	if clamped.Right() != 800 {
		t.Errorf("ClampX right: Right() = %v, expected 800", clamped.Right())
	}

	clamped = b.ClampY(600)
	if clamped.Bottom() != 600 {
		t.Errorf("ClampY bottom: Bottom() = %v, expected 600", clamped.Bottom())
	}

	clamped = NewBox(0, -3, 50, 50).ClampY(600)
	if clamped.Y != 0 {
		t.Errorf("ClampY top: Y = %v, expected 0", clamped.Y)
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(1, 2, 3, 4).Translate(5, -7)
	if b.X != 6 || b.Y != -5 {
		t.Errorf("Translate() = (%v, %v), expected (6, -5)", b.X, b.Y)
	}
	if b.W != 3 || b.H != 4 {
		t.Error("Translate() should not change size")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
