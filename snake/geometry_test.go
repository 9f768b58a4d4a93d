package snake

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewGeometrySideAndLimitLengths(t *testing.T) {
	for _, side := range []int{1, 2, 3, 10, 11, 20, 100} {
		geo, err := NewGeometry(side * side)
		if err != nil {
			t.Fatalf("NewGeometry(%d): %v", side*side, err)
		}
		if geo.Side() != side {
			t.Errorf("side for %d cells: expected %d, got %d", side*side, side, geo.Side())
		}
		for _, d := range Directions {
			if got := len(geo.Limits(d)); got != side {
				t.Errorf("%d cells, %s limits: expected %d entries, got %d", side*side, d, side, got)
			}
		}
	}
}

func TestGeometryLimitValues(t *testing.T) {
	geo, err := NewGeometry(121)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dir  Direction
		want []int
	}{
		{Down, []int{122, 123, 124, 125, 126, 127, 128, 129, 130, 131, 132}},
		{Right, []int{12, 23, 34, 45, 56, 67, 78, 89, 100, 111, 122}},
		{Left, []int{11, 22, 33, 44, 55, 66, 77, 88, 99, 110, 121}},
		{Up, []int{-1, -2, -3, -4, -5, -6, -7, -8, -9, -10, -11}},
	}
	for _, tt := range tests {
		if got := geo.Limits(tt.dir); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s limits: expected %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestNewGeometryRejectsNonSquare(t *testing.T) {
	for _, n := range []int{105, 0, -4, 2, 120, 122} {
		geo, err := NewGeometry(n)
		if geo != nil {
			t.Errorf("NewGeometry(%d): expected nil geometry", n)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("NewGeometry(%d): expected *ConfigError, got %v", n, err)
		}
	}
}

func TestGeometryLimitsAreCopies(t *testing.T) {
	geo, _ := NewGeometry(16)
	l := geo.Limits(Down)
	l[0] = 999
	if geo.IsLimit(Down, 999) {
		t.Error("mutating the returned slice changed the geometry")
	}
	if !geo.IsLimit(Down, 17) {
		t.Error("expected 17 to be a Down limit on a 4x4 board")
	}
}

func TestGeometryArithmetic(t *testing.T) {
	geo, _ := NewGeometry(121)

	if got := geo.Next(3, Down); got != 14 {
		t.Errorf("Next(3, Down): expected 14, got %d", got)
	}
	if got := geo.Next(14, Up); got != 3 {
		t.Errorf("Next(14, Up): expected 3, got %d", got)
	}
	if got := geo.Next(5, Left); got != 4 {
		t.Errorf("Next(5, Left): expected 4, got %d", got)
	}

	row, col := geo.RowCol(14)
	if row != 1 || col != 2 {
		t.Errorf("RowCol(14): expected (1,2), got (%d,%d)", row, col)
	}
	if got := geo.Index(row, col); got != 14 {
		t.Errorf("Index(1,2): expected 14, got %d", got)
	}

	for _, idx := range []int{0, -1, 122} {
		if geo.InRange(idx) {
			t.Errorf("InRange(%d): expected false", idx)
		}
	}
	if !geo.InRange(1) || !geo.InRange(121) {
		t.Error("InRange: expected board corners to be in range")
	}
}
