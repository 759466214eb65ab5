package seed

import (
	"strings"
	"testing"

	"github.com/jmylchreest/voronoi/internal/colour"
	"github.com/jmylchreest/voronoi/internal/raster"
)

// sequence is a Source that replays fixed values.
type sequence struct {
	values []int
	next   int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func TestGenerate(t *testing.T) {
	src := &sequence{values: []int{10, 20, 30, 40, 50, 60}}
	set := Generate(src, 3, 100, 100)

	want := []raster.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60}}
	if len(set) != len(want) {
		t.Fatalf("len(Generate()) = %d, want %d", len(set), len(want))
	}
	for i, p := range want {
		if set[i].Point != p {
			t.Errorf("seed %d = %+v, want %+v", i, set[i].Point, p)
		}
	}
}

func TestGenerateRedrawsZero(t *testing.T) {
	src := &sequence{values: []int{0, 0, 7, 0, 9}}
	set := Generate(src, 1, 100, 100)

	if got := set[0].Point; got != (raster.Point{X: 7, Y: 9}) {
		t.Errorf("Generate() = %+v, want {7 9}", got)
	}
}

func TestGenerateWithinBounds(t *testing.T) {
	set := Generate(NewSource(42), 500, 1080, 720)
	for i, s := range set {
		if s.X <= 0 || int(s.X) >= 1080 || s.Y <= 0 || int(s.Y) >= 720 {
			t.Fatalf("seed %d = %+v outside (0,1080)x(0,720)", i, s.Point)
		}
	}
}

func TestNewSourceReproducible(t *testing.T) {
	a := Generate(NewSource(7), 10, 1080, 720)
	b := Generate(NewSource(7), 10, 1080, 720)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seed %d differs between runs with the same value: %+v != %+v", i, a[i], b[i])
		}
	}
}

func TestPointToColor(t *testing.T) {
	tests := []struct {
		name string
		p    raster.Point
		want colour.Color
	}{
		{name: "small", p: raster.Point{X: 1, Y: 2}, want: 0x00010002},
		{name: "typical", p: raster.Point{X: 100, Y: 100}, want: 0x00640064},
		{name: "wide", p: raster.Point{X: 1079, Y: 719}, want: 0x043702CF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToColor(tt.p)
			if got != tt.want {
				t.Errorf("PointToColor(%+v) = %v, want %v", tt.p, got, tt.want)
			}
			if again := PointToColor(tt.p); again != got {
				t.Errorf("PointToColor(%+v) not stable: %v then %v", tt.p, got, again)
			}
		})
	}
}

func TestPointToColorChannels(t *testing.T) {
	c := PointToColor(raster.Point{X: 0x0437, Y: 0x02CF})

	// y fills red and green, x's low byte fills blue.
	if got := c.RGB(); got != (colour.RGB{R: 0xCF, G: 0x02, B: 0x37}) {
		t.Errorf("PointToColor().RGB() = %+v, want {R:207 G:2 B:55}", got)
	}
	if got := c.A(); got != 0x04 {
		t.Errorf("PointToColor().A() = %#x, want x high byte 0x04", got)
	}
}

func TestPointToColorDistinct(t *testing.T) {
	seen := make(map[colour.Color]raster.Point)
	for x := int16(1); x < 600; x += 7 {
		for y := int16(1); y < 400; y += 5 {
			p := raster.Point{X: x, Y: y}
			c := PointToColor(p)
			if prev, ok := seen[c]; ok {
				t.Fatalf("PointToColor collision: %+v and %+v both map to %v", prev, p, c)
			}
			seen[c] = p
		}
	}
}

func TestPointToColorPanics(t *testing.T) {
	tests := []struct {
		name string
		p    raster.Point
		want string
	}{
		{name: "zero x", p: raster.Point{X: 0, Y: 5}, want: "x coordinate 0"},
		{name: "zero y", p: raster.Point{X: 5, Y: 0}, want: "y coordinate 0"},
		{name: "negative x", p: raster.Point{X: -1, Y: 5}, want: "x coordinate -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("PointToColor(%+v) did not panic", tt.p)
				}
				if msg, _ := r.(string); !strings.Contains(msg, tt.want) {
					t.Errorf("panic = %v, want message containing %q", r, tt.want)
				}
			}()
			PointToColor(tt.p)
		})
	}
}

func TestDeriveColors(t *testing.T) {
	set := Set{
		{Point: raster.Point{X: 3, Y: 4}},
		{Point: raster.Point{X: 5, Y: 6}},
	}
	set.DeriveColors()

	for i, s := range set {
		if want := PointToColor(s.Point); s.Color != want {
			t.Errorf("seed %d colour = %v, want %v", i, s.Color, want)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "random", want: ModeRandom},
		{in: "manual", want: ModeManual},
		{in: "content", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCalculate(t *testing.T) {
	value := int64(1234)
	got, err := Calculate(Config{Mode: ModeManual, Value: &value})
	if err != nil {
		t.Fatalf("Calculate(manual) error = %v", err)
	}
	if got != value {
		t.Errorf("Calculate(manual) = %d, want %d", got, value)
	}

	if _, err := Calculate(Config{Mode: ModeManual}); err == nil {
		t.Error("Calculate(manual without value) expected error")
	}
	if _, err := Calculate(Config{Mode: "bogus"}); err == nil {
		t.Error("Calculate(bogus) expected error")
	}
	if _, err := Calculate(Config{Mode: ModeRandom}); err != nil {
		t.Errorf("Calculate(random) error = %v", err)
	}
}
