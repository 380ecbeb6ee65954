package events

import (
	"errors"
	"strings"
	"testing"

	"github.com/banshee-data/evpacket/internal/testutil"
)

func TestFromArrays_LengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		x    []uint16
		y    []uint16
		ts   []int64
		p    []int8
	}{
		{"short y", make([]uint16, 4), make([]uint16, 3), make([]int64, 4), mkPol(4)},
		{"short t", make([]uint16, 4), make([]uint16, 4), make([]int64, 2), mkPol(4)},
		{"short p", make([]uint16, 4), make([]uint16, 4), make([]int64, 4), mkPol(1)},
		{"long x", make([]uint16, 9), make([]uint16, 4), make([]int64, 4), mkPol(4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArrays(tt.x, tt.y, tt.ts, tt.p, testConfig())
			if !errors.Is(err, ErrLengthMismatch) {
				t.Errorf("expected ErrLengthMismatch, got %v", err)
			}
		})
	}
}

// mkPol returns n alternating valid polarities.
func mkPol(n int) []int8 {
	p := make([]int8, n)
	for i := range p {
		if i%2 == 0 {
			p[i] = 1
		} else {
			p[i] = -1
		}
	}
	return p
}

func TestFromArrays_PolarityDomain(t *testing.T) {
	tests := []struct {
		name    string
		p       []int8
		wantErr bool
	}{
		{"zero", []int8{1, 0, 1}, true},
		{"two", []int8{2, 1, -1}, true},
		{"minus two", []int8{1, 1, -2}, true},
		{"extreme", []int8{127, 1, 1}, true},
		{"valid mixed", []int8{1, -1, 1}, false},
		{"valid all negative", []int8{-1, -1, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := []uint16{1, 2, 3}
			y := []uint16{4, 5, 6}
			ts := []int64{10, 20, 30}
			_, err := FromArrays(x, y, ts, tt.p, testConfig())
			if tt.wantErr && !errors.Is(err, ErrPolarity) {
				t.Errorf("expected ErrPolarity, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFromArrays_TimestampOrder(t *testing.T) {
	x := []uint16{10, 11, 12}
	y := []uint16{20, 21, 22}
	ts := []int64{0, 10, 5}
	p := []int8{1, -1, 1}

	_, err := FromArrays(x, y, ts, p, testConfig())
	testutil.AssertErrorIs(t, err, ErrTimestampOrder)
	// The message names the offending index for debugging decoders.
	if !strings.Contains(err.Error(), "t[2]") {
		t.Errorf("expected error to name the offending index, got %q", err.Error())
	}
}

func TestFromArrays_Geometry(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr bool
	}{
		{"zero width", 0, 240, true},
		{"zero height", 320, 0, true},
		{"negative width", -1, 240, true},
		{"both zero", 0, 0, true},
		{"minimal", 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArrays(nil, nil, nil, nil, PacketConfig{Width: tt.width, Height: tt.height})
			if tt.wantErr && !errors.Is(err, ErrGeometry) {
				t.Errorf("expected ErrGeometry, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFromArrays_BoundsInversion(t *testing.T) {
	lo := int64(100)
	hi := int64(900)
	beyond := int64(5000)
	below := int64(-10)

	tests := []struct {
		name string
		n    int
		t0   *int64
		t1   *int64
	}{
		{"explicit inverted empty", 0, &hi, &lo},
		{"explicit inverted populated", 10, &hi, &lo},
		{"explicit t0 above derived t1", 10, &beyond, nil},
		{"explicit t1 below derived t0", 10, nil, &below},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ts, p := makeArrays(tt.n)
			cfg := testConfig()
			cfg.T0 = tt.t0
			cfg.T1 = tt.t1
			_, err := FromArrays(x, y, ts, p, cfg)
			if !errors.Is(err, ErrTimeBounds) {
				t.Errorf("expected ErrTimeBounds, got %v", err)
			}
		})
	}
}

func TestFromArrays_ValidationOrder(t *testing.T) {
	// Multiple violations report the first check in sequence: geometry,
	// lengths, polarity, order, bounds.
	badPol := []int8{0, 0}

	t.Run("geometry before lengths", func(t *testing.T) {
		_, err := FromArrays(make([]uint16, 2), make([]uint16, 3), make([]int64, 2), badPol,
			PacketConfig{Width: 0, Height: 0})
		if !errors.Is(err, ErrGeometry) {
			t.Errorf("expected ErrGeometry first, got %v", err)
		}
	})

	t.Run("lengths before polarity", func(t *testing.T) {
		_, err := FromArrays(make([]uint16, 2), make([]uint16, 3), make([]int64, 2), badPol, testConfig())
		if !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("expected ErrLengthMismatch first, got %v", err)
		}
	})

	t.Run("polarity before order", func(t *testing.T) {
		_, err := FromArrays(make([]uint16, 2), make([]uint16, 2), []int64{9, 3}, badPol, testConfig())
		if !errors.Is(err, ErrPolarity) {
			t.Errorf("expected ErrPolarity first, got %v", err)
		}
	})

	t.Run("order before bounds", func(t *testing.T) {
		hi := int64(900)
		lo := int64(100)
		cfg := testConfig()
		cfg.T0 = &hi
		cfg.T1 = &lo
		_, err := FromArrays(make([]uint16, 2), make([]uint16, 2), []int64{9, 3}, []int8{1, -1}, cfg)
		if !errors.Is(err, ErrTimestampOrder) {
			t.Errorf("expected ErrTimestampOrder first, got %v", err)
		}
	})
}

func TestFromArrays_ErrorLeavesZeroPacket(t *testing.T) {
	pkt, err := FromArrays([]uint16{1}, []uint16{1}, []int64{1}, []int8{0}, testConfig())
	testutil.AssertError(t, err)
	if pkt.Count() != 0 || pkt.Width() != 0 || pkt.Height() != 0 || pkt.T0() != 0 || pkt.T1() != 0 {
		t.Errorf("expected zero packet on error, got %v", pkt)
	}
}
