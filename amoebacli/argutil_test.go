package amoebacli

import (
	"errors"
	"math"
	"testing"
)

func TestRequire(t *testing.T) {
	if got, err := Require("id", true); err != nil || got != "id" {
		t.Errorf("Require(id) = %q, %v", got, err)
	}
	if _, err := Require("", false); !errors.Is(err, NotEnoughArgs) {
		t.Errorf("Require(absent): got %v, want NotEnoughArgs", err)
	}
}

func TestParseIntUint8(t *testing.T) {
	tests := []struct {
		token   string
		want    uint8
		wantErr error
	}{
		{"0xFF", 255, nil},
		{"0xff", 255, nil},
		{"0b101", 5, nil},
		{"42", 42, nil},
		{"0", 0, nil},
		{"255", 255, nil},
		{"256", 0, InvalidArgType},
		{"0x100", 0, InvalidArgType},
		{"-1", 0, InvalidArgType},
		{"0x", 0, InvalidArgType},
		{"0b102", 0, InvalidArgType},
		{"12a", 0, InvalidArgType},
		{"0X10", 0, InvalidArgType},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseInt[uint8](tt.token, true)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseIntSigned(t *testing.T) {
	tests := []struct {
		token   string
		want    int16
		wantErr error
	}{
		{"-32768", math.MinInt16, nil},
		{"32767", math.MaxInt16, nil},
		{"32768", 0, InvalidArgType},
		{"0x7FFF", math.MaxInt16, nil},
		{"0x8000", 0, InvalidArgType},
		{"-0x10", 0, InvalidArgType},
		{"-0b1", 0, InvalidArgType},
		{"0x-10", 0, InvalidArgType},
		{"0b-1", 0, InvalidArgType},
		{"0x+7F", 0, InvalidArgType},
		{"0x", 0, InvalidArgType},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseInt[int16](tt.token, true)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseIntWidths(t *testing.T) {
	if v, err := ParseInt[uint64]("0xFFFFFFFFFFFFFFFF", true); err != nil || v != math.MaxUint64 {
		t.Errorf("uint64 max = %d, %v", v, err)
	}
	if v, err := ParseInt[int8]("-128", true); err != nil || v != -128 {
		t.Errorf("int8 min = %d, %v", v, err)
	}
	if _, err := ParseInt[uint32]("4294967296", true); !errors.Is(err, InvalidArgType) {
		t.Errorf("uint32 overflow: got %v", err)
	}
	if _, err := ParseInt[int]("", false); !errors.Is(err, NotEnoughArgs) {
		t.Errorf("absent token: got %v, want NotEnoughArgs", err)
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		token   string
		want    float64
		wantErr error
	}{
		{"1.5", 1.5, nil},
		{"-0.25", -0.25, nil},
		{"1e3", 1000, nil},
		{"3", 3, nil},
		{"abc", 0, InvalidArgType},
		{"1.2.3", 0, InvalidArgType},
		{"0x1p-2", 0, InvalidArgType},
		{"1_000.0", 0, InvalidArgType},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseFloat[float64](tt.token, true)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFloatSpecialValues(t *testing.T) {
	if v, err := ParseFloat[float32]("1e39", true); err != nil || !math.IsInf(float64(v), 1) {
		t.Errorf("float32 out of range = %v, %v; want +Inf", v, err)
	}
	if v, err := ParseFloat[float64]("NaN", true); err != nil || !math.IsNaN(v) {
		t.Errorf("NaN = %v, %v", v, err)
	}
	if _, err := ParseFloat[float64]("", false); !errors.Is(err, NotEnoughArgs) {
		t.Errorf("absent token: got %v, want NotEnoughArgs", err)
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		token   string
		want    bool
		wantErr error
	}{
		{"true", true, nil},
		{"yes", true, nil},
		{"on", true, nil},
		{"enable", true, nil},
		{"y", true, nil},
		{"1", true, nil},
		{"false", false, nil},
		{"no", false, nil},
		{"off", false, nil},
		{"disable", false, nil},
		{"n", false, nil},
		{"0", false, nil},
		{"maybe", false, InvalidArgType},
		{"ON", false, InvalidArgType},
		{"True", false, InvalidArgType},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseBool(tt.token, true)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := ParseBool("", false); !errors.Is(err, NotEnoughArgs) {
		t.Errorf("absent token: got %v, want NotEnoughArgs", err)
	}
}

func TestParseHelpersComposeWithArgs(t *testing.T) {
	args := NewArgs("0x10 yes")
	n, err := ParseInt[uint8](args.Next())
	if err != nil || n != 16 {
		t.Fatalf("ParseInt = %d, %v", n, err)
	}
	b, err := ParseBool(args.Next())
	if err != nil || !b {
		t.Fatalf("ParseBool = %v, %v", b, err)
	}
	if _, err := ParseInt[uint8](args.Next()); !errors.Is(err, NotEnoughArgs) {
		t.Errorf("exhausted stream: got %v, want NotEnoughArgs", err)
	}
}
