package errors

import (
	"math"
	"testing"
)

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "100", 100, false},
		{"decimal", "12.5", 12.5, false},
		{"scientific", "1e2", 100, false},
		{"surrounding space", " 30 ", 30, false},

		{"empty", "", 0, true},
		{"blank", "   ", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"word", "ten", 0, true},
		{"comma decimal", "1,5", 0, true},
		{"nan", "NaN", 0, true},
		{"inf", "+Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimension("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDimension(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !Is(err, ErrCodeInvalidDimension) {
					t.Errorf("ParseDimension(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidDimension)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseDimension(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 1, false},
		{"tiny", 1e-9, false},
		{"zero", 0, true},
		{"negative zero", math.Copysign(0, -1), true},
		{"negative", -0.1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("depth", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "paper_box.pdf", false},
		{"nested", "out/box.svg", false},
		{"absolute", "/tmp/box.png", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"control char", "box\x01.pdf", true},
		{"trailing slash", "out/", true},
		{"dot", ".", true},
		{"dot dot", "out/..", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
