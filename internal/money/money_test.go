package money

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12", 1200, false},
		{".50", 50, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{"150.50", 15050, false},
		{"0", 0, true},
		{"0.00", 0, true},
		{"", 0, true},
		{"-5", 0, true},
		{"+5", 0, true},
		{"abc", 0, true},
		{"1.2.3", 0, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Amount
		want string
	}{
		{1234, "12.34"},
		{100000, "1000.00"},
		{5, "0.05"},
		{0, "0.00"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Amount(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(12.34); got != 1234 {
		t.Errorf("FromFloat(12.34) = %d, want 1234", got)
	}
	if got := FromFloat(-1); got != 0 {
		t.Errorf("FromFloat(-1) = %d, want 0", got)
	}
}
