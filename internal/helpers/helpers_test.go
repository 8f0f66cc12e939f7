package helpers

import "testing"

func TestStringTrim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello  ", "hello"},
		{`"quoted"`, "quoted"},
		{"'single'", "single"},
		{" \"mixed\" ", "mixed"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := StringTrim(tt.in); got != tt.want {
			t.Errorf("StringTrim(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPasswordStrong(t *testing.T) {
	strong := []string{"Str0ng!Pass", "Another1@Go", "Xy9$abcdef"}
	for _, p := range strong {
		if !IsPasswordStrong(p) {
			t.Errorf("expected %q to be strong", p)
		}
	}

	// Exactly 8 chars with all character classes sits on the boundary.
	if !IsPasswordStrong("Short1!A") {
		t.Error("expected 8-char password with all classes to be strong")
	}

	weak := []string{
		"alllowercase1!", // no uppercase
		"ALLUPPERCASE1!", // no lowercase
		"NoNumbers!!",    // no digit
		"NoSpecial123",   // no special character
		"Sh0!t",          // too short
	}
	for _, p := range weak {
		if IsPasswordStrong(p) {
			t.Errorf("expected %q to be weak", p)
		}
	}
}

func TestIsRTL(t *testing.T) {
	tests := []struct {
		lang string
		want bool
	}{
		{"ar", true},
		{"ar-SA", true},
		{"AR", true},
		{" ar ", true},
		{"en", false},
		{"en-US", false},
		{"", false},
		{"fa", false},
	}

	for _, tt := range tests {
		if got := IsRTL(tt.lang); got != tt.want {
			t.Errorf("IsRTL(%q) = %v, want %v", tt.lang, got, tt.want)
		}
	}
}
