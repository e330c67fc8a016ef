package validate

import "testing"

func TestFilterPasscode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "abc123", "abc123"},
		{"uppercase normalized", "ABC123", "abc123"},
		{"separators stripped", "ab-c 12.3", "abc123"},
		{"truncated to six", "abcdef123456", "abcdef"},
		{"noise around valid chars", "  xY-9#z2!q8", "xy9z2q"},
		{"empty", "", ""},
		{"only noise", "---   !!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterPasscode(tt.in); got != tt.want {
				t.Fatalf("FilterPasscode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsPasscode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"lowercase letters", "abcdef", true},
		{"letters and digits", "abc123", true},
		{"all digits", "123456", true},
		{"uppercase normalized before check", "ABC123", true},
		{"empty", "", false},
		{"five valid chars", "abc12", false},
		{"seven valid chars", "abc1234", false},
		{"embedded separator", "abc-12", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPasscode(tt.in); got != tt.want {
				t.Fatalf("IsPasscode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// Filter output is always valid input for the validator when at least six
// usable characters are present.
func TestFilterThenValidate(t *testing.T) {
	inputs := []string{"abc123", "ABC123", "a b c 1 2 3", "passcode", "x1y2z3...", "AB-CD-EF"}
	for _, in := range inputs {
		filtered := FilterPasscode(in)
		if len(filtered) != PasscodeLength {
			t.Fatalf("FilterPasscode(%q) = %q, want length %d", in, filtered, PasscodeLength)
		}
		if !IsPasscode(filtered) {
			t.Fatalf("IsPasscode(FilterPasscode(%q)) = false, want true", in)
		}
	}
}

func TestIsMinLength2(t *testing.T) {
	if IsMinLength2(" a ") {
		t.Fatal("single trimmed character should be invalid")
	}
	if !IsMinLength2("ab") {
		t.Fatal("two characters should be valid")
	}
	if IsMinLength2("") {
		t.Fatal("empty should be invalid")
	}
	if IsMinLength2("é") {
		t.Fatal("one accented character is one character, not two")
	}
	if !IsMinLength2("éé") {
		t.Fatal("two accented characters should be valid")
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane@x.com", "a.b+c@sub.example.org"}
	invalid := []string{"", "jane", "jane@", "@x.com", "jane@x", "ja ne@x.com"}
	for _, v := range valid {
		if !IsValidEmail(v) {
			t.Fatalf("IsValidEmail(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidEmail(v) {
			t.Fatalf("IsValidEmail(%q) = true, want false", v)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"5551234567", "(555) 123-4567", "+1 555 123 4567"}
	invalid := []string{"", "555-1234", "call me"}
	for _, v := range valid {
		if !IsValidPhoneNumber(v) {
			t.Fatalf("IsValidPhoneNumber(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidPhoneNumber(v) {
			t.Fatalf("IsValidPhoneNumber(%q) = true, want false", v)
		}
	}
}

func TestIsValidZip(t *testing.T) {
	if !IsValidZip("02134") {
		t.Fatal("five digits should be valid")
	}
	for _, v := range []string{"", "1234", "123456", "0213a", "02134-1234"} {
		if IsValidZip(v) {
			t.Fatalf("IsValidZip(%q) = true, want false", v)
		}
	}
}
