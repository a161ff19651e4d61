package coinaddress

import (
	"testing"
	"unicode/utf8"
)

// FuzzValidateBase58Hash checks that validation never panics and that the
// outcome is consistent with the alphabet.
func FuzzValidateBase58Hash(f *testing.F) {
	f.Add("17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem")
	f.Add("3EktnHQD7RiAE6uzMj2ZifT9YgRrkSgzQX")
	f.Add("LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz")
	f.Add("")
	f.Add("1")
	f.Add("1111111111111111111111111111111111")
	f.Add("OIl0")
	f.Add("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	f.Add("\x00\x01\x02")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ValidateBase58Hash(input)

		if input == "" {
			if err != TooShort {
				t.Fatalf("empty input: got %v, want TooShort", err)
			}
			return
		}

		inAlphabet := true
		for i := 0; i < len(input); i++ {
			if alphabetIndex[input[i]] < 0 {
				inAlphabet = false
				break
			}
		}
		if !inAlphabet && err != InvalidEncoding {
			t.Fatalf("%q has non-alphabet characters: got %v", input, err)
		}
		if inAlphabet && err == InvalidEncoding {
			t.Fatalf("%q is all alphabet characters but reported InvalidEncoding", input)
		}
		if !utf8.ValidString(input) && err == nil {
			t.Fatalf("invalid UTF-8 %q accepted", input)
		}

		v2, err2 := ValidateBase58Hash(input)
		if v != v2 || err != err2 {
			t.Fatalf("%q: not idempotent", input)
		}
	})
}

// FuzzCurrencyValidate checks the classifier only narrows generic results.
func FuzzCurrencyValidate(f *testing.F) {
	f.Add("17VZNX1SN5NtKa8UQFxwQbFeFc3iqRYhem")
	f.Add("muen9zszN6rVwXaFw48xh6YkdUSjJcfzek")
	f.Add("LRELGDJyeCPRDXz4Dh1kWorMN9hTBB7CEz")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		base, baseErr := ValidateBase58Hash(input)
		for _, c := range currencies {
			v, err := c.Validate(input)
			switch {
			case baseErr != nil:
				if err != baseErr {
					t.Fatalf("%s: base error %v became %v", c, baseErr, err)
				}
			case c.Accepts(base):
				if err != nil || v != base {
					t.Fatalf("%s: accepted byte %d rejected with %v", c, base, err)
				}
			default:
				if err != c.RejectError() {
					t.Fatalf("%s: byte %d got %v", c, base, err)
				}
			}
		}
	})
}
