package crypto

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestRandomString(t *testing.T) {
	seen := map[string]struct{}{}

	for range 10 {
		value, err := RandomString(AlphaNumeric, 50)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 50, len(value); e != g {
			t.Errorf("len(value): expected '%d', got '%d'", e, g)
		}

		for _, r := range value {
			if !strings.ContainsRune(AlphaNumeric, r) {
				t.Errorf("unexpected character '%c' in '%s'", r, value)
			}
		}

		if _, exists := seen[value]; exists {
			t.Errorf("value '%s' generated twice", value)
		}

		seen[value] = struct{}{}
	}

	if _, err := RandomString("", 10); err == nil {
		t.Errorf("RandomString(): expected an error with an empty alphabet")
	}
}
