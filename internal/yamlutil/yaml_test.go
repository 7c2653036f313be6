package yamlutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "borscht", Count: 4})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Contains(out, []byte("name: borscht")) {
		t.Errorf("output = %q, want name field", out)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()
		var s sample
		if err := UnmarshalStrict([]byte("name: borscht\ncount: 4\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if s.Name != "borscht" || s.Count != 4 {
			t.Errorf("decoded = %+v", s)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var s sample
		err := UnmarshalStrict([]byte("name: borscht\nbogus: 1\n"), &s)
		if err == nil {
			t.Fatal("UnmarshalStrict() accepted unknown field")
		}
	})

	t.Run("empty data returns ErrNilData", func(t *testing.T) {
		t.Parallel()
		var s sample
		if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination returns ErrNilDestination", func(t *testing.T) {
		t.Parallel()
		if err := UnmarshalStrict([]byte("name: x\n"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input rejected", func(t *testing.T) {
		t.Parallel()
		var s sample
		data := []byte("name: " + strings.Repeat("x", MaxInputSize))
		if err := UnmarshalStrict(data, &s); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}
