// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package fjson_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/creachadair/fjson"
	"github.com/creachadair/fjson/scanner"
	"github.com/creachadair/fjson/validate"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

const testInput = `
    // This is a comment.
    // Second line.

    // Break, than third.

    { // Object start.

        "key1": "val1", // Same line comment.
        "k": "v",
        // Next line comment.
        "arr_key": [ // Array start.

            "val1"
            ,
            100 // Before comma
            ,

            // True.
            true,
        ],

        // And another.
    "key2": { "nested": // And another one.
    100, "value": true, "third": "this"

    // Weird comment before comma.
    , "is": "a", "v":{"another" :"object", }  },
    } // Trailing comment.`

const wantJSONC = `// This is a comment.
// Second line.

// Break, than third.

{
  // Object start.

  "key1": "val1", // Same line comment.
  "k": "v",
  // Next line comment.
  "arr_key": [
    // Array start.

    "val1",
    100, // Before comma

    // True.
    true
  ],

  // And another.
  "key2": {
    // And another one.
    "nested": 100,
    "value": true,
    "third": "this",

    // Weird comment before comma.
    "is": "a",
    "v": { "another": "object" }
  }
} // Trailing comment.
`

const wantJSON = `{
  "key1": "val1",
  "k": "v",
  "arr_key": ["val1", 100, true],
  "key2": {
    "nested": 100,
    "value": true,
    "third": "this",
    "is": "a",
    "v": { "another": "object" }
  }
}
`

const wantCompact = `{"key1":"val1","k":"v","arr_key":["val1",100,true],` +
	`"key2":{"nested":100,"value":true,"third":"this","is":"a","v":{"another":"object"}}}` + "\n"

func TestToJSONC(t *testing.T) {
	got, err := fjson.ToJSONC(testInput)
	if err != nil {
		t.Fatalf("ToJSONC: unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantJSONC, got); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}

	again, err := fjson.ToJSONC(got)
	if err != nil {
		t.Fatalf("ToJSONC (reformat): unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("Reformat: (-want, +got)\n%s", diff)
	}
}

func TestToJSON(t *testing.T) {
	got, err := fjson.ToJSON(testInput)
	if err != nil {
		t.Fatalf("ToJSON: unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantJSON, got); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("Output is not valid JSON:\n%s", got)
	}

	again, err := fjson.ToJSON(got)
	if err != nil {
		t.Fatalf("ToJSON (reformat): unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("Reformat: (-want, +got)\n%s", diff)
	}
}

func TestToJSONCompact(t *testing.T) {
	got, err := fjson.ToJSONCompact(testInput)
	if err != nil {
		t.Fatalf("ToJSONCompact: unexpected error: %v", err)
	}
	if diff := cmp.Diff(wantCompact, got); diff != "" {
		t.Errorf("Output: (-want, +got)\n%s", diff)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("Output is not valid JSON:\n%s", got)
	}

	again, err := fjson.ToJSONCompact(got)
	if err != nil {
		t.Fatalf("ToJSONCompact (reformat): unexpected error: %v", err)
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("Reformat: (-want, +got)\n%s", diff)
	}
}

// Compact output must agree with an independent JSONC implementation:
// standardizing the input with hujson and compacting it with
// encoding/json yields the same bytes.
func TestCompactConformance(t *testing.T) {
	inputs := []string{
		testInput,
		`null`,
		`[1, 2, 3,]`,
		"// c\n{\"a\": {\"b\": [true, false,],},}",
		`{"esc": "a&\nb", "num": -1.25e-9}`,
	}
	for _, input := range inputs {
		got, err := fjson.ToJSONCompact(input)
		if err != nil {
			t.Fatalf("ToJSONCompact %#q: unexpected error: %v", input, err)
		}

		std, err := hujson.Standardize([]byte(input))
		if err != nil {
			t.Fatalf("Standardize %#q: unexpected error: %v", input, err)
		}
		var want bytes.Buffer
		if err := json.Compact(&want, std); err != nil {
			t.Fatalf("Compact: unexpected error: %v", err)
		}
		if diff := cmp.Diff(want.String(), strings.TrimSuffix(got, "\n")); diff != "" {
			t.Errorf("Input: %#q\nCompact: (-hujson, +got)\n%s", input, diff)
		}
	}
}

// Every output mode ends with exactly one newline, and the compact
// payload rescans without comment or newline tokens.
func TestOutputInvariants(t *testing.T) {
	for _, input := range []string{testInput, "5", "// c\n[]"} {
		for name, fn := range map[string]func(string) (string, error){
			"ToJSONC":       fjson.ToJSONC,
			"ToJSON":        fjson.ToJSON,
			"ToJSONCompact": fjson.ToJSONCompact,
		} {
			out, err := fn(input)
			if err != nil {
				t.Fatalf("%s %#q: unexpected error: %v", name, input, err)
			}
			if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
				t.Errorf("%s %#q: output %#q does not end with exactly one newline", name, input, out)
			}
			if !validate.Valid(out) {
				t.Errorf("%s %#q: output %#q does not validate", name, input, out)
			}
		}

		compact, err := fjson.ToJSONCompact(input)
		if err != nil {
			t.Fatalf("ToJSONCompact %#q: unexpected error: %v", input, err)
		}
		s := scanner.New(strings.TrimSuffix(compact, "\n"))
		for s.Next() == nil {
			if s.Token().Kind.IsMetadata() {
				t.Errorf("Compact output %#q contains %v", compact, s.Token().Kind)
			}
		}
	}
}

func TestErrors(t *testing.T) {
	for _, input := range []string{"", "{", "[1,,2]", "{\"a\" 1}", "tru", "1 2"} {
		if _, err := fjson.ToJSONC(input); err == nil {
			t.Errorf("ToJSONC %#q: unexpectedly succeeded", input)
		}
		if _, err := fjson.ToJSON(input); err == nil {
			t.Errorf("ToJSON %#q: unexpectedly succeeded", input)
		}
		if _, err := fjson.ToJSONCompact(input); err == nil {
			t.Errorf("ToJSONCompact %#q: unexpectedly succeeded", input)
		}
	}
}
