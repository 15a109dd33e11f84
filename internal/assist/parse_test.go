package assist

import "testing"

func TestParseLeadingNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"140", 140, true},
		{" approx 140 kcal", 140, true},
		{"140.", 140, true},
		{"0", 0, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseLeadingNumber(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseLeadingNumber(%q)=(%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractJSONObject(t *testing.T) {
	raw, ok := extractJSONObject("```json\n{\"name\": \"Salad\", \"calories\": 320}\n```")
	if !ok || raw != `{"name": "Salad", "calories": 320}` {
		t.Fatalf("extractJSONObject=(%q, %v)", raw, ok)
	}

	if _, ok := extractJSONObject("no json at all"); ok {
		t.Fatalf("extracted object from prose")
	}
	if _, ok := extractJSONObject("} backwards {"); ok {
		t.Fatalf("extracted backwards braces")
	}
}
