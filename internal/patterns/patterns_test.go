package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindValue(t *testing.T) {
	l := NewLibrary()
	labeled(l, "village", `village`)

	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{
			name:  "plain label line",
			text:  "village: khairlanji",
			want:  "khairlanji",
			found: true,
		},
		{
			name:  "numbered label line",
			text:  "3) village: khairlanji",
			want:  "khairlanji",
			found: true,
		},
		{
			name:  "whitespace around colon",
			text:  "village  :   khairlanji",
			want:  "khairlanji",
			found: true,
		},
		{
			name:  "label without value",
			text:  "village:",
			found: false,
		},
		{
			name:  "no label at all",
			text:  "district: balaghat",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var found bool
			for _, rule := range l.Rules("village") {
				if v, ok := rule.FindValue(tt.text); ok {
					got, found = v, true
					break
				}
			}
			assert.Equal(t, tt.found, found)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValueStopsAtLineEnd(t *testing.T) {
	l := NewLibrary()
	labeled(l, "village", `village`)

	rules := l.Rules("village")
	require.NotEmpty(t, rules)

	v, ok := rules[0].FindValue("village: khairlanji\ndistrict: balaghat")
	require.True(t, ok)
	assert.Equal(t, "khairlanji", v)
}

func TestRulesForUnregisteredField(t *testing.T) {
	l := NewLibrary()
	assert.Nil(t, l.Rules("nope"))
}

func TestRuleOrderPreserved(t *testing.T) {
	l := NewLibrary()
	l.Register("f",
		Rule{Kind: LabelRule, Label: `first`},
		Rule{Kind: LabelRule, Label: `second`},
	)
	l.Register("f", Rule{Kind: LabelRule, Label: `third`})

	rules := l.Rules("f")
	require.Len(t, rules, 3)
	assert.Equal(t, `first`, rules[0].Label)
	assert.Equal(t, `second`, rules[1].Label)
	assert.Equal(t, `third`, rules[2].Label)
}

func TestDefaultLibraryAadharMisspellings(t *testing.T) {
	l := DefaultLibrary()
	rules := l.Rules("aadhar_number")
	require.NotEmpty(t, rules)

	spellings := []string{
		"aadhar number: 1234 5678 9012",
		"aadhaar number: 1234 5678 9012",
		"adhar number: 1234 5678 9012",
	}
	for _, text := range spellings {
		found := false
		for _, rule := range rules {
			if v, ok := rule.FindValue(text); ok {
				assert.Equal(t, "1234 5678 9012", v)
				found = true
				break
			}
		}
		assert.True(t, found, "expected a match for %q", text)
	}
}
