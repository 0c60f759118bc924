package openre

import (
	"autograph-openre/domain/depparse"
	"github.com/stretchr/testify/assert"
	"regexp"
	"testing"
)

func TestPlaceholder_RoundTrip(t *testing.T) {
	for _, ordinal := range []int{0, 1, 9, 10, 123} {
		literal := Placeholder(ordinal).String()
		assert.True(t, PlaceholderPattern.MatchString(literal))

		p, ok := ParsePlaceholder(literal)
		assert.True(t, ok, literal)
		assert.Equal(t, Placeholder(ordinal), p)
	}
}

func TestParsePlaceholder_Reject(t *testing.T) {
	for _, literal := range []string{"", "ENTITY", "ENT01ITY", "ENT1", "1ITY", "ENT-1ITY", "ENTxITY", "ent1ity"} {
		_, ok := ParsePlaceholder(literal)
		assert.False(t, ok, literal)
	}
}

func TestFindPlaceholders(t *testing.T) {
	text := "ENT0ITY binds ENT12ITY, not ENT01ITY"
	matches := FindPlaceholders(text)

	assert.Equal(t, []PlaceholderMatch{
		{Placeholder: 0, Begin: 0, End: 7, Valid: true},
		{Placeholder: 12, Begin: 14, End: 22, Valid: true},
		{Placeholder: 0, Begin: 28, End: 36, Valid: false},
	}, matches)

	assert.True(t, ContainsPlaceholder("the ENT3ITY protein"))
	assert.True(t, ContainsPlaceholder("the ENT03ITY protein"))
	assert.False(t, ContainsPlaceholder("the protein"))
	assert.Nil(t, FindPlaceholders(""))
}

func TestPlaceholderTagRule(t *testing.T) {
	rule := PlaceholderTagRule()

	assert.Equal(t, depparse.TagProperNoun, rule.Tag)
	assert.Equal(t, depparse.POSProperNoun, rule.POS)
	assert.True(t, regexp.MustCompile(rule.Pattern).MatchString("ENT7ITY"))
}
