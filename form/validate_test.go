package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason Reason
	}{
		{"simple", "Jo", ReasonNone},
		{"hyphen and apostrophe", "Mary-Jane O'Neil", ReasonNone},
		{"fifty characters", strings.Repeat("a", 50), ReasonNone},
		{"surrounding whitespace is trimmed", "  Ada Lovelace ", ReasonNone},
		{"empty", "", ReasonRequired},
		{"only spaces", "   ", ReasonRequired},
		{"single letter", "A", ReasonTooShort},
		{"fifty one characters", strings.Repeat("a", 51), ReasonTooLong},
		{"digits", "R2D2", ReasonInvalidCharacters},
		{"punctuation", "Jo.Smith", ReasonInvalidCharacters},
		{"double space", "Jo  Smith", ReasonConsecutiveSpaces},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateFullName(tt.input)
			assert.Equal(t, tt.reason == ReasonNone, r.Valid)
			assert.Equal(t, tt.reason, r.Reason)
			if !r.Valid {
				assert.NotEmpty(t, r.Message)
			}
		})
	}
}

func TestValidateFullNameMessages(t *testing.T) {
	assert.Equal(t, "Name must be at least 2 characters", ValidateFullName("A").Message)
	assert.Equal(t, "Name must be less than 50 characters", ValidateFullName(strings.Repeat("b", 51)).Message)
}

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.org",
		"  padded@example.io  ",
	}
	for _, in := range valid {
		assert.True(t, ValidateEmail(in).Valid, "expected %q to be valid", in)
	}

	invalid := map[string]Reason{
		"":                       ReasonRequired,
		"user..name@example.com": ReasonInvalidFormat,
		".user@example.com":      ReasonInvalidFormat,
		"user@example.com.":      ReasonInvalidFormat,
		"bad-email":              ReasonInvalidFormat,
		"user@example.c":         ReasonInvalidFormat,
		"user@@example.com":      ReasonInvalidFormat,
	}
	for in, reason := range invalid {
		r := ValidateEmail(in)
		assert.False(t, r.Valid, "expected %q to be invalid", in)
		assert.Equal(t, reason, r.Reason, in)
	}
}

func TestValidateSubject(t *testing.T) {
	tests := []struct {
		input  string
		reason Reason
	}{
		{"Hello", ReasonNone},
		{strings.Repeat("s", 100), ReasonNone},
		{"", ReasonRequired},
		{"Hi", ReasonTooShort},
		{strings.Repeat("s", 101), ReasonTooLong},
		{" Hello world", ReasonSurroundingWhitespace},
		{"Hello world ", ReasonSurroundingWhitespace},
		// length checks run on the trimmed value first
		{"  Hi  ", ReasonTooShort},
	}

	for _, tt := range tests {
		r := ValidateSubject(tt.input)
		assert.Equal(t, tt.reason, r.Reason, "input %q", tt.input)
		assert.Equal(t, tt.reason == ReasonNone, r.Valid, "input %q", tt.input)
	}
}

func TestValidateMessage(t *testing.T) {
	assert.True(t, ValidateMessage("Hello there, friend").Valid)
	assert.True(t, ValidateMessage(strings.Repeat("m", 1000)).Valid)
	assert.Equal(t, ReasonRequired, ValidateMessage(" \n ").Reason)
	assert.Equal(t, ReasonTooShort, ValidateMessage("too short").Reason)
	assert.Equal(t, ReasonTooLong, ValidateMessage(strings.Repeat("m", 1001)).Reason)
}

func TestRulesValidateDispatch(t *testing.T) {
	r := DefaultRules()
	assert.True(t, r.Validate(FieldEmail, "user@example.com").Valid)
	assert.False(t, r.Validate(Field("phone"), "123").Valid)
}

func TestCustomRules(t *testing.T) {
	r := DefaultRules()
	r.FullName = Bounds{Min: 5, Max: 8}
	assert.Equal(t, ReasonTooShort, r.Name("Ann").Reason)
	assert.Equal(t, "Name must be at least 5 characters", r.Name("Ann").Message)
	assert.Equal(t, ReasonTooLong, r.Name("Annabelle").Reason)
	assert.True(t, r.Validate(FieldFullName, "Annie").Valid)

	r.Subject = Bounds{Min: 3, Max: 6}
	assert.True(t, r.SubjectLine("Hello").Valid)
	assert.Equal(t, ReasonTooLong, r.SubjectLine("Hello there").Reason)
	assert.Equal(t, ReasonTooShort, r.Validate(FieldSubject, "Hi").Reason)
	assert.Equal(t, 6, r.Subject.Max)
}

func TestCharacterCounter(t *testing.T) {
	tests := []struct {
		length int
		level  CounterLevel
	}{
		{0, CounterNormal},
		{749, CounterNormal},
		{750, CounterNearLimit},
		{899, CounterNearLimit},
		{900, CounterAtLimit},
		{1000, CounterAtLimit},
		{1200, CounterAtLimit},
	}

	for _, tt := range tests {
		c := UpdateCharacterCounter(strings.Repeat("x", tt.length))
		assert.Equal(t, tt.level, c.Level, "length %d", tt.length)
		assert.Equal(t, tt.length, c.Length)
	}

	assert.Equal(t, "750 / 1000 characters", UpdateCharacterCounter(strings.Repeat("x", 750)).Text())
	assert.Equal(t, "at-limit", CounterAtLimit.String())
}

func TestCounterCountsRunes(t *testing.T) {
	c := UpdateCharacterCounter("héllo")
	assert.Equal(t, 5, c.Length)
}
