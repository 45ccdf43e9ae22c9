package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNoteType(t *testing.T) {
	tests := []struct {
		input   string
		want    NoteType
		wantErr bool
	}{
		{"fleeting", NoteTypeFleeting, false},
		{"permanent", NoteTypePermanent, false},
		{"", "", true},
		{"_", "", true},
		{"Fleeting", "", true},
		{"ephemeral", "", true},
	}
	for _, tt := range tests {
		got, err := ParseNoteType(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidEnum, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSubType(t *testing.T) {
	tests := []struct {
		input   string
		want    SubType
		wantErr bool
	}{
		{"question", SubTypeQuestion, false},
		{"investigation", SubTypeInvestigation, false},
		{"log", SubTypeLog, false},
		{"idea", SubTypeIdea, false},
		{"reference", SubTypeReference, false},
		{"literature", SubTypeLiterature, false},
		{"quote", SubTypeQuote, false},
		{"", "", false},
		{"_", "", false},
		{"Question", "", true},
		{"journal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSubType(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidEnum, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{"low", PriorityLow, false},
		{"medium", PriorityMedium, false},
		{"high", PriorityHigh, false},
		{"", PriorityMedium, false},
		{"urgent", "", true},
		{"High", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidEnum, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseLinkType(t *testing.T) {
	tests := []struct {
		input   string
		want    LinkType
		wantErr bool
	}{
		{"structure", LinkTypeStructure, false},
		{"reference", LinkTypeReference, false},
		{"support", LinkTypeSupport, false},
		{"related", LinkTypeRelated, false},
		{"refute", LinkTypeRefute, false},
		{"", "", false},
		{"_", "", false},
		{"contradict", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLinkType(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidEnum, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2025-04-30")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), *got)

	got, err = ParseDueDate("")
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"2025-13-01", "2025-02-30", "30-04-2025", "not-a-date"} {
		_, err = ParseDueDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDueDate, "input %q", bad)
	}
}
