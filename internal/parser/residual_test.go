package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

func TestValidateResidual(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "", false},
		{"whitespace only", " \n\t \n\n", false},
		{"comment lines only", "--\n-- PostgreSQL database dump\n--\n", false},
		{"indented comment", "   -- indented comment\n", false},
		{"comments and blanks", "-- header\n\n\n-- footer\n", false},
		{"leftover statement", "SELECT broken\n", true},
		{"junk between comments", "-- ok\ngarbage\n-- ok\n", true},
		{"comment marker mid-line is content", "junk -- not a comment line\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResidual(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, parseschema.ErrParseResidual), "expected residual error, got: %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateResidual_ReportsOffendingText(t *testing.T) {
	err := ValidateResidual("-- fine\nsome leftover content\n")

	var residualErr *parseschema.ResidualError
	assert.True(t, errors.As(err, &residualErr))
	assert.Equal(t, "some leftover content", residualErr.Residual)
}
