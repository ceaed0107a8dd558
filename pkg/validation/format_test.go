package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{"Valid pretty format", "pretty", false},
		{"Valid csv format", "csv", false},
		{"Spreadsheet format not supported", "xlsx", true},
		{"Empty format", "", true},
		{"Case sensitive", "CSV", true},
		{"Leading/trailing spaces", " pretty ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ValidateOutputFormat(%s) expected error but got none", tt.format)
				}
				if tt.format != "" && !strings.Contains(err.Error(), tt.format) {
					t.Errorf("error %q does not name the rejected format", err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateOutputFormat(%s) unexpected error = %v", tt.format, err)
			}
		})
	}
}
