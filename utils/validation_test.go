package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr bool
	}{
		{
			name:    "Numeric id",
			userID:  "42",
			wantErr: false,
		},
		{
			name:    "Alphanumeric with separators",
			userID:  "user_42-a",
			wantErr: false,
		},
		{
			name:    "Empty",
			userID:  "",
			wantErr: true,
		},
		{
			name:    "Too long",
			userID:  strings.Repeat("a", 65),
			wantErr: true,
		},
		{
			name:    "Path traversal",
			userID:  "../../etc/passwd",
			wantErr: true,
		},
		{
			name:    "Path separator",
			userID:  "a/b",
			wantErr: true,
		},
		{
			name:    "Whitespace",
			userID:  "user 42",
			wantErr: true,
		},
		{
			name:    "SQL metacharacters",
			userID:  "42'; DROP TABLE todo;--",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserID(tt.userID)
			if tt.wantErr {
				assert.NotNil(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
