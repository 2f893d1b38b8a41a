package server_test

import (
	"testing"

	"ornasync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    []string
	}{
		{"Wildcard", "*", []string{"*"}},
		{"Single", "https://orna.guide", []string{"https://orna.guide"}},
		{"Multiple", "https://orna.guide, https://playorna.com", []string{"https://orna.guide", "https://playorna.com"}},
		{"Trailing comma", "https://orna.guide,", []string{"https://orna.guide"}},
		{"Empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{AllowOrigins: tt.origins}
			assert.Equal(t, tt.want, c.Origins())
		})
	}
}
