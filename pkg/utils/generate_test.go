package utils

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateObjectKey(t *testing.T) {
	key := GenerateObjectKey("uploads", "Summer Dress.JPG")

	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.Regexp(t, regexp.MustCompile(`^uploads/[0-9a-z]{11}\.jpg$`), key)
}

func TestGenerateObjectKey_NoExtensionNoPrefix(t *testing.T) {
	key := GenerateObjectKey("", "blob")

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-z]{11}$`), key)
}

func TestGenerateObjectName_Random(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[GenerateObjectName(11)] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestGenerateObjectKey_DropsUnsafeExtensions(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"photo.webp", `^uploads/[0-9a-z]{11}\.webp$`},
		{"a.png?x", `^uploads/[0-9a-z]{11}$`},
		{`a.\..\x`, `^uploads/[0-9a-z]{11}$`},
		{"a.png#frag", `^uploads/[0-9a-z]{11}$`},
		{"archive.toolongext", `^uploads/[0-9a-z]{11}$`},
		{"dot.", `^uploads/[0-9a-z]{11}$`},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Regexp(t, regexp.MustCompile(tt.want), GenerateObjectKey("uploads", tt.fileName))
		})
	}
}

func TestHexName_LongerThanOneUUID(t *testing.T) {
	for _, n := range []int{1, 32, 33, 100} {
		name := hexName(n)
		assert.Len(t, name, n)
		assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]+$`), name)
	}
}
