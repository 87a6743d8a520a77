package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+905551112233", NormalizePhone("905551112233"))
	assert.Equal(t, "+905551112233", NormalizePhone("+905551112233"))
	assert.Equal(t, "+905551112233", NormalizePhone("  905551112233 "))
	assert.Equal(t, "", NormalizePhone("  "))
}

func TestStripWhatsAppPrefix(t *testing.T) {
	assert.Equal(t, "905551112233", StripWhatsAppPrefix("whatsapp:+905551112233"))
	assert.Equal(t, "905551112233", StripWhatsAppPrefix("+905551112233"))
	assert.Equal(t, "905551112233", StripWhatsAppPrefix("905551112233"))
}
