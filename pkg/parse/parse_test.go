package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\r\n\r\nb"))
}

func TestFirstField(t *testing.T) {
	f, ok := FirstField("  wlan0   wifi ")
	assert.True(t, ok)
	assert.Equal(t, "wlan0", f)

	_, ok = FirstField("   ")
	assert.False(t, ok)
}

func TestHasLinePrefix(t *testing.T) {
	assert.True(t, HasLinePrefix("Warning: x\nError: no network with ssid 'foo' found.", "Error"))
	assert.False(t, HasLinePrefix("Warning: Error later in the line", "Error"))
	assert.False(t, HasLinePrefix("", "Error"))
}

func TestFirstFieldsContaining(t *testing.T) {
	out := FirstFieldsContaining("DEVICE  TYPE\nwlan0   wifi\neth0    ethernet\nwlan1   wifi\n", "wifi")
	assert.Equal(t, []string{"wlan0", "wlan1"}, out)
	assert.Equal(t, []string{}, FirstFieldsContaining("", "wifi"))
}

func TestQuotedAfter(t *testing.T) {
	v, ok := QuotedAfter(`wlan0     IEEE 802.11AC  ESSID:"My Net"  Nickname:"<WIFI@REALTEK>"`, "ESSID:")
	assert.True(t, ok)
	assert.Equal(t, "My Net", v)

	_, ok = QuotedAfter("wlan0     unassociated  ESSID:off", "ESSID:")
	assert.False(t, ok)

	_, ok = QuotedAfter(`wlan0  ESSID:"unterminated`, "ESSID:")
	assert.False(t, ok)

	v, ok = QuotedAfter(`a ESSID:"" b`, "ESSID:")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	v, ok = QuotedAfter(`x.y:"dots" xay:"no"`, "x.y:")
	assert.True(t, ok)
	assert.Equal(t, "dots", v)
}

func TestValueAfter(t *testing.T) {
	v, ok := ValueAfter("Current Wi-Fi Network: \"Cafe Net\"\n", "Current Wi-Fi Network:")
	assert.True(t, ok)
	assert.Equal(t, "Cafe Net", v)

	_, ok = ValueAfter("You are not associated with an AirPort network.", "Current Wi-Fi Network:")
	assert.False(t, ok)
}
