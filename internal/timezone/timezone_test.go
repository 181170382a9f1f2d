package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Europe/Berlin"))
	assert.True(t, IsValid("America/Sao_Paulo"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "Europe/Lisbon", Location("Europe/Lisbon").String())
	assert.Equal(t, DefaultTimezone, Location("nope").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestNowInUsesRequestedZone(t *testing.T) {
	now := NowIn("America/Sao_Paulo")
	assert.Equal(t, "America/Sao_Paulo", now.Location().String())
}
