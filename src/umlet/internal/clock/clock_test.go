package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New())
}

func TestNow(t *testing.T) {
	before := time.Now()
	now := New().Now()
	assert.False(t, now.Before(before))
	assert.Equal(t, time.Local, now.Location())
}
