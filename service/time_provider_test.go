package service

import (
	"testing"
	"time"

	"campaignclient/helpers"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeProvider_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() {
		NewTimeProvider(nil)
	})
}

func TestTimeProvider_Now(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"fixed", helpers.TestNow(), helpers.TestNow()},
		{"sub_millisecond_dropped", helpers.TestNow().Add(1500 * time.Microsecond), helpers.TestNow().Add(time.Millisecond)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := NewTimeProvider(func() time.Time { return tt.now })
			assert.Equal(t, tt.want, tp.Now())
		})
	}
}

func TestTimeProvider_CallsNowEachTime(t *testing.T) {
	calls := 0
	tp := NewTimeProvider(func() time.Time {
		calls++
		return helpers.TestNow()
	})
	_ = tp.Now()
	_ = tp.Now()
	assert.Equal(t, 2, calls)
}
