package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCursorIsZero(t *testing.T) {
	assert.True(t, Cursor{}.IsZero())
	assert.False(t, Cursor{LastID: "a"}.IsZero())
	assert.False(t, Cursor{LastSyncedAt: time.Now()}.IsZero())
}

func TestCursorOrdering(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)

	tests := []struct {
		name string
		a, b Cursor
		want bool
	}{
		{
			name: "earlier timestamp",
			a:    Cursor{LastSyncedAt: t1, LastID: "z"},
			b:    Cursor{LastSyncedAt: t2, LastID: "a"},
			want: true,
		},
		{
			name: "later timestamp",
			a:    Cursor{LastSyncedAt: t2, LastID: "a"},
			b:    Cursor{LastSyncedAt: t1, LastID: "z"},
			want: false,
		},
		{
			name: "same timestamp, id breaks the tie",
			a:    Cursor{LastSyncedAt: t1, LastID: "a"},
			b:    Cursor{LastSyncedAt: t1, LastID: "b"},
			want: true,
		},
		{
			name: "identical positions",
			a:    Cursor{LastSyncedAt: t1, LastID: "a"},
			b:    Cursor{LastSyncedAt: t1, LastID: "a"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestCursorAfterRecord(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cursor := Cursor{LastSyncedAt: t1, LastID: "m"}

	assert.True(t, cursor.AfterRecord(t1.Add(time.Second), "a"))
	assert.True(t, cursor.AfterRecord(t1, "n"))
	assert.False(t, cursor.AfterRecord(t1, "m"))
	assert.False(t, cursor.AfterRecord(t1.Add(-time.Second), "z"))

	// The zero cursor admits everything.
	assert.True(t, Cursor{}.AfterRecord(time.Unix(0, 1).UTC(), ""))
}

func TestBlockActive(t *testing.T) {
	blockedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	block := &Block{
		Reason:    "schema_drift",
		BlockedAt: blockedAt,
		TTLMillis: time.Hour.Milliseconds(),
	}

	assert.Equal(t, time.Hour, block.TTL())

	assert.True(t, block.Active(blockedAt))
	assert.True(t, block.Active(blockedAt.Add(59*time.Minute)))
	assert.False(t, block.Active(blockedAt.Add(time.Hour)))
	assert.False(t, block.Active(blockedAt.Add(2*time.Hour)))

	var none *Block
	assert.False(t, none.Active(blockedAt))
}
