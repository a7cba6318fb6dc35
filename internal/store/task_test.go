package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/api/internal/store"
)

func TestPageNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		in   store.Page
		want store.Page
	}{
		{
			name: "valid page untouched",
			in:   store.Page{Number: 3, Size: 25},
			want: store.Page{Number: 3, Size: 25},
		},
		{
			name: "zero values get defaults",
			in:   store.Page{},
			want: store.Page{Number: store.DefaultPage, Size: store.DefaultPageSize},
		},
		{
			name: "negative number gets default",
			in:   store.Page{Number: -1, Size: 5},
			want: store.Page{Number: store.DefaultPage, Size: 5},
		},
		{
			name: "zero size gets default",
			in:   store.Page{Number: 2, Size: 0},
			want: store.Page{Number: 2, Size: store.DefaultPageSize},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.in.Normalize())
		})
	}
}

func TestPageOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, store.Page{Number: 1, Size: 10}.Offset())
	assert.Equal(t, 10, store.Page{Number: 2, Size: 10}.Offset())
	assert.Equal(t, 50, store.Page{Number: 11, Size: 5}.Offset())
}
