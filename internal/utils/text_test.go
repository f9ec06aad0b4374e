package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinList(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{"empty", nil, ""},
		{"one", []string{"a hide"}, "a hide"},
		{"two", []string{"a hide", "some meat"}, "a hide and some meat"},
		{"three", []string{"a hide", "some meat", "a bone"}, "a hide, some meat and a bone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinList(tt.items))
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "The corpse of a deer", Capitalize("the corpse of a deer"))
	assert.Equal(t, "Bob skins the corpse of a deer.", Capitalize("bob skins the corpse of a deer."))
	assert.Equal(t, "Deer", Capitalize("deer"))
	assert.Equal(t, "McGregor waves", Capitalize("McGregor waves"))
}

func TestCapitalize_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				results[i] = Capitalize("the corpse of a grey wolf")
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, "The corpse of a grey wolf", got)
	}
}
