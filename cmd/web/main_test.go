package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPostgres(t *testing.T) {
	assert.True(t, isPostgres("postgres://user@localhost/bbn"))
	assert.True(t, isPostgres("postgresql://localhost/bbn"))
	assert.False(t, isPostgres("sqlite://baybayin.db"))
	assert.False(t, isPostgres("baybayin.db"))
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		splitOrigins(" https://a.example, ,https://b.example "))
	assert.Nil(t, splitOrigins(""))
}
