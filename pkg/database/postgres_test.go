package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"pulseboard/pkg/logging"
)

func TestConnectRequiresURL(t *testing.T) {
	_, err := Connect(Config{}, logging.NewLogger())
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
}

func TestIsUndefinedTable(t *testing.T) {
	undefined := &pq.Error{Code: "42P01"}
	assert.True(t, IsUndefinedTable(undefined))
	assert.True(t, IsUndefinedTable(fmt.Errorf("query failed: %w", undefined)))

	other := &pq.Error{Code: "23505"}
	assert.False(t, IsUndefinedTable(other))
	assert.False(t, IsUndefinedTable(errors.New("plain error")))
	assert.False(t, IsUndefinedTable(nil))
}
