package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientOptions(t *testing.T) {
	opts := Config{URI: "mongodb://localhost:27017", Database: "netbeans"}.clientOptions()

	require.NotNil(t, opts.AppName)
	assert.Equal(t, appName, *opts.AppName)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)

	opts = Config{URI: "mongodb://localhost:27017", Timeout: time.Second}.clientOptions()
	assert.Equal(t, time.Second, *opts.ConnectTimeout)
}

func TestConnect_RequiresDatabase(t *testing.T) {
	_, _, err := Connect(context.Background(), Config{URI: "mongodb://localhost:27017"})
	assert.Error(t, err)
}
