package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")

		conf := NewConfig()
		assert.Equal(t, "DEV", conf.Env)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "GeekPlay", conf.AppName)
		assert.Equal(t, ":8000", conf.Server.Address)
		assert.Equal(t, 5*time.Second, conf.Server.ShutdownTimeout)
		assert.Equal(t, "http://localhost:3003", conf.Services.Forum)
		assert.Equal(t, 10*time.Second, conf.Services.Timeout)
		assert.True(t, conf.Mock.Seed)
		assert.Empty(t, conf.Admin.Token)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_DEBUG", "false")
		t.Setenv("TEST_SERVICES_FORUM", "http://forum.internal:8080/")
		t.Setenv("TEST_SERVICES_TIMEOUT", "3s")
		t.Setenv("TEST_MOCK_SEED", "false")
		t.Setenv("TEST_ADMIN_TOKEN", "tok")

		conf := NewConfig()
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.False(t, conf.Debug)
		assert.Equal(t, "http://forum.internal:8080", conf.Services.Forum)
		assert.Equal(t, 3*time.Second, conf.Services.Timeout)
		assert.False(t, conf.Mock.Seed)
		assert.Equal(t, "tok", conf.Admin.Token)
	})
}
