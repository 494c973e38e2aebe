package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Env struct {
		ServiceName string `yaml:"serviceName"`
		Debug       bool   `yaml:"debug"`
	} `yaml:"env"`
	HTTP struct {
		Port     int `yaml:"port"`
		Timeouts struct {
			ReadTimeout time.Duration `yaml:"readTimeout"`
		} `yaml:"timeouts"`
	} `yaml:"http"`
	PubSub  *PubSubConfig  `yaml:"pubsub"`
	Metrics *MetricsConfig `yaml:"metrics"`
}

const testYAML = `
env:
  serviceName: creatorhub
  debug: false
http:
  port: 8080
  timeouts:
    readTimeout: 10s
pubsub:
  provider: local
  topicId: account-onboarded
metrics:
  enabled: true
`

func writeConfig(t *testing.T, name, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeConfig(t, "test", testYAML)

	cfg, err := LoadWithEnv[testConfig]("test")
	require.NoError(t, err)

	assert.Equal(t, "creatorhub", cfg.Env.ServiceName)
	assert.False(t, cfg.Env.Debug)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.PubSub)
	assert.Equal(t, "local", cfg.PubSub.Provider)
	assert.Equal(t, "account-onboarded", cfg.PubSub.TopicID)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	writeConfig(t, "test", testYAML)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PUBSUB_TOPICID", "onboarding-events")
	t.Setenv("ENV_DEBUG", "true")

	cfg, err := LoadWithEnv[testConfig]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "onboarding-events", cfg.PubSub.TopicID)
	assert.True(t, cfg.Env.Debug)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[testConfig]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}
