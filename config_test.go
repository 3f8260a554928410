package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/valyala/image-resizer/imagick"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("image-resizer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resizer.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(newTestFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.ListenAddr)
	assert.Equal(t, uint(75), cfg.DefaultCompressionQuality)
	assert.Equal(t, byteSize(10*1024*1024), cfg.MaxImageSize)
	assert.Equal(t, byteSize(100*1024*1024), cfg.MaxUpstreamCacheSize)
	assert.Equal(t, time.Hour, cfg.UpstreamCacheTTL)
	assert.Empty(t, cfg.MemcachedServers)
	assert.Equal(t, imagick.FILTER_UNDEFINED, cfg.Filter.FilterType)
	assert.Equal(t, "Verdana", cfg.AnnotationFont)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig(newTestFlagSet(), []string{
		"-maxImageSize", "2MB",
		"-memcachedServers", "10.0.0.1:11211, 10.0.0.2:11211",
		"-filter", "lanczos",
		"-logLevel", "debug",
		"-upstreamCacheTTL", "5m",
	})
	require.NoError(t, err)

	assert.Equal(t, byteSize(2000000), cfg.MaxImageSize)
	assert.Equal(t, serverList{"10.0.0.1:11211", "10.0.0.2:11211"}, cfg.MemcachedServers)
	assert.Equal(t, imagick.FILTER_LANCZOS, cfg.Filter.FilterType)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.UpstreamCacheTTL)
}

func TestParseConfigFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr = ":9000"
default_compression_quality = 60
max_image_size = "1MiB"
upstream_cache_ttl = "10m"
memcached_servers = ["cache:11211"]
filter = "Mitchell"
log_level = "warn"

[s3]
bucket = "photos"
region = "us-east-1"

[limits]
thread = "2"
memory = "256MiB"
`)

	cfg, err := parseConfig(newTestFlagSet(), []string{"-config", path, "-listenAddr", ":7000"})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.ListenAddr, "explicit flags win over the file")
	assert.Equal(t, uint(60), cfg.DefaultCompressionQuality)
	assert.Equal(t, byteSize(1<<20), cfg.MaxImageSize)
	assert.Equal(t, 10*time.Minute, cfg.UpstreamCacheTTL)
	assert.Equal(t, serverList{"cache:11211"}, cfg.MemcachedServers)
	assert.Equal(t, imagick.FILTER_MITCHELL, cfg.Filter.FilterType)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Equal(t, "photos", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "foobar", cfg.S3.AccessKey, "keys missing from the file keep their defaults")
	assert.Equal(t, map[string]byteSize{"thread": 2, "memory": 256 << 20}, cfg.Limits)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		file string
	}{
		{name: "bad size", args: []string{"-maxImageSize", "lots"}},
		{name: "zero size", args: []string{"-maxImageSize", "0"}},
		{name: "bad filter", args: []string{"-filter", "blurry"}},
		{name: "bad quality", args: []string{"-defaultCompressionQuality", "150"}},
		{name: "missing file", args: []string{"-config", "/nonexistent/resizer.toml"}},
		{name: "unknown key", file: `listen = ":1"`},
		{name: "bad toml", file: `listen_addr = `},
		{name: "unknown limit", file: "[limits]\nbananas = \"1\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.file != "" {
				args = []string{"-config", writeConfig(t, tt.file)}
			}
			_, err := parseConfig(newTestFlagSet(), args)
			assert.Error(t, err)
		})
	}
}

func TestByteSize(t *testing.T) {
	var b byteSize
	require.NoError(t, b.Set("1.5KiB"))
	assert.Equal(t, byteSize(1536), b)
	assert.Equal(t, "1.5 KiB", b.String())
	require.NoError(t, b.UnmarshalText([]byte("42")))
	assert.Equal(t, byteSize(42), b)
}

func TestApplyResourceLimits(t *testing.T) {
	old := imagick.GetResourceLimit(imagick.RESOURCE_THREAD)
	t.Cleanup(func() { _ = imagick.SetResourceLimit(imagick.RESOURCE_THREAD, old) })

	require.NoError(t, applyResourceLimits(map[string]byteSize{"Thread": 1}, zap.NewNop()))
	assert.Equal(t, int64(1), imagick.GetResourceLimit(imagick.RESOURCE_THREAD))

	assert.Error(t, applyResourceLimits(map[string]byteSize{"bananas": 1}, zap.NewNop()))
}
