package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/valyala/image-resizer/imagick"
)

type config struct {
	ListenAddr                string              `toml:"listen_addr"`
	DefaultCompressionQuality uint                `toml:"default_compression_quality"`
	MaxImageSize              byteSize            `toml:"max_image_size"`
	MaxUpstreamCacheSize      byteSize            `toml:"max_upstream_cache_size"`
	UpstreamCacheTTL          time.Duration       `toml:"upstream_cache_ttl"`
	MemcachedServers          serverList          `toml:"memcached_servers"`
	UpstreamTimeout           time.Duration       `toml:"upstream_timeout"`
	Filter                    filterType          `toml:"filter"`
	AnnotationFont            string              `toml:"annotation_font"`
	LogLevel                  zapcore.Level       `toml:"log_level"`
	S3                        s3Config            `toml:"s3"`
	Limits                    map[string]byteSize `toml:"limits"`
}

type s3Config struct {
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
}

// bindFlags registers the command line flags on fs. The flag defaults are
// written to cfg right away.
func bindFlags(fs *flag.FlagSet, cfg *config) *string {
	cfg.MaxImageSize = 10 * 1024 * 1024
	cfg.MaxUpstreamCacheSize = 100 * 1024 * 1024
	cfg.LogLevel = zapcore.InfoLevel

	configFile := fs.String("config", "", "Path to TOML config file. Flags given on the command line override its values")
	fs.UintVar(&cfg.DefaultCompressionQuality, "defaultCompressionQuality", 75, "Default compression quality for images. It may be overrided by compressionQuality parameter")
	fs.StringVar(&cfg.ListenAddr, "listenAddr", ":8081", "TCP address to listen to")
	fs.Var(&cfg.MaxImageSize, "maxImageSize", "The maximum image size which can be read from imageUrl, e.g. 10MiB")
	fs.Var(&cfg.MaxUpstreamCacheSize, "maxUpstreamCacheSize", "The maximum total size of images the resizer caches from upstream servers. Set to 0 to disable the in-memory cache")
	fs.DurationVar(&cfg.UpstreamCacheTTL, "upstreamCacheTTL", time.Hour, "How long images loaded from upstream stay cached")
	fs.Var(&cfg.MemcachedServers, "memcachedServers", "Comma-separated memcached servers for caching upstream images. Replaces the in-memory cache when set")
	fs.DurationVar(&cfg.UpstreamTimeout, "upstreamTimeout", 10*time.Second, "Timeout for loading a single image from imageUrl")
	fs.Var(&cfg.Filter, "filter", "Resize filter, e.g. Lanczos. Thumbnailing is used when empty")
	fs.StringVar(&cfg.AnnotationFont, "annotationFont", "Verdana", "Font for bottomAnnotation and centerAnnotation. ImageMagick picks its default font when empty")
	fs.Var(&cfg.LogLevel, "logLevel", "Logging level: debug, info, warn or error")
	fs.StringVar(&cfg.S3.AccessKey, "s3AccessKey", "foobar", "Access key for Amazon S3")
	fs.StringVar(&cfg.S3.Bucket, "s3Bucket", "bucket", "Amazon S3 bucket for loading images")
	fs.StringVar(&cfg.S3.Region, "s3Region", "eu-west-1", "Amazon region to route S3 requests to")
	fs.StringVar(&cfg.S3.SecretKey, "s3SecretKey", "foobaz", "Secret key for Amazon S3")
	return configFile
}

// parseConfig reads the flags in args. When -config is given, the file is
// loaded over the defaults and the flags are applied once more, so the
// command line wins.
func parseConfig(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := &config{}
	configFile := bindFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *configFile != "" {
		if err := loadConfigFile(*configFile, cfg); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config file: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}
	return nil
}

func (cfg *config) validate() error {
	if cfg.DefaultCompressionQuality > 100 {
		return fmt.Errorf("defaultCompressionQuality=%d must not exceed 100", cfg.DefaultCompressionQuality)
	}
	if cfg.MaxImageSize == 0 {
		return fmt.Errorf("maxImageSize must be positive")
	}
	for name := range cfg.Limits {
		if _, err := imagick.ParseResourceType(name); err != nil {
			return fmt.Errorf("unknown resource limit %q: %w", name, err)
		}
	}
	return nil
}

// applyResourceLimits passes the [limits] section to ImageMagick. It must run
// after imagick.Initialize.
func applyResourceLimits(limits map[string]byteSize, logger *zap.Logger) error {
	for name, v := range limits {
		rt, err := imagick.ParseResourceType(name)
		if err != nil {
			return err
		}
		if err := imagick.SetResourceLimit(rt, int64(v)); err != nil {
			return fmt.Errorf("cannot set %s limit: %w", rt, err)
		}
		logger.Info("resource limit set", zap.Stringer("resource", rt), zap.Uint64("limit", uint64(v)))
	}
	return nil
}

// byteSize accepts plain numbers as well as human units such as "10MB" or
// "256MiB".
type byteSize uint64

func (b byteSize) String() string {
	return humanize.IBytes(uint64(b))
}

func (b *byteSize) Set(s string) error {
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*b = byteSize(n)
	return nil
}

func (b *byteSize) UnmarshalText(text []byte) error {
	return b.Set(string(text))
}

type serverList []string

func (sl serverList) String() string {
	return strings.Join(sl, ",")
}

func (sl *serverList) Set(s string) error {
	*sl = nil
	for _, server := range strings.Split(s, ",") {
		if server = strings.TrimSpace(server); server != "" {
			*sl = append(*sl, server)
		}
	}
	return nil
}

type filterType struct {
	imagick.FilterType
}

func (ft filterType) String() string {
	if ft.FilterType == imagick.FILTER_UNDEFINED {
		return ""
	}
	return ft.FilterType.String()
}

func (ft *filterType) Set(s string) error {
	if s == "" {
		ft.FilterType = imagick.FILTER_UNDEFINED
		return nil
	}
	t, err := imagick.ParseFilterType(s)
	if err != nil {
		return err
	}
	ft.FilterType = t
	return nil
}

func (ft *filterType) UnmarshalText(text []byte) error {
	return ft.Set(string(text))
}
