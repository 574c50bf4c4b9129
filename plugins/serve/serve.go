package serve

import (
	"context"
	"path/filepath"

	"github.com/ringtoolkit/ring-toolkit-core/common/configuration"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/common"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/components"
	"github.com/ringtoolkit/ring-toolkit-core/plugins/devserver"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

const (
	RootDir = "root-dir"
	Cors    = "cors"
	Spa     = "spa"
	SslKey  = "ssl-key"
	SslCert = "ssl-cert"

	appIndex         = "app-index"
	http2            = "http2"
	defaultAppIndex  = "index.html"
	defaultCorsValue = "*"
)

var serveOptions = []components.Flag{
	components.StringFlag{Name: RootDir, DefaultOption: true, Description: "Root directory to serve files from."},
	components.StringFlag{Name: Cors, Alias: "C", NoOptDefault: defaultCorsValue, Description: "Enable CORS, optionally for a single origin."},
	components.StringFlag{Name: Spa, Alias: "S", NoOptDefault: defaultAppIndex, Description: "Enable SPA fallback, to index.html unless a file is given."},
	components.StringFlag{Name: SslKey, Description: "Path to SSL key. Enables SSL."},
	components.StringFlag{Name: SslCert, Description: "Path to SSL cert. Enables SSL."},
}

func NewExecutable(runner common.Runner) *components.Executable {
	executable := &components.Executable{
		Summary: "launch @web/dev-server configured for static serving, accept any additional wds parameter",
		Options: serveOptions,
	}
	executable.Command = func(ctx context.Context, conf any, c *components.Context, logger log.Logger) error {
		// The serve options are consumed here, the dev server only sees what is left.
		options, argv := configuration.SplitCommandCliArgs(executable, c.Argv)
		if c.Options != nil {
			options = c.Options
		}
		return Serve(ctx, runner, conf, options, argv, logger)
	}
	return executable
}

// Serve starts the dev server as a static file server. The options override the matching configuration keys.
func Serve(ctx context.Context, runner common.Runner, conf any, options components.Options, argv []string, logger log.Logger) (err error) {
	logger.Log("Preparing static serve options")
	params := staticParams(options)

	var base map[string]any
	if !coreutils.IsFalsy(conf) {
		configs, err := common.ToConfigMaps(conf)
		if err != nil {
			return err
		}
		if len(configs) > 1 {
			logger.Warn("Only the first configuration is used by " + devserver.DisplayName)
		}
		if len(configs) > 0 {
			base = configs[0]
		}
	}

	if origin := options.GetString(Cors); origin != "" {
		if hasCustomConfig(base, argv) {
			logger.Warn("CORS cannot be enabled together with a custom " + devserver.DisplayName + " configuration file, add a CORS middleware to it to allow origin " + origin)
		} else {
			var corsConfig string
			var cleanup func() error
			if corsConfig, cleanup, err = writeCorsConfig(origin); err != nil {
				return err
			}
			defer func() {
				if cleanupErr := cleanup(); err == nil {
					err = cleanupErr
				}
			}()
			params[configKey] = corsConfig
		}
	}

	if len(params) == 0 && base == nil {
		return devserver.Start(ctx, runner, nil, argv, logger)
	}
	return devserver.Start(ctx, runner, mergeParams(base, params), argv, logger)
}

func staticParams(options components.Options) map[string]any {
	params := map[string]any{}
	rootDir := options.GetString(RootDir)
	if rootDir != "" {
		params[RootDir] = rootDir
	}
	if spa := options.GetString(Spa); spa != "" {
		if rootDir == "" {
			rootDir = "/"
		}
		params[appIndex] = filepath.Join(rootDir, spa)
	}
	sslKey, sslCert := options.GetString(SslKey), options.GetString(SslCert)
	if sslKey != "" || sslCert != "" {
		params[http2] = true
		if sslKey != "" {
			params[SslKey] = sslKey
		}
		if sslCert != "" {
			params[SslCert] = sslCert
		}
	}
	return params
}

// Keys are compared normalized, so rootDir in the configuration is replaced by a root-dir option.
func mergeParams(base, params map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(params))
	overridden := common.NormalizeKeys(params)
	for key, value := range base {
		if _, ok := overridden[common.NormalizeKey(key)]; ok {
			continue
		}
		merged[key] = value
	}
	for key, value := range params {
		merged[key] = value
	}
	return merged
}
