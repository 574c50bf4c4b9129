package pipelines

import "github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"

// Plugin is opaque to the pipeline, it is whatever the bundler or dev server expects.
type Plugin any

// Adapter converts a bundler plugin to the convention of the tool running the pipeline.
type Adapter interface {
	Name() string
	Adapt(plugin Plugin) Plugin
}

// DevServerPlugin is a bundler plugin wrapped for the interactive dev server.
type DevServerPlugin struct {
	Plugin Plugin
}

var (
	DevAdapter   Adapter = devAdapter{}
	BuildAdapter Adapter = buildAdapter{}
)

type devAdapter struct{}

func (devAdapter) Name() string {
	return "dev-server"
}

// Falsy plugins are returned unwrapped so that Build still drops them.
func (devAdapter) Adapt(plugin Plugin) Plugin {
	if coreutils.IsFalsy(plugin) {
		return plugin
	}
	if wrapped, ok := plugin.(*DevServerPlugin); ok {
		return wrapped
	}
	return &DevServerPlugin{Plugin: plugin}
}

// Bundler plugins are used as is.
type buildAdapter struct{}

func (buildAdapter) Name() string {
	return "build"
}

func (buildAdapter) Adapt(plugin Plugin) Plugin {
	return plugin
}
