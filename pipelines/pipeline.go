package pipelines

import (
	"reflect"
	"runtime"

	"github.com/jfrog/gofrog/datastructures"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/coreutils"
	"github.com/ringtoolkit/ring-toolkit-core/utils/log"
)

// StepFunc returns the plugins of a step, adapted with the given adapter.
type StepFunc func(adapter Adapter, parameters map[string]any) ([]Plugin, error)

// Step runs only when the pipeline flavor is one of Flavors, or when Flavors is empty.
type Step struct {
	Func    StepFunc
	Flavors []string
	// Used in error logs. Defaults to the function name.
	Name string
}

func NewStep(fn StepFunc, flavors ...string) *Step {
	return &Step{Func: fn, Flavors: flavors}
}

func (s *Step) identity() string {
	if s.Name != "" {
		return s.Name
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(s.Func).Pointer()); fn != nil {
		return fn.Name()
	}
	return "anonymous step"
}

type Options struct {
	Flavor string
	// Flavors the pipeline accepts. Empty accepts any flavor.
	HandledFlavors []string
	// Flavors built with the dev server adapter. Nil defaults to HandledFlavors.
	DevFlavors []string
	// Defaults to the toolkit logger.
	Logger log.Logger
}

type Pipeline struct {
	flavor     string
	devFlavors []string
	logger     log.Logger
}

func NewPipeline(options Options) (*Pipeline, error) {
	handledFlavors := datastructures.MakeSet[string]()
	for _, flavor := range options.HandledFlavors {
		handledFlavors.Add(flavor)
	}
	if len(options.HandledFlavors) > 0 && !handledFlavors.Exists(options.Flavor) {
		return nil, errorutils.CheckError(&UnknownFlavorError{Flavor: options.Flavor})
	}
	devFlavors := options.DevFlavors
	if devFlavors == nil {
		devFlavors = options.HandledFlavors
	}
	logger := options.Logger
	if logger == nil {
		logger = &log.ToolkitLogger{}
	}
	return &Pipeline{flavor: options.Flavor, devFlavors: devFlavors, logger: logger}, nil
}

func (p *Pipeline) Flavor() string {
	return p.flavor
}

// FlavorIn reports whether the pipeline flavor is one of flavors. No flavors means any flavor.
func (p *Pipeline) FlavorIn(flavors ...string) bool {
	if len(flavors) == 0 {
		return true
	}
	candidates := datastructures.MakeSet[string]()
	for _, flavor := range flavors {
		candidates.Add(flavor)
	}
	return candidates.Exists(p.flavor)
}

// WithFlavors fails when the pipeline flavor is not one of flavors.
func (p *Pipeline) WithFlavors(flavors ...string) error {
	if !p.FlavorIn(flavors...) {
		return errorutils.CheckError(&UnknownFlavorError{Flavor: p.flavor})
	}
	return nil
}

// Adapter is the dev server adapter for dev flavors, the build adapter otherwise.
func (p *Pipeline) Adapter() Adapter {
	if p.FlavorIn(p.devFlavors...) {
		return DevAdapter
	}
	return BuildAdapter
}

// Build runs the steps matching the pipeline flavor, in order, and flattens their plugins.
// Falsy plugins are dropped. A failing step fails the whole build.
func (p *Pipeline) Build(parameters map[string]any, steps []*Step) ([]Plugin, error) {
	adapter := p.Adapter()
	plugins := []Plugin{}
	for _, step := range steps {
		if step == nil || step.Func == nil || !p.FlavorIn(step.Flavors...) {
			continue
		}
		stepPlugins, err := p.runStep(step, adapter, parameters)
		if err != nil {
			return nil, err
		}
		for _, plugin := range stepPlugins {
			if !coreutils.IsFalsy(plugin) {
				plugins = append(plugins, plugin)
			}
		}
	}
	return plugins, nil
}

func (p *Pipeline) runStep(step *Step, adapter Adapter, parameters map[string]any) (plugins []Plugin, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Pipeline step " + coreutils.PrintYellow(step.identity()) + " panicked")
			panic(r)
		}
	}()
	plugins, err = step.Func(adapter, parameters)
	if err != nil {
		p.logger.Error("Pipeline step " + coreutils.PrintYellow(step.identity()) + " failed")
		return nil, &StepError{Step: step.identity(), Err: err}
	}
	return plugins, nil
}
