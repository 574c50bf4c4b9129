package components

// Options holds parsed option values, each under its literal and camel-cased name.
type Options map[string]any

func (o Options) Has(name string) bool {
	_, ok := o[name]
	return ok
}

func (o Options) GetString(name string) string {
	value, _ := o[name].(string)
	return value
}

func (o Options) GetBool(name string) bool {
	value, _ := o[name].(bool)
	return value
}

type Context struct {
	Options Options
	// Arguments no option definition claimed.
	Argv []string
}

func (c *Context) GetStringFlagValue(flagName string) string {
	return c.Options.GetString(flagName)
}

func (c *Context) GetBoolFlagValue(flagName string) bool {
	return c.Options.GetBool(flagName)
}
