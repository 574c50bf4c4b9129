package components

type Flag interface {
	GetName() string
	GetAlias() string
	GetDescription() string
	IsHidden() bool
}

type StringFlag struct {
	Name string
	// Single character, used as -x.
	Alias       string
	Description string
	// A flag with default value cannot be mandatory.
	DefaultValue string
	Mandatory    bool
	// Value used when the flag is given without a value, e.g. --spa.
	NoOptDefault string
	// The first positional argument fills the default option.
	DefaultOption bool
	Hidden        bool
}

func (f StringFlag) GetName() string {
	return f.Name
}

func (f StringFlag) GetAlias() string {
	return f.Alias
}

func (f StringFlag) GetDescription() string {
	return f.Description
}

func (f StringFlag) IsHidden() bool {
	return f.Hidden
}

func (f StringFlag) GetDefault() string {
	return f.DefaultValue
}

func (f StringFlag) isMandatory() bool {
	return f.Mandatory
}

type BoolFlag struct {
	Name         string
	Alias        string
	Description  string
	DefaultValue bool
	Hidden       bool
}

func (f BoolFlag) GetName() string {
	return f.Name
}

func (f BoolFlag) GetAlias() string {
	return f.Alias
}

func (f BoolFlag) GetDescription() string {
	return f.Description
}

func (f BoolFlag) IsHidden() bool {
	return f.Hidden
}

func (f BoolFlag) GetDefault() bool {
	return f.DefaultValue
}
