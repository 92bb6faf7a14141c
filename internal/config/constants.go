package config

// ConfigFileName is the configuration file searched for by FindConfig.
const ConfigFileName = "boxed.yaml"

// ConfigFileNames are all recognized configuration file names, in lookup order.
var ConfigFileNames = []string{"boxed.yaml", "boxed.yml"}

// Kind names (canonical, as printed by Kind.String)
const (
	Int32KindName  = "Int32"
	Int64KindName  = "Int64"
	BoolKindName   = "Bool"
	StrKindName    = "Str"
	UUIDKindName   = "Uuid"
	HostKindName   = "Host"
	OptionKindName = "Option"
	ChoiceKindName = "Choice"
	MapKindName    = "Map"
)

// Option shape names
const (
	SomeCtorName = "Some"
	NoneCtorName = "None"
)

// Capability names
const (
	EqualityCapName   = "Equality"
	ComparableCapName = "Comparable"
	BoxableCapName    = "Boxable"
)

// Text collaborator modes
const (
	TextModeUnicode = "unicode"
	TextModeASCII   = "ascii"
)

// Output settings
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	FormatInspect = "inspect"
	FormatYAML    = "yaml"
	FormatJSON    = "json"
)
