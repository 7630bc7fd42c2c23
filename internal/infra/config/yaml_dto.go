package config

type YAMLFile struct {
	Domgen YAMLConfig `yaml:"domgen"`
}

type YAMLConfig struct {
	Naming YAMLNaming `yaml:"naming"`
	Paths  YAMLPaths  `yaml:"paths"`
}

type YAMLNaming struct {
	// Pointer so an explicit empty root namespace can be told apart from an omitted one.
	RootNamespace *string  `yaml:"root_namespace" validate:"omitempty,max=64,excludesall=/ "`
	Separator     string   `yaml:"separator" validate:"omitempty,max=4,excludesall=/ "`
	CodeSeparator string   `yaml:"code_separator" validate:"omitempty,max=4,excludesall=/ "`
	Extension     string   `yaml:"extension" validate:"omitempty,max=16,excludesall=/ "`
	ReservedWords []string `yaml:"reserved_words" validate:"omitempty,dive,required,alphanum"`
}

type YAMLPaths struct {
	StubsDir     string `yaml:"stubs_dir"`
	FactoriesDir string `yaml:"factories_dir" validate:"omitempty,excludesall= "`
}
