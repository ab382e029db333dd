package config

// projectFile represents the structure of the cmkit.yaml configuration file.
type projectFile struct {
	Version     string            `yaml:"version"`
	Source      string            `yaml:"source"`
	Binary      string            `yaml:"binary"`
	CMake       string            `yaml:"cmake"`
	Generator   string            `yaml:"generator"`
	Args        []string          `yaml:"args"`
	Environment map[string]string `yaml:"environment"`
}

// kitsFile represents the structure of the kits.yaml file.
type kitsFile struct {
	Kits []kitDTO `yaml:"kits"`
}

// kitDTO represents a kit definition in the configuration.
type kitDTO struct {
	Name          string            `yaml:"name"`
	Compilers     map[string]string `yaml:"compilers"`
	ToolchainFile string            `yaml:"toolchainFile"`
	Generator     string            `yaml:"generator"`
	Settings      map[string]string `yaml:"settings"`
	Environment   map[string]string `yaml:"environment"`
}
