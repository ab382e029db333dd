package domain

import (
	"fmt"
	"sort"
)

// Kit describes a toolchain selection: compilers, an optional toolchain
// file, an optional generator, and extra cache settings. Kits are defined in
// kits.yaml and applied to a driver through SetKit.
type Kit struct {
	Name          string
	Compilers     map[string]string
	ToolchainFile string
	Generator     string
	Settings      map[string]string
	Environment   map[string]string
}

// ConfigureArgs renders the kit as CMake -D arguments for compilers, the
// toolchain file and settings. The generator is not included; it is resolved
// against the project configuration by the caller. Output is deterministic
// (sorted) so configure invocations are reproducible.
func (k Kit) ConfigureArgs() []string {
	var args []string

	if k.ToolchainFile != "" {
		args = append(args, fmt.Sprintf("-DCMAKE_TOOLCHAIN_FILE=%s", NormalizeSourcePath(k.ToolchainFile)))
	}

	for _, lang := range sortedKeys(k.Compilers) {
		args = append(args, fmt.Sprintf("-DCMAKE_%s_COMPILER=%s", lang, k.Compilers[lang]))
	}
	for _, key := range sortedKeys(k.Settings) {
		args = append(args, fmt.Sprintf("-D%s=%s", key, k.Settings[key]))
	}

	return args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
