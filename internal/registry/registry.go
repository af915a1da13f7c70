// internal/registry/registry.go
// Package registry defines the fixed, ordered set of benchmark inputs.
package registry

import (
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/compbench/internal/appconfig"
)

// TestCase is a named unit of source text benchmarked as one item.
type TestCase struct {
	Name   string
	Source string
}

const basicSwitchSource = `
function basicSwitch(x) {
    let result = 0;
    switch (x) {
        case 1: result = 10; break;
        case 2: result = 20; break;
        case 3: result = 30; break;
        default: result = 0;
    }
    return result;
}
`

const fallthroughSwitchSource = `
function fallthroughSwitch(x) {
    let result = 0;
    switch (x) {
        case 1:
            result += 10;
        case 2:
            result += 20;
            break;
        case 3:
            result += 30;
        case 4:
            result += 40;
            break;
        default:
            result = 0;
    }
    return result;
}
`

const complexSwitchSource = `
function complexSwitch(x) {
    let result = 0;
    switch (x) {
        case 1:
            for (let i = 0; i < 5; i++) {
                result += i;
            }
            break;
        case 2:
            if (result > 0) {
                result *= 2;
            } else {
                result = 10;
            }
            break;
        case 3:
            while (result < 100) {
                result += 10;
            }
            break;
        default:
            result = -1;
    }
    return result;
}
`

// manyCasesSource generates a switch statement with the given number of cases.
func manyCasesSource(caseCount int) string {
	var b strings.Builder
	b.WriteString("function manyCasesSwitch(x) {\n    let result = 0;\n    switch (x) {\n")
	for i := 1; i <= caseCount; i++ {
		fmt.Fprintf(&b, "        case %d: result = %d; break;\n", i, i*10)
	}
	b.WriteString("        default: result = 0;\n    }\n    return result;\n}\n")
	return b.String()
}

// Default returns the built-in ordered list of test cases.
func Default() []TestCase {
	return []TestCase{
		{Name: "Basic Switch (3 cases)", Source: basicSwitchSource},
		{Name: "Switch with 20 cases", Source: manyCasesSource(20)},
		{Name: "Switch with fallthrough", Source: fallthroughSwitchSource},
		{Name: "Complex switch with nested control flow", Source: complexSwitchSource},
	}
}

// FromConfig builds the registry from configuration-supplied cases, falling
// back to the built-in list when the configuration names none. Inline sources
// are used as-is; file-backed cases are read eagerly so a missing file fails
// the run before any measurement starts.
func FromConfig(cfg *appconfig.Config) ([]TestCase, error) {
	if cfg == nil || len(cfg.Cases) == 0 {
		return Default(), nil
	}

	cases := make([]TestCase, 0, len(cfg.Cases))
	for _, cc := range cfg.Cases {
		tc := TestCase{Name: cc.Name, Source: cc.Source}
		if cc.File != "" {
			data, err := os.ReadFile(cc.File)
			if err != nil {
				return nil, fmt.Errorf("read source for case %q: %w", cc.Name, err)
			}
			tc.Source = string(data)
		}
		if strings.TrimSpace(tc.Source) == "" {
			return nil, fmt.Errorf("case %q has empty source text", cc.Name)
		}
		cases = append(cases, tc)
	}
	return cases, nil
}
