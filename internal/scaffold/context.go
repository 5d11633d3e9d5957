package scaffold

import (
	"strings"
	"unicode"

	"github.com/madellimac/hulotte/internal/project"
)

// Fixed names used by the generated sources.
const (
	DefaultModuleName = "MyModule"
	HardwareTop       = "universal_simulation_top"
	HardwareWrapper   = "HardwareSimulation"
	WaveFile          = "waveform.vcd"
)

// TemplateContext is the data every template is rendered with.
type TemplateContext struct {
	ProjectName  string
	StreamPURoot string
	AFF3CTRoot   string
	HulotteRoot  string

	UseAFF3CT   bool
	UseCustom   bool
	UseHardware bool

	ModuleName      string // C++ class of the custom stage
	ModuleVar       string // its variable name in main.cpp
	HardwareTop     string
	HardwareWrapper string
	WaveFile        string
}

// NewTemplateContext mirrors cfg into template data.
func NewTemplateContext(cfg project.Configuration) TemplateContext {
	return TemplateContext{
		ProjectName:     cfg.Name,
		StreamPURoot:    cfg.StreamPURoot,
		AFF3CTRoot:      cfg.AFF3CTRoot,
		HulotteRoot:     cfg.ToolRoot,
		UseAFF3CT:       cfg.UseAFF3CT,
		UseCustom:       cfg.UseCustom,
		UseHardware:     cfg.UseHardware,
		ModuleName:      DefaultModuleName,
		ModuleVar:       SnakeCase(DefaultModuleName),
		HardwareTop:     HardwareTop,
		HardwareWrapper: HardwareWrapper,
		WaveFile:        WaveFile,
	}
}

// SnakeCase converts a CamelCase identifier to snake_case
// ("MyModule" → "my_module", "FIRFilter" → "fir_filter").
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
