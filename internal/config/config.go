package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Capacity  int    `yaml:"capacity,omitempty"`  // initial line sequence capacity hint
	Trim      *bool  `yaml:"trim,omitempty"`      // trim surrounding whitespace of loaded lines
	StripANSI *bool  `yaml:"stripansi,omitempty"` // drop terminal escape sequences on load
	Watch     bool   `yaml:"watch,omitempty"`     // reload the document on external change
	Theme     string `yaml:"theme,omitempty"`
	TabWidth  int    `yaml:"tabwidth,omitempty"`
}

func (c Config) TrimLines() bool { return c.Trim == nil || *c.Trim }
func (c Config) StripEscapes() bool { return c.StripANSI == nil || *c.StripANSI }

var DefaultConfig = Config{
	Capacity: 16,
	Theme:    "default",
	TabWidth: 4,
}

// GetConfig reads the file named by SEQEDIT_CONF (seqedit.yaml by default)
// and overrides the defaults with every value it sets. A missing or broken
// file yields the defaults.
func GetConfig() Config {
	conffilename, exists := os.LookupEnv("SEQEDIT_CONF")
	if !exists { conffilename = "seqedit.yaml" }
	return ReadConfig(conffilename)
}

func ReadConfig(conffilename string) Config {
	config := DefaultConfig

	data, err := os.ReadFile(conffilename)
	if err != nil { return config }

	var yamlConfig Config
	err = yaml.Unmarshal(data, &yamlConfig)
	if err != nil { return config }

	// read yaml config and override
	if yamlConfig.Capacity > 0 { config.Capacity = yamlConfig.Capacity }
	if yamlConfig.Trim != nil { config.Trim = yamlConfig.Trim }
	if yamlConfig.StripANSI != nil { config.StripANSI = yamlConfig.StripANSI }
	if yamlConfig.Watch { config.Watch = true }
	if yamlConfig.Theme != "" { config.Theme = yamlConfig.Theme }
	if yamlConfig.TabWidth > 0 { config.TabWidth = yamlConfig.TabWidth }

	return config
}
