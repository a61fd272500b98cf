// Package config loads the site configuration the landing page reads its
// titles and chrome from, and the process settings of the CLI.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable the site configuration and
// the process settings are read from.
const EnvPrefix = "LANDING"

//go:embed defaults.yaml
var defaults []byte

// Site is the global, build-time configuration shared by every page.
type Site struct {
	Title   string `mapstructure:"title" yaml:"title"`
	Tagline string `mapstructure:"tagline" yaml:"tagline"`
	URL     string `mapstructure:"url" yaml:"url"`
	BaseURL string `mapstructure:"baseURL" yaml:"baseURL"`

	// CustomFields is optional. Read it through Hero, never directly.
	CustomFields *CustomFields `mapstructure:"customFields" yaml:"customFields,omitempty"`

	Signup Signup    `mapstructure:"signup" yaml:"signup"`
	Navbar []NavLink `mapstructure:"navbar" yaml:"navbar"`
	Footer Footer    `mapstructure:"footer" yaml:"footer"`
}

// CustomFields holds the hero strings of the landing page.
type CustomFields struct {
	HeroTitle    string `mapstructure:"heroTitle" yaml:"heroTitle"`
	HeroSubTitle string `mapstructure:"heroSubTitle" yaml:"heroSubTitle"`
}

// Signup configures the signup form widget.
type Signup struct {
	// Action is the external endpoint the form posts to. The form is
	// rendered without an action when it's empty.
	Action      string `mapstructure:"action" yaml:"action"`
	EmailField  string `mapstructure:"emailField" yaml:"emailField"`
	ButtonLabel string `mapstructure:"buttonLabel" yaml:"buttonLabel"`
}

// NavLink is one entry of the navbar or footer.
type NavLink struct {
	Label string `mapstructure:"label" yaml:"label"`
	To    string `mapstructure:"to" yaml:"to"`
}

// Footer is the page footer chrome.
type Footer struct {
	Copyright string    `mapstructure:"copyright" yaml:"copyright"`
	Links     []NavLink `mapstructure:"links" yaml:"links"`
}

// Hero returns the hero strings. A nil Site or a Site without customFields
// yields empty strings.
func (s *Site) Hero() CustomFields {
	if s == nil || s.CustomFields == nil {
		return CustomFields{}
	}
	return *s.CustomFields
}

// GetTagline returns the tagline, or an empty string for a nil Site.
func (s *Site) GetTagline() string {
	if s == nil {
		return ""
	}
	return s.Tagline
}

// GetTitle returns the site title, or an empty string for a nil Site.
func (s *Site) GetTitle() string {
	if s == nil {
		return ""
	}
	return s.Title
}

// GetSignup returns the signup form settings, filling in the field name and
// button label when they aren't configured.
func (s *Site) GetSignup() Signup {
	var signup Signup
	if s != nil {
		signup = s.Signup
	}
	if signup.EmailField == "" {
		signup.EmailField = "email"
	}
	if signup.ButtonLabel == "" {
		signup.ButtonLabel = "Subscribe"
	}
	return signup
}

// GetBaseURL returns the configured base URL, or an empty string for a nil
// Site.
func (s *Site) GetBaseURL() string {
	if s == nil {
		return ""
	}
	return s.BaseURL
}

// Load builds the site configuration from the embedded defaults, then the
// config file, then LANDING_ environment variables, each overriding the
// previous. An empty file looks for landing.yaml in the working directory
// and carries on without it if there isn't one.
func Load(file string) (*Site, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, fmt.Errorf("error reading default config: %w", err)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("landing")
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var site Site
	if err := v.Unmarshal(&site); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return &site, nil
}

// YAML renders the configuration the way a config file would spell it.
func (s *Site) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("error encoding config: %w", err)
	}
	return out, nil
}
