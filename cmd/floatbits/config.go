package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/avdva/floatbits"
)

// config holds the settings, which can be read from a yaml file.
// Non-zero exponent and significand widths override the ones of the layout.
type config struct {
	Layout      string `json:"layout"`
	Exponent    int    `json:"exponent"`
	Significand int    `json:"significand"`
	LogLevel    string `json:"logLevel"`
	JSON        bool   `json:"json"`
}

func defaultConfig() config {
	return config{
		Layout:   "binary64",
		LogLevel: logrus.InfoLevel.String(),
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// fieldLayout returns the layout for new bit fields.
// Widths outside of the supported bounds are clamped.
func (c config) fieldLayout(log logrus.FieldLogger) (floatbits.Layout, error) {
	l, err := floatbits.LayoutByName(c.Layout)
	if err != nil {
		return l, errors.Wrap(err, "bad layout")
	}
	if c.Exponent != 0 {
		l.ExponentBits = c.Exponent
	}
	if c.Significand != 0 {
		l.SignificandBits = c.Significand
	}
	if clamped := l.Clamped(); clamped != l {
		log.WithFields(logrus.Fields{
			"requested": l.String(),
			"clamped":   clamped.String(),
		}).Warn("field widths out of range")
		l = clamped
	}
	return l, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "bad log level")
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	return log, nil
}
