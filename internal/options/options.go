// Package options loads the stream source configuration used by the CLI.
package options

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultBaudRate is the NMEA high-speed rate AIS receivers ship with.
const DefaultBaudRate = 38400

// Source describes one sentence feed: either a TCP endpoint or a serial port.
type Source struct {
	Name   string `yaml:"name"`
	TCP    string `yaml:"tcp"`
	Serial string `yaml:"serial"`
	Baud   int    `yaml:"baud"`
}

// Validate checks that exactly one transport is configured and fills the
// default baud rate for serial sources.
func (s *Source) Validate() error {
	if (s.TCP == "") == (s.Serial == "") {
		return fmt.Errorf("source %q must set exactly one of tcp or serial", s.Name)
	}
	if s.Serial != "" && s.Baud == 0 {
		s.Baud = DefaultBaudRate
	}
	return nil
}

// String names the source for logging.
func (s Source) String() string {
	if s.TCP != "" {
		return fmt.Sprintf("tcp://%s", s.TCP)
	}
	return fmt.Sprintf("serial://%s@%d", s.Serial, s.Baud)
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads a YAML source list:
//
//	sources:
//	  - name: exploratorium
//	    tcp: ais.exploratorium.edu:80
//	  - name: receiver
//	    serial: /dev/ttyUSB0
//	    baud: 38400
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}
	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}
	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no sources", path)
	}
	for i := range file.Sources {
		if err := file.Sources[i].Validate(); err != nil {
			return nil, err
		}
	}
	return file.Sources, nil
}
