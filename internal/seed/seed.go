// Package seed parses YAML event files for bulk import.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/calendar-resolver/internal/application"
)

// TimeLayout is the minute-precision timestamp format accepted in seed files.
const TimeLayout = "2006-01-02T15:04"

type file struct {
	Events []entry `yaml:"events"`
}

type entry struct {
	Title string `yaml:"title"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Place string `yaml:"place"`
}

// Parse decodes a YAML document of events into event inputs. Timestamps use
// TimeLayout and are interpreted in the local timezone, matching how they
// were written.
func Parse(data []byte) ([]application.EventInput, error) {
	var doc file
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	inputs := make([]application.EventInput, 0, len(doc.Events))
	for i, ev := range doc.Events {
		start, err := time.ParseInLocation(TimeLayout, ev.Start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): invalid start %q: %w", i, ev.Title, ev.Start, err)
		}
		end, err := time.ParseInLocation(TimeLayout, ev.End, time.Local)
		if err != nil {
			return nil, fmt.Errorf("event %d (%q): invalid end %q: %w", i, ev.Title, ev.End, err)
		}
		inputs = append(inputs, application.EventInput{
			Title: ev.Title,
			Start: start,
			End:   end,
			Place: ev.Place,
		})
	}

	return inputs, nil
}

// ParseFile reads and decodes a YAML seed file from disk.
func ParseFile(path string) ([]application.EventInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}
