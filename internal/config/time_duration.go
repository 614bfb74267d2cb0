package config

// SPDX-License-Identifier: GPL-3.0-or-later

import (
	"encoding/json"
	"fmt"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Duration is a time.Duration with custom JSON/YAML marshallers.
//
// It is written as a Go duration string ("5s", "1m30s"). Plain numbers are
// interpreted as seconds, so `backend_timeout: 5` does what one would expect.
type Duration time.Duration

var _ json.Unmarshaler = (*Duration)(nil)
var _ json.Marshaler = Duration(0)
var _ yaml.Unmarshaler = (*Duration)(nil)
var _ yaml.Marshaler = Duration(0)

// Std returns the duration as time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.unmarshal(v)
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	return d.unmarshal(v)
}

func (d *Duration) unmarshal(v any) error {
	switch value := v.(type) {
	case string:
		timeDuration, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(timeDuration)
	case int:
		*d = Duration(time.Duration(value) * time.Second)
	case float64:
		*d = Duration(value * float64(time.Second))
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	if *d < 0 {
		return fmt.Errorf("negative duration %v", *d)
	}
	return nil
}
