package color

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a serialized color that matches none of the accepted shapes.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding color: %s: %v", e.Reason, e.Err)
	}
	return "decoding color: " + e.Reason
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// record is the serialized shape of a Color. Either Hex or the three
// channels are set.
type record struct {
	Hex   string   `json:"hex,omitempty" yaml:"hex,omitempty"`
	Red   *uint8   `json:"red,omitempty" yaml:"red,omitempty"`
	Green *uint8   `json:"green,omitempty" yaml:"green,omitempty"`
	Blue  *uint8   `json:"blue,omitempty" yaml:"blue,omitempty"`
	Alpha *float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// hexExact reports whether the color survives a trip through its hex form:
// alpha must be present and an exact multiple of 1/255.
func (c Color) hexExact() bool {
	if c.Alpha == nil {
		return false
	}
	a := *c.Alpha
	if a < 0 || a > 1 {
		return false
	}
	return float64(uint8(math.Round(a*255)))/255 == a
}

func (c Color) record() record {
	if c.hexExact() {
		return record{Hex: c.Hex()}
	}
	r, g, b := c.R, c.G, c.B
	rec := record{Red: &r, Green: &g, Blue: &b}
	if c.Alpha != nil {
		a := *c.Alpha
		rec.Alpha = &a
	}
	return rec
}

// fromChannels builds a Color from the channel half of a record.
func fromChannels(red, green, blue *uint8, alpha *float64) (Color, error) {
	var missing []string
	if red == nil {
		missing = append(missing, "red")
	}
	if green == nil {
		missing = append(missing, "green")
	}
	if blue == nil {
		missing = append(missing, "blue")
	}
	if len(missing) > 0 {
		return Color{}, &DecodeError{Reason: fmt.Sprintf("expected hex or red/green/blue, missing %v", missing)}
	}
	return Color{R: *red, G: *green, B: *blue, Alpha: alpha}, nil
}

func fromString(s string) (Color, error) {
	c, err := ParseString(s)
	if err != nil {
		return Color{}, &DecodeError{Reason: "invalid color string", Err: err}
	}
	return c, nil
}

func fromHex(s string) (Color, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Color{}, &DecodeError{Reason: "invalid hex", Err: err}
	}
	return c, nil
}

// isJSONValue reports whether a key was present with a non-null value.
func isJSONValue(raw json.RawMessage) bool {
	return raw != nil && !bytes.Equal(raw, []byte("null"))
}

// MarshalJSON encodes the color as {"hex": "#rrggbbaa"} when that is
// lossless, and as {"red", "green", "blue", "alpha"} otherwise.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.record())
}

// UnmarshalJSON decodes {"hex": ...}, {"red", "green", "blue", "alpha"?} or
// a bare color string. A string hex key takes precedence over the channels.
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &DecodeError{Reason: "invalid color string", Err: err}
		}
		parsed, err := fromString(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var raw struct {
		Hex   json.RawMessage `json:"hex"`
		Red   *uint8          `json:"red"`
		Green *uint8          `json:"green"`
		Blue  *uint8          `json:"blue"`
		Alpha json.RawMessage `json:"alpha"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Reason: "expected an object", Err: err}
	}

	var hex string
	if isJSONValue(raw.Hex) && json.Unmarshal(raw.Hex, &hex) == nil {
		parsed, err := fromHex(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var alpha *float64
	var a float64
	if isJSONValue(raw.Alpha) && json.Unmarshal(raw.Alpha, &a) == nil {
		alpha = &a
	}
	parsed, err := fromChannels(raw.Red, raw.Green, raw.Blue, alpha)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML follows the same rules as MarshalJSON.
func (c Color) MarshalYAML() (any, error) {
	return c.record(), nil
}

// UnmarshalYAML follows the same rules as UnmarshalJSON.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parsed, err := fromString(value.Value)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return &DecodeError{Reason: fmt.Sprintf("expected a mapping or string at line %d", value.Line)}
	}

	var raw struct {
		Hex   yaml.Node `yaml:"hex"`
		Red   *uint8    `yaml:"red"`
		Green *uint8    `yaml:"green"`
		Blue  *uint8    `yaml:"blue"`
		Alpha yaml.Node `yaml:"alpha"`
	}
	if err := value.Decode(&raw); err != nil {
		return &DecodeError{Reason: fmt.Sprintf("line %d", value.Line), Err: err}
	}

	var hex string
	if raw.Hex.Kind != 0 && raw.Hex.ShortTag() == "!!str" && raw.Hex.Decode(&hex) == nil {
		parsed, err := fromHex(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var alpha *float64
	var a float64
	if raw.Alpha.Kind != 0 && raw.Alpha.ShortTag() != "!!null" && raw.Alpha.Decode(&a) == nil {
		alpha = &a
	}
	parsed, err := fromChannels(raw.Red, raw.Green, raw.Blue, alpha)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Text returns the shortest string that ParseString reads back as c: the hex
// form when it is lossless, a component list otherwise. An absent alpha reads
// back as opaque.
func (c Color) Text() string {
	if c.hexExact() || c.Alpha == nil {
		return c.Hex()
	}
	return fmt.Sprintf("r:%d,g:%d,b:%d,a:%s", c.R, c.G, c.B, strconv.FormatFloat(*c.Alpha, 'g', -1, 64))
}
