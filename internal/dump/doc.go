// Package dump serializes IR records for debugging and diffing.
//
// Every format is a faithful structural dump: keys appear in IR order and
// classified names are written in their prefixed form ("class t_road").
// The JSON form can be parsed back into an identical record with
// ParseJSON.
//
// Formats:
//   - json: goccy/go-json, four-space indentation
//   - yaml: gopkg.in/yaml.v3 mapping nodes
//   - spew: go-spew dump of the record value
package dump
