package dump

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"xsd-generator/internal/ir"
)

func sampleRecord() ir.Record {
	enumMembers := ir.NewNode()
	for _, v := range []string{"0", "positive1", "negative1", "5percent"} {
		enumMembers.Set(ir.Plain(v), ir.NewNode())
	}

	enumBase := ir.NewNode()
	enumBase.Set(ir.Plain("std::string"), enumMembers)

	enum := ir.NewNode()
	enum.Set(ir.Plain(ir.KeyBase), enumBase)

	seq := ir.NewNode()
	seq.Set(ir.Plain("type"), ir.NewAttributes(
		ir.Attr{Key: "name", Value: "type"},
		ir.Attr{Key: "type", Value: "std::vector<t_road_type>"},
		ir.Attr{Key: "maxOccurs", Value: "unbounded"},
	))

	class := ir.NewNode()
	class.Set(ir.Plain(ir.KeySequence), seq)

	structMembers := ir.NewNode()
	structMembers.Set(ir.Alias("double", "maxSpeed"), ir.NewAttributes())
	structMembers.Set(ir.EnumClass("e_offset"), enum.Clone())

	data := ir.NewNode()
	data.Set(ir.Struct("t_maxSpeed"), structMembers)
	data.Set(ir.Class("t_road"), class)
	data.Set(ir.EnumClass("e_offset"), enum)
	data.Set(ir.Alias("double", "t_grZero"), ir.NewNode())
	data.Set(ir.Plain("OpenDRIVE"), ir.NewNode())

	return ir.Record{Name: "Road", Data: data}
}

func TestJSON_RoundTrip(t *testing.T) {
	rec := sampleRecord()

	out, err := MarshalJSON(rec)
	require.NoError(t, err)

	parsed, err := ParseJSON(out)
	require.NoError(t, err)

	assert.Equal(t, rec.Name, parsed.Name)
	assert.True(t, ir.Equal(rec.Data, parsed.Data), "round trip differs:\n%s", spew.Sdump(parsed.Data.Names()))
	assert.Equal(t, rec.Data.Names(), parsed.Data.Names())

	again, err := MarshalJSON(parsed)
	require.NoError(t, err)
	assert.Equal(t, string(out), string(again))
}

func TestJSON_Layout(t *testing.T) {
	out, err := MarshalJSON(sampleRecord())
	require.NoError(t, err)

	text := string(out)
	assert.True(t, strings.HasPrefix(text, "{\n    \"name\": \"Road\",\n    \"data\": {\n        \"struct t_maxSpeed\": {"))

	// IR order, not alphabetical.
	assert.Less(t, strings.Index(text, `"struct t_maxSpeed"`), strings.Index(text, `"class t_road"`))
	assert.Less(t, strings.Index(text, `"positive1"`), strings.Index(text, `"negative1"`))
	assert.Less(t, strings.Index(text, `"negative1"`), strings.Index(text, `"5percent"`))
	assert.Regexp(t, `"double maxSpeed": \{\s*\}`, text)
	assert.Contains(t, text, `"std::vector<t_road_type>"`)
}

func TestParseJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"array", `[]`},
		{"name not string", `{"name": 1, "data": {}}`},
		{"unknown key", `{"name": "x", "extra": {}}`},
		{"mixed object", `{"name": "x", "data": {"class t_a": {"seq": {}, "k": "v"}}}`},
		{"data is attributes", `{"name": "x", "data": {"k": "v"}}`},
		{"array value", `{"name": "x", "data": {"class t_a": []}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.ErrorIs(t, err, ErrMalformedDump)
		})
	}
}

func TestParseJSON_KeyClassification(t *testing.T) {
	rec, err := ParseJSON([]byte(`{
		"name": "Lane",
		"data": {
			"struct t_width": {"double width": {}, "enum class e_w": {"base": {"std::string": {"some value": {}}}}},
			"class t_lane": {"attributes": {"level": {"name": "level", "type": "t_bool"}}}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []ir.Name{ir.Struct("t_width"), ir.Class("t_lane")}, rec.Data.Names())

	v, _ := rec.Data.Get(ir.Struct("t_width"))
	assert.Equal(t, []ir.Name{ir.Alias("double", "width"), ir.EnumClass("e_w")}, v.(*ir.Node).Names())

	// Below declarations every key is plain, even with a space in it.
	e, _ := v.(*ir.Node).Get(ir.EnumClass("e_w"))
	members := e.(*ir.Node).Child(ir.KeyBase).Child("std::string")
	assert.Equal(t, []ir.Name{ir.Plain("some value")}, members.Names())
}

func TestYAML_OrderAndRoundTrip(t *testing.T) {
	out, err := MarshalYAML(sampleRecord())
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &doc))

	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)
	assert.Equal(t, "name", root.Content[0].Value)
	assert.Equal(t, "Road", root.Content[1].Value)

	data := root.Content[3]
	var keys []string
	for i := 0; i < len(data.Content); i += 2 {
		keys = append(keys, data.Content[i].Value)
	}

	assert.Equal(t, []string{"struct t_maxSpeed", "class t_road", "enum class e_offset", "double t_grZero", "OpenDRIVE"}, keys)
	assert.Contains(t, string(out), "double t_grZero: {}")
}

func TestSpew(t *testing.T) {
	out := string(Spew(sampleRecord()))

	assert.Contains(t, out, `Name: (string) (len=4) "Road"`)
	assert.Contains(t, out, `(ir.Name) struct t_maxSpeed`)
	assert.NotContains(t, out, "0xc0")
}

func TestSerialize(t *testing.T) {
	rec := sampleRecord()

	for _, f := range []Format{FormatJSON, FormatYAML, FormatSpew} {
		out, err := Serialize(rec, f)
		require.NoError(t, err, f.String())
		assert.NotEmpty(t, out)
	}

	_, err := Serialize(rec, Format(9))
	require.Error(t, err)
}

func TestParseFormats(t *testing.T) {
	formats, err := ParseFormats([]string{"json", "yml", "json", "spew"})
	require.NoError(t, err)
	assert.Equal(t, []Format{FormatJSON, FormatYAML, FormatSpew}, formats)

	_, err = ParseFormats([]string{"xml"})
	require.Error(t, err)

	assert.Equal(t, ".json", FormatJSON.Extension())
	assert.Equal(t, ".yaml", FormatYAML.Extension())
}
