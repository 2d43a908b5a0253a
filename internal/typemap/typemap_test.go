package typemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_KnownTokens(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"xs:string", "std::string"},
		{"xs:double", "double"},
		{"xs:integer", "int"},
		{"xs:negativeInteger", "int"},
		{"xs:float", "float"},
		{"t_grEqZero", "double"},
		{"t_grZero", "double"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, Map(tt.token))
		})
	}
}

func TestMap_Identity(t *testing.T) {
	for _, token := range []string{"", "xs:boolean", "t_road", "e_unit", "std::string", "XS:STRING"} {
		assert.Equal(t, token, Map(token), "token %q", token)
	}
}

func TestMap_CoversTable(t *testing.T) {
	for token, expected := range primitives {
		assert.Equal(t, expected, Map(token))
	}
}

func TestBase(t *testing.T) {
	assert.Equal(t, "std::string", Base("xs:string"))
	assert.Equal(t, "double", Base("xs:double"))
	// Only string and double are rewritten for bases.
	assert.Equal(t, "xs:integer", Base("xs:integer"))
	assert.Equal(t, "t_grZero", Base("t_grZero"))
	assert.Equal(t, "e_unit", Base("e_unit"))
}

func TestVector(t *testing.T) {
	assert.Equal(t, "std::vector<double>", Vector("double"))
	assert.Equal(t, "std::vector<t_road_link>", Vector("t_road_link"))
}

func TestIsCoreAlias(t *testing.T) {
	assert.True(t, IsCoreAlias("t_grEqZero"))
	assert.True(t, IsCoreAlias("t_grZero"))
	assert.False(t, IsCoreAlias("t_grZeroOrMore"))
	assert.False(t, IsCoreAlias("xs:double"))
}
