package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xsd-generator/internal/dump"
	"xsd-generator/internal/ir"
	"xsd-generator/internal/walk"
)

const roadSchema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
	<xs:simpleType name="e_maxSpeedString">
		<xs:restriction base="xs:string">
			<xs:enumeration value="no limit"/>
			<xs:enumeration value="undefined"/>
		</xs:restriction>
	</xs:simpleType>
	<xs:complexType name="t_road">
		<xs:sequence>
			<xs:element name="speed" type="t_maxSpeed" minOccurs="0"/>
		</xs:sequence>
		<xs:attribute name="length" type="t_grZero" use="required"/>
	</xs:complexType>
	<xs:simpleType name="t_maxSpeed">
		<xs:union memberTypes="t_grEqZero e_maxSpeedString"/>
	</xs:simpleType>
</xs:schema>`

const brokenSchema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
	<xs:complexType name="t_lanes">
		<xs:sequence>
			<xs:element name="lane" maxOccurs="unbounded"/>
		</xs:sequence>
	</xs:complexType>
</xs:schema>`

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func testOptions(out string) Options {
	opts := DefaultOptions()
	opts.OutputDir = out

	return opts
}

func TestTransform(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "road.xsd", roadSchema)

	p := New(testOptions(filepath.Join(dir, "out")), nil)

	rec, diags, err := p.Transform(path, "Road")
	require.NoError(t, err)

	assert.Equal(t, "Road", rec.Name)
	assert.Equal(t, []ir.Name{ir.Struct("t_maxSpeed"), ir.Class("t_road")}, rec.Data.Names())
	require.Len(t, diags.Infos, 1)
	assert.Empty(t, diags.Warnings)

	v, _ := rec.Data.Get(ir.Struct("t_maxSpeed"))
	assert.Equal(t, []ir.Name{
		ir.Alias("double", "maxSpeed"),
		ir.EnumClass("e_maxSpeedString"),
	}, v.(*ir.Node).Names())

	// Transform has no side effects.
	_, err = os.Stat(filepath.Join(dir, "out"))
	assert.True(t, os.IsNotExist(err))
}

func TestTransform_MalformedSchema(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "lanes.xsd", brokenSchema)

	_, _, err := New(testOptions(dir), nil).Transform(path, "Lane")
	require.Error(t, err)
	assert.ErrorIs(t, err, walk.ErrMissingType)
}

func TestRun_WritesHeaderAndDumps(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "road.xsd", roadSchema)
	out := filepath.Join(dir, "nested", "out")

	opts := testOptions(out)
	opts.Formats = []dump.Format{dump.FormatJSON, dump.FormatYAML}

	summary, err := New(opts, nil).Run(context.Background(), []Job{{Schema: path, Name: "Road"}})
	require.NoError(t, err)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Succeeded())
	assert.Equal(t, []string{"Road.hpp", "Road.hpp.json", "Road.hpp.yaml"}, summary.Results[0].Files)

	diags := summary.Diagnostics()
	assert.Len(t, diags.Infos, 1)
	assert.Empty(t, diags.Warnings)

	header, err := os.ReadFile(filepath.Join(out, "Road.hpp"))
	require.NoError(t, err)
	assert.Contains(t, string(header), "struct t_maxSpeed")
	assert.Contains(t, string(header), "class t_road")

	data, err := os.ReadFile(filepath.Join(out, "Road.hpp.json"))
	require.NoError(t, err)

	parsed, err := dump.ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "Road", parsed.Name)
	assert.True(t, ir.Equal(summary.Results[0].Record.Data, parsed.Data))

	assert.FileExists(t, filepath.Join(out, "Road.hpp.yaml"))
}

func TestRun_FailFastStopsAtFirstError(t *testing.T) {
	dir := t.TempDir()
	good := writeSchema(t, dir, "road.xsd", roadSchema)
	out := filepath.Join(dir, "out")

	jobs := []Job{
		{Schema: filepath.Join(dir, "missing.xsd"), Name: "Core"},
		{Schema: good, Name: "Road"},
	}

	summary, err := New(testOptions(out), nil).Run(context.Background(), jobs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Core")

	require.Len(t, summary.Results, 1)
	assert.Equal(t, 1, summary.Failed())
	assert.NoFileExists(t, filepath.Join(out, "Road.hpp"))
}

func TestRun_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	good := writeSchema(t, dir, "road.xsd", roadSchema)
	broken := writeSchema(t, dir, "lanes.xsd", brokenSchema)
	out := filepath.Join(dir, "out")

	opts := testOptions(out)
	opts.FailFast = false

	jobs := []Job{
		{Schema: broken, Name: "Lane"},
		{Schema: good, Name: "Road"},
	}

	summary, err := New(opts, nil).Run(context.Background(), jobs)
	require.Error(t, err)
	assert.ErrorIs(t, err, walk.ErrMissingType)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, 1, summary.Succeeded())
	assert.Equal(t, 1, summary.Failed())
	assert.FileExists(t, filepath.Join(out, "Road.hpp"))
	assert.NoFileExists(t, filepath.Join(out, "Lane.hpp"))
}

func TestRun_ConcurrentKeepsJobOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "road.xsd", roadSchema)
	out := filepath.Join(dir, "out")

	opts := testOptions(out)
	opts.Workers = 4
	opts.FailFast = false

	names := []string{"Core", "Road", "Lane", "Junction", "Object", "Signal", "Railroad"}

	var jobs []Job
	for _, name := range names {
		jobs = append(jobs, Job{Schema: path, Name: name})
	}

	jobs = append(jobs, Job{Schema: filepath.Join(dir, "missing.xsd"), Name: "Missing"})

	summary, err := New(opts, nil).Run(context.Background(), jobs)
	require.Error(t, err)
	require.Len(t, summary.Results, len(jobs))

	for i, res := range summary.Results {
		assert.Equal(t, jobs[i].Name, res.Job.Name)
	}

	assert.Equal(t, len(names), summary.Succeeded())

	for _, name := range names {
		assert.FileExists(t, filepath.Join(out, name+".hpp"))
	}
}

func TestRun_ConcurrentFailFast(t *testing.T) {
	dir := t.TempDir()

	opts := testOptions(filepath.Join(dir, "out"))
	opts.Workers = 2

	jobs := []Job{
		{Schema: filepath.Join(dir, "a.xsd"), Name: "A"},
		{Schema: filepath.Join(dir, "b.xsd"), Name: "B"},
	}

	summary, err := New(opts, nil).Run(context.Background(), jobs)
	require.Error(t, err)
	assert.Equal(t, 0, summary.Succeeded())
}

func TestRun_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "road.xsd", roadSchema)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := New(testOptions(filepath.Join(dir, "out")), nil).Run(ctx, []Job{{Schema: path, Name: "Road"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summary.Results)
}

func TestRun_OutputDirFailureIsSticky(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "road.xsd", roadSchema)

	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	opts := testOptions(filepath.Join(blocker, "out"))
	opts.FailFast = false

	summary, err := New(opts, nil).Run(context.Background(), []Job{
		{Schema: path, Name: "Road"},
		{Schema: path, Name: "Lane"},
	})
	require.Error(t, err)
	assert.Equal(t, 2, summary.Failed())
	assert.Contains(t, summary.Results[1].Err.Error(), "creating output directory")
}
