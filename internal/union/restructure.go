package union

import (
	"errors"
	"fmt"
	"strings"

	"xsd-generator/internal/common"
	"xsd-generator/internal/diagnostic"
	"xsd-generator/internal/ir"
	"xsd-generator/internal/match"
	"xsd-generator/internal/typemap"
)

// MemberTypesAttr is the union attribute holding the member list.
const MemberTypesAttr = "memberTypes"

// CoreAliasType is the type of the member synthesized for core aliases.
const CoreAliasType = "double"

// Number of leading characters dropped from a struct name to name the
// member synthesized for a core alias ("t_maxSpeed" -> "maxSpeed").
const structPrefixLen = 2

const maxSuggestions = 3

// Errors returned while restructuring.
var (
	ErrMissingMemberTypes = errors.New("union without memberTypes")
	ErrUnresolvedMember   = errors.New("unresolved union member")
)

// Options configures a Restructurer.
type Options struct {
	// Strict turns unresolved member tokens into errors.
	Strict bool
}

// Restructurer rewrites the raw IR of one schema file.
type Restructurer struct {
	opts Options
}

// New returns a Restructurer with the given options.
func New(opts Options) *Restructurer {
	return &Restructurer{opts: opts}
}

// Restructure returns the final top-level IR for raw. Struct declarations
// come first, followed by every other declaration that no struct absorbed,
// each group in its original order. raw is not modified.
func (r *Restructurer) Restructure(raw *ir.Node) (*ir.Node, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	var structs, others []ir.Entry
	for _, e := range raw.Entries() {
		if e.Name.Kind == ir.KindStruct {
			structs = append(structs, e)
		} else {
			others = append(others, e)
		}
	}

	absorbed := make(map[ir.Name]bool)
	out := ir.NewNode()

	for _, s := range structs {
		members, err := r.resolve(s, others, absorbed, &diags)
		if err != nil {
			return nil, diags, fmt.Errorf("%s: %w", s.Name, err)
		}

		out.Set(s.Name, members)
	}

	if r.opts.Strict && diags.HasErrors() {
		return nil, diags, fmt.Errorf("%w: %w", ErrUnresolvedMember, diags.Error())
	}

	for _, e := range others {
		if !absorbed[e.Name] {
			out.Set(e.Name, e.Value)
		}
	}

	return out, diags, nil
}

func (r *Restructurer) resolve(
	s ir.Entry,
	candidates []ir.Entry,
	absorbed map[ir.Name]bool,
	diags *diagnostic.Diagnostics,
) (*ir.Node, error) {
	tokens, err := memberTokens(s)
	if err != nil {
		return nil, err
	}

	declaration := s.Name.String()
	members := ir.NewNode()

	for _, token := range tokens {
		if typemap.IsCoreAlias(token) {
			members.Set(coreAliasMember(s.Name.Ident), ir.NewAttributes())
			diags.AddInfo(diagnostic.CodeCoreAlias,
				"core alias becomes a "+CoreAliasType+" member", declaration, token)

			continue
		}

		var matched []string

		for _, c := range candidates {
			if !strings.Contains(c.Name.Ident, token) {
				continue
			}

			members.Set(c.Name, cloneValue(c.Value))
			absorbed[c.Name] = true
			matched = append(matched, c.Name.String())
		}

		switch {
		case common.IsEmpty(matched):
			r.reportUnresolved(token, declaration, candidates, diags)
		case common.IsMultiple(matched):
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeAmbiguousMember,
				Message:     fmt.Sprintf("matched %d declarations by substring", len(matched)),
				Declaration: declaration,
				Member:      token,
				Suggestions: matched,
			})
		}
	}

	return members, nil
}

func (r *Restructurer) reportUnresolved(
	token, declaration string,
	candidates []ir.Entry,
	diags *diagnostic.Diagnostics,
) {
	severity := diagnostic.DiagnosticWarning
	if r.opts.Strict {
		severity = diagnostic.DiagnosticError
	}

	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name.Ident)
	}

	diags.Add(diagnostic.Diagnostic{
		Severity:    severity,
		Code:        diagnostic.CodeUnresolvedMember,
		Message:     "no declaration matches",
		Declaration: declaration,
		Member:      token,
		Suggestions: match.Suggest(token, names, maxSuggestions),
	})
}

func memberTokens(s ir.Entry) ([]string, error) {
	def, ok := s.Value.(*ir.Node)
	if !ok {
		return nil, ErrMissingMemberTypes
	}

	marker := def.Attrs(ir.KeyUnion)
	if marker == nil {
		return nil, ErrMissingMemberTypes
	}

	list, ok := marker.Get(MemberTypesAttr)
	if !ok {
		return nil, ErrMissingMemberTypes
	}

	return strings.Fields(list), nil
}

func coreAliasMember(structIdent string) ir.Name {
	ident := structIdent
	if len(ident) > structPrefixLen {
		ident = ident[structPrefixLen:]
	}

	return ir.Alias(CoreAliasType, ident)
}

func cloneValue(v ir.Value) ir.Value {
	switch tv := v.(type) {
	case *ir.Node:
		return tv.Clone()
	case *ir.Attributes:
		return tv.Clone()
	default:
		return v
	}
}
