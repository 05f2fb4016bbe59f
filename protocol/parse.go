// Copyright 2026 The minebase authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package protocol

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
)

// enumSizeWorkaround is the one value upstream minecraft-data sometimes
// emits wrapped in a spurious one-element list, inside the _enum_type field
// of Bedrock packet_available_commands. Only this exact shape is unwrapped;
// any other list-wrapped string stays a shape error.
//
// https://github.com/PrismarineJS/minecraft-data/issues/1101
const enumSizeWorkaround = "enum_size_based_on_values_len"

// parser builds one top-level registry entry. It is single-use and carries
// the entry name so every error can name its origin.
type parser struct {
	typeName string
	maxDepth int
	depth    int
}

func (p *parser) fail(path string, kind Kind, err error, fields ...string) error {
	return &NodeError{TypeName: p.typeName, Path: path, Kind: kind, Fields: fields, Err: err}
}

func joinPath(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "." + seg
}

// parseNode normalizes, flattens and validates the raw value at path.
// Children are fully constructed before their parent, so validation runs
// innermost-first by construction.
func (p *parser) parseNode(path string, v any) (Node, error) {
	if p.depth++; p.depth > p.maxDepth {
		return nil, p.fail(path, "", ErrDepthExceeded)
	}
	defer func() { p.depth-- }()

	v = Normalize(v)
	m, ok := v.(map[string]any)
	if !ok {
		return nil, p.fail(path, "", fmt.Errorf("%w: got %T", ErrBadShape, v))
	}
	rawKind, ok := m["kind"]
	if !ok {
		return nil, p.fail(path, "", fmt.Errorf("%w: record has no kind tag", ErrBadShape))
	}
	kindStr, ok := rawKind.(string)
	if !ok {
		return nil, p.fail(path, "", fmt.Errorf("%w: kind tag is %T, not a string", ErrBadDiscriminator, rawKind))
	}
	kind := Kind(kindStr)

	var (
		n   Node
		err error
	)
	switch kind {
	case KindNative:
		n, err = p.parseNative(path, m)
	case KindAlias:
		n, err = p.parseAlias(path, m)
	case KindArray:
		n, err = p.parseArray(path, m)
	case KindBitfield:
		n, err = p.parseBitfield(path, m)
	case KindBitflags:
		n, err = p.parseBitflags(path, m)
	case KindBuffer:
		n, err = p.parseBuffer(path, m)
	case KindContainer:
		n, err = p.parseContainer(path, m)
	case KindEntityMetadataLoop:
		n, err = p.parseEntityMetadataLoop(path, m)
	case KindMapper:
		n, err = p.parseMapper(path, m)
	case KindPstring:
		n, err = p.parsePstring(path, m)
	case KindSwitch:
		n, err = p.parseSwitch(path, m)
	case KindOption:
		n, err = p.parseOption(path, m)
	case KindRegistryEntryHolder:
		n, err = p.parseRegistryEntryHolder(path, m)
	case KindRegistryEntryHolderSet:
		n, err = p.parseRegistryEntryHolderSet(path, m)
	case KindEntityMetadataItem:
		n, err = p.parseEntityMetadataItem(path, m)
	case KindCount:
		n, err = p.parseCount(path, m)
	case KindEncapsulated:
		n, err = p.parseEncapsulated(path, m)
	case KindParticleData:
		n, err = p.parseParticleData(path, m)
	default:
		return nil, p.fail(path, kind, ErrBadDiscriminator)
	}
	if err != nil {
		return nil, err
	}
	if err := p.validate(path, n); err != nil {
		return nil, err
	}
	return n, nil
}

// record reads the named fields of one flattened declaration, tracking
// which keys were consumed so leftovers can be rejected; upstream
// minecraft-data declarations never carry undeclared keys.
type record struct {
	p    *parser
	path string
	kind Kind
	m    map[string]any
	seen map[string]struct{}
}

func (p *parser) record(path string, kind Kind, m map[string]any) *record {
	return &record{p: p, path: path, kind: kind, m: m, seen: make(map[string]struct{})}
}

// spread applies the spread-data flattening {kind, data: {...}} -> {kind, ...}
// and returns a record over the unwrapped data object.
func (p *parser) spread(path string, kind Kind, m map[string]any) (*record, error) {
	d, ok := m["data"]
	if !ok {
		return nil, p.fail(path, kind, ErrMissingField, "data")
	}
	dm, ok := d.(map[string]any)
	if !ok {
		return nil, p.fail(path, kind, fmt.Errorf("%w: data is %T, not an object", ErrBadValue, d), "data")
	}
	return p.record(path, kind, dm), nil
}

// listData applies the data-is-list flattening and returns the raw list.
func (p *parser) listData(path string, kind Kind, m map[string]any) ([]any, error) {
	d, ok := m["data"]
	if !ok {
		return nil, p.fail(path, kind, ErrMissingField, "data")
	}
	l, ok := d.([]any)
	if !ok {
		return nil, p.fail(path, kind, fmt.Errorf("%w: data is %T, not a list", ErrBadValue, d), "data")
	}
	return l, nil
}

func (r *record) take(key string) (any, bool) {
	v, ok := r.m[key]
	if ok {
		r.seen[key] = struct{}{}
	}
	return v, ok
}

func (r *record) str(key string) (string, error) {
	v, ok := r.take(key)
	if !ok {
		return "", r.p.fail(r.path, r.kind, ErrMissingField, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected a string, got %T", ErrBadValue, v), key)
	}
	return s, nil
}

func (r *record) optStr(key string) (*string, error) {
	v, ok := r.take(key)
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected a string, got %T", ErrBadValue, v), key)
	}
	return &s, nil
}

func (r *record) integer(key string) (int, error) {
	v, ok := r.take(key)
	if !ok {
		return 0, r.p.fail(r.path, r.kind, ErrMissingField, key)
	}
	i, ok := intFromAny(v)
	if !ok {
		return 0, r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected an integer, got %v", ErrBadValue, v), key)
	}
	return i, nil
}

func (r *record) optInteger(key string) (*int, error) {
	v, ok := r.take(key)
	if !ok || v == nil {
		return nil, nil
	}
	i, ok := intFromAny(v)
	if !ok {
		return nil, r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected an integer, got %v", ErrBadValue, v), key)
	}
	return &i, nil
}

func (r *record) boolean(key string) (bool, error) {
	v, ok := r.take(key)
	if !ok {
		return false, r.p.fail(r.path, r.kind, ErrMissingField, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected a bool, got %T", ErrBadValue, v), key)
	}
	return b, nil
}

// aliasType reads a position holding a type reference by name, such as an
// array's countType. The raw value is normalized first, so a bare "varint"
// arrives here as a canonical alias record.
func (r *record) aliasType(key string) (*Alias, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, r.p.fail(r.path, r.kind, ErrMissingField, key)
	}
	return r.p.parseAliasType(joinPath(r.path, key), v)
}

func (r *record) optAliasType(key string) (*Alias, error) {
	v, ok := r.take(key)
	if !ok || v == nil {
		return nil, nil
	}
	return r.p.parseAliasType(joinPath(r.path, key), v)
}

func (r *record) node(key string) (Node, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, r.p.fail(r.path, r.kind, ErrMissingField, key)
	}
	return r.p.parseNode(joinPath(r.path, key), v)
}

func (r *record) optNode(key string) (Node, error) {
	v, ok := r.take(key)
	if !ok || v == nil {
		return nil, nil
	}
	return r.p.parseNode(joinPath(r.path, key), v)
}

// finish rejects keys the variant does not declare.
func (r *record) finish() error {
	var extra []string
	for k := range r.m {
		if _, ok := r.seen[k]; !ok {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		return r.p.fail(r.path, r.kind, ErrUnexpectedField, extra...)
	}
	return nil
}

// parseAliasType accepts only a reference by name: a normalized alias
// record. Inline composite declarations are rejected; positions like an
// array's countType only ever hold type names.
func (p *parser) parseAliasType(path string, v any) (*Alias, error) {
	v = Normalize(v)
	m, ok := v.(map[string]any)
	if !ok {
		return nil, p.fail(path, KindAlias, fmt.Errorf("%w: got %T", ErrBadShape, v))
	}
	if m["kind"] != string(KindAlias) {
		return nil, p.fail(path, KindAlias, fmt.Errorf("%w: expected a type name, got kind %v", ErrBadDiscriminator, m["kind"]))
	}
	rec := p.record(path, KindAlias, m)
	rec.seen["kind"] = struct{}{}
	target, err := rec.str("target")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Alias{Target: target}, nil
}

func (p *parser) parseNative(path string, m map[string]any) (Node, error) {
	rec := p.record(path, KindNative, m)
	rec.seen["kind"] = struct{}{}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Native{}, nil
}

func (p *parser) parseAlias(path string, m map[string]any) (Node, error) {
	rec := p.record(path, KindAlias, m)
	rec.seen["kind"] = struct{}{}
	target, err := rec.str("target")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Alias{Target: target}, nil
}

func (p *parser) parseArray(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindArray, m)
	if err != nil {
		return nil, err
	}
	countType, err := rec.optAliasType("countType")
	if err != nil {
		return nil, err
	}
	count, err := rec.countLiteral("count")
	if err != nil {
		return nil, err
	}
	elem, err := rec.node("type")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Array{CountType: countType, Count: count, Type: elem}, nil
}

// countLiteral reads an array count, which the data encodes either as a
// numeric literal or the name of a sibling field holding the length. Both
// are stored in string form.
func (r *record) countLiteral(key string) (*string, error) {
	v, ok := r.take(key)
	if !ok || v == nil {
		return nil, nil
	}
	if s, ok := v.(string); ok {
		return &s, nil
	}
	if i, ok := intFromAny(v); ok {
		s := strconv.Itoa(i)
		return &s, nil
	}
	return nil, r.p.fail(r.path, r.kind, fmt.Errorf("%w: expected a string or integer, got %T", ErrBadValue, v), key)
}

func (p *parser) parseBitfield(path string, m map[string]any) (Node, error) {
	raw, err := p.listData(path, KindBitfield, m)
	if err != nil {
		return nil, err
	}
	fields := make([]BitfieldField, 0, len(raw))
	for i, item := range raw {
		fieldPath := joinPath(path, fmt.Sprintf("fields[%d]", i))
		fm, ok := item.(map[string]any)
		if !ok {
			return nil, p.fail(fieldPath, KindBitfield, fmt.Errorf("%w: got %T", ErrBadShape, item))
		}
		rec := p.record(fieldPath, KindBitfield, fm)
		name, err := rec.str("name")
		if err != nil {
			return nil, err
		}
		size, err := rec.integer("size")
		if err != nil {
			return nil, err
		}
		signed, err := rec.boolean("signed")
		if err != nil {
			return nil, err
		}
		if err := rec.finish(); err != nil {
			return nil, err
		}
		fields = append(fields, BitfieldField{Name: name, Size: size, Signed: signed})
	}
	return &Bitfield{Fields: fields}, nil
}

func (p *parser) parseBitflags(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindBitflags, m)
	if err != nil {
		return nil, err
	}
	typ, err := rec.aliasType("type")
	if err != nil {
		return nil, err
	}
	rawFlags, ok := rec.take("flags")
	if !ok {
		return nil, p.fail(path, KindBitflags, ErrMissingField, "flags")
	}

	node := &Bitflags{Type: typ}
	switch flags := rawFlags.(type) {
	case []any:
		node.Names = make([]string, 0, len(flags))
		for i, f := range flags {
			s, ok := f.(string)
			if !ok {
				return nil, p.fail(path, KindBitflags, fmt.Errorf("%w: flag %d is %T, not a string", ErrBadValue, i, f), "flags")
			}
			node.Names = append(node.Names, s)
		}
	case map[string]any:
		node.Masks = make(map[string]uint64, len(flags))
		for name, mv := range flags {
			mask, ok := uintFromAny(mv)
			if !ok {
				return nil, p.fail(path, KindBitflags, fmt.Errorf("%w: mask for %q is not an unsigned integer", ErrBadValue, name), "flags")
			}
			node.Masks[name] = mask
		}
	default:
		return nil, p.fail(path, KindBitflags, fmt.Errorf("%w: expected a name list or mask mapping, got %T", ErrBadValue, rawFlags), "flags")
	}

	if big, ok := rec.take("big"); ok {
		// The raw marker is only ever the literal true.
		if big != true {
			return nil, p.fail(path, KindBitflags, fmt.Errorf("%w: big must be true when present, got %v", ErrBadValue, big), "big")
		}
		node.Big = true
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *parser) parseBuffer(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindBuffer, m)
	if err != nil {
		return nil, err
	}
	countType, err := rec.optAliasType("countType")
	if err != nil {
		return nil, err
	}
	count, err := rec.optInteger("count")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Buffer{CountType: countType, Count: count}, nil
}

func (p *parser) parseContainer(path string, m map[string]any) (Node, error) {
	raw, err := p.listData(path, KindContainer, m)
	if err != nil {
		return nil, err
	}
	fields := make([]Field, 0, len(raw))
	for i, item := range raw {
		f, err := p.parseField(joinPath(path, fmt.Sprintf("fields[%d]", i)), item)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return &Container{Fields: fields}, nil
}

// parseField discriminates one container entry. A missing anon marker
// defaults to named; anonymous fields must not carry a name.
func (p *parser) parseField(path string, v any) (Field, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Field{}, p.fail(path, KindContainer, fmt.Errorf("%w: got %T", ErrBadShape, v))
	}
	rec := p.record(path, KindContainer, m)

	anon := false
	if raw, ok := rec.take("anon"); ok {
		b, ok := raw.(bool)
		if !ok {
			return Field{}, p.fail(path, KindContainer, fmt.Errorf("%w: expected a bool, got %T", ErrBadValue, raw), "anon")
		}
		anon = b
	}

	var name string
	if anon {
		if raw, ok := rec.take("name"); ok && raw != nil {
			return Field{}, p.fail(path, KindContainer, fmt.Errorf("%w: anonymous field cannot be named", ErrBadValue), "name")
		}
	} else {
		var err error
		name, err = rec.str("name")
		if err != nil {
			return Field{}, err
		}
		if name == "" {
			return Field{}, p.fail(path, KindContainer, fmt.Errorf("%w: field name must not be empty", ErrBadValue), "name")
		}
	}

	rawType, ok := rec.take("type")
	if !ok {
		return Field{}, p.fail(path, KindContainer, ErrMissingField, "type")
	}
	if !anon {
		rawType = unwrapEnumSize(rawType)
	}
	typ, err := p.parseNode(joinPath(path, "type"), rawType)
	if err != nil {
		return Field{}, err
	}
	if err := rec.finish(); err != nil {
		return Field{}, err
	}
	return Field{Name: name, Anon: anon, Type: typ}, nil
}

// parseNamedField reads a position that only admits named fields, such as
// the otherwise branch of a registryEntryHolder.
func (p *parser) parseNamedField(path string, v any) (Field, error) {
	f, err := p.parseField(path, v)
	if err != nil {
		return Field{}, err
	}
	if f.Anon {
		return Field{}, p.fail(path, KindContainer, fmt.Errorf("%w: must be a named field", ErrBadValue), "anon")
	}
	return f, nil
}

// unwrapEnumSize undoes the one known producer-side irregularity; see
// enumSizeWorkaround.
func unwrapEnumSize(v any) any {
	if l, ok := v.([]any); ok && len(l) == 1 && l[0] == enumSizeWorkaround {
		return enumSizeWorkaround
	}
	return v
}

func (p *parser) parseEntityMetadataLoop(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindEntityMetadataLoop, m)
	if err != nil {
		return nil, err
	}
	endVal, err := rec.integer("endVal")
	if err != nil {
		return nil, err
	}
	elem, err := rec.node("type")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &EntityMetadataLoop{EndVal: endVal, Type: elem}, nil
}

func (p *parser) parseMapper(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindMapper, m)
	if err != nil {
		return nil, err
	}
	typ, err := rec.aliasType("type")
	if err != nil {
		return nil, err
	}
	raw, ok := rec.take("mappings")
	if !ok {
		return nil, p.fail(path, KindMapper, ErrMissingField, "mappings")
	}
	rawMap, ok := raw.(map[string]any)
	if !ok {
		return nil, p.fail(path, KindMapper, fmt.Errorf("%w: expected an object, got %T", ErrBadValue, raw), "mappings")
	}
	mappings := make(map[string]string, len(rawMap))
	for code, name := range rawMap {
		s, ok := name.(string)
		if !ok {
			return nil, p.fail(path, KindMapper, fmt.Errorf("%w: mapping for %q is %T, not a string", ErrBadValue, code, name), "mappings")
		}
		mappings[code] = s
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Mapper{Type: typ, Mappings: mappings}, nil
}

func (p *parser) parsePstring(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindPstring, m)
	if err != nil {
		return nil, err
	}
	countType, err := rec.aliasType("countType")
	if err != nil {
		return nil, err
	}
	encoding, err := rec.optStr("encoding")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	node := &Pstring{CountType: countType}
	if encoding != nil {
		node.Encoding = *encoding
	}
	return node, nil
}

func (p *parser) parseSwitch(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindSwitch, m)
	if err != nil {
		return nil, err
	}
	compareTo, err := rec.str("compareTo")
	if err != nil {
		return nil, err
	}
	raw, ok := rec.take("fields")
	if !ok {
		return nil, p.fail(path, KindSwitch, ErrMissingField, "fields")
	}
	rawMap, ok := raw.(map[string]any)
	if !ok {
		return nil, p.fail(path, KindSwitch, fmt.Errorf("%w: expected an object, got %T", ErrBadValue, raw), "fields")
	}
	branches := make(map[string]Node, len(rawMap))
	for key, branch := range rawMap {
		// Branch keys stay verbatim strings, never coerced to integers.
		n, err := p.parseNode(joinPath(path, fmt.Sprintf("fields[%q]", key)), branch)
		if err != nil {
			return nil, err
		}
		branches[key] = n
	}
	def, err := rec.optNode("default")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Switch{CompareTo: compareTo, Fields: branches, Default: def}, nil
}

func (p *parser) parseOption(path string, m map[string]any) (Node, error) {
	// Data-is-value flattening: the data key holds the wrapped type itself.
	d, ok := m["data"]
	if !ok {
		return nil, p.fail(path, KindOption, ErrMissingField, "data")
	}
	elem, err := p.parseNode(joinPath(path, "type"), d)
	if err != nil {
		return nil, err
	}
	return &Option{Type: elem}, nil
}

func (p *parser) parseRegistryEntryHolder(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindRegistryEntryHolder, m)
	if err != nil {
		return nil, err
	}
	baseName, err := rec.str("baseName")
	if err != nil {
		return nil, err
	}
	raw, ok := rec.take("otherwise")
	if !ok {
		return nil, p.fail(path, KindRegistryEntryHolder, ErrMissingField, "otherwise")
	}
	otherwise, err := p.parseNamedField(joinPath(path, "otherwise"), raw)
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &RegistryEntryHolder{BaseName: baseName, Otherwise: otherwise}, nil
}

func (p *parser) parseRegistryEntryHolderSet(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindRegistryEntryHolderSet, m)
	if err != nil {
		return nil, err
	}
	rawBase, ok := rec.take("base")
	if !ok {
		return nil, p.fail(path, KindRegistryEntryHolderSet, ErrMissingField, "base")
	}
	base, err := p.parseNamedField(joinPath(path, "base"), rawBase)
	if err != nil {
		return nil, err
	}
	rawOtherwise, ok := rec.take("otherwise")
	if !ok {
		return nil, p.fail(path, KindRegistryEntryHolderSet, ErrMissingField, "otherwise")
	}
	otherwise, err := p.parseNamedField(joinPath(path, "otherwise"), rawOtherwise)
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &RegistryEntryHolderSet{Base: base, Otherwise: otherwise}, nil
}

func (p *parser) parseEntityMetadataItem(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindEntityMetadataItem, m)
	if err != nil {
		return nil, err
	}
	compareTo, err := rec.str("compareTo")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &EntityMetadataItem{CompareTo: compareTo}, nil
}

func (p *parser) parseCount(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindCount, m)
	if err != nil {
		return nil, err
	}
	typ, err := rec.aliasType("type")
	if err != nil {
		return nil, err
	}
	countFor, err := rec.str("countFor")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Count{Type: typ, CountFor: countFor}, nil
}

func (p *parser) parseEncapsulated(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindEncapsulated, m)
	if err != nil {
		return nil, err
	}
	lengthType, err := rec.aliasType("lengthType")
	if err != nil {
		return nil, err
	}
	typ, err := rec.aliasType("type")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &Encapsulated{LengthType: lengthType, Type: typ}, nil
}

func (p *parser) parseParticleData(path string, m map[string]any) (Node, error) {
	rec, err := p.spread(path, KindParticleData, m)
	if err != nil {
		return nil, err
	}
	compareTo, err := rec.str("compareTo")
	if err != nil {
		return nil, err
	}
	if err := rec.finish(); err != nil {
		return nil, err
	}
	return &ParticleData{CompareTo: compareTo}, nil
}

// intFromAny converts the integer encodings seen across json and yaml
// decoders. Non-integral floats do not convert.
func intFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case json.Number:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}

func uintFromAny(v any) (uint64, bool) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case int64:
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case uint64:
		return n, true
	case float64:
		u := uint64(n)
		if n < 0 || float64(u) != n {
			return 0, false
		}
		return u, true
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return u, true
	default:
		return 0, false
	}
}
