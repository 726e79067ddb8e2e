// Package cbackend renders a checked program into C99 source: stable name
// mangling plus a streaming emitter, grounded on the original c_name_mangle.c
// and c_emit.c (spec §10).
package cbackend

import (
	"hash/fnv"
	"strings"
)

const (
	manglePrefix    = "vitte_"
	mangleTmpPrefix = "t_"
	mangleMaxIdent  = 1024
)

// cKeywords mirrors the original's C11-plus-extensions keyword set: any
// mangled identifier that collides with one of these gets underscore-escaped.
var cKeywords = map[string]bool{
	"auto": true, "break": true, "case": true, "char": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extern": true, "float": true, "for": true, "goto": true,
	"if": true, "inline": true, "int": true, "long": true, "register": true,
	"restrict": true, "return": true, "short": true, "signed": true, "sizeof": true,
	"static": true, "struct": true, "switch": true, "typedef": true,
	"union": true, "unsigned": true, "void": true, "volatile": true, "while": true,
	"_Alignas": true, "_Alignof": true, "_Atomic": true, "_Bool": true, "_Complex": true,
	"_Generic": true, "_Imaginary": true, "_Noreturn": true, "_Static_assert": true, "_Thread_local": true,
	"__attribute__": true, "__declspec": true, "__pragma": true, "__asm": true,
	"__volatile__": true, "__inline__": true, "__restrict__": true,
}

func isIdentStartByte(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isIdentContByte(c byte) bool {
	return isIdentStartByte(c) || (c >= '0' && c <= '9')
}

func hash32(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

// mangleSeg encodes one logical path/name segment into valid C identifier
// bytes: alnum and '_' pass through, everything else becomes "_xHH".
func mangleSeg(seg string) string {
	if seg == "" {
		return "_empty"
	}
	var sb strings.Builder
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if isIdentContByte(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteString("_x")
		sb.WriteByte(hexDigit(c >> 4))
		sb.WriteByte(hexDigit(c & 0xF))
	}
	return sb.String()
}

func hexDigit(nyb byte) byte {
	const h = "0123456789abcdef"
	return h[nyb&0xF]
}

// manglePath splits a module path on '.', '/', '\\', or "::" and mangles
// each segment, joined by "__". An empty path mangles to "root".
func manglePath(modulePath string) string {
	path := modulePath
	if len(path) >= 2 && path[1] == ':' {
		path = path[2:] // windows drive
	}
	var segs []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, mangleSeg(cur.String()))
			cur.Reset()
		}
	}
	for i := 0; i < len(path); i++ {
		c := path[i]
		if c == ':' && i+1 < len(path) && path[i+1] == ':' {
			flush()
			i++
			continue
		}
		if c == '.' || c == '/' || c == '\\' {
			flush()
			continue
		}
		cur.WriteByte(c)
	}
	flush()
	if len(segs) == 0 {
		return "root"
	}
	return strings.Join(segs, "__")
}

func ensureIdentStart(s string) string {
	if s == "" {
		return "_"
	}
	if isIdentStartByte(s[0]) {
		return s
	}
	return "_" + s
}

func maybeKeywordEscape(s string) string {
	if cKeywords[s] {
		return "_" + s
	}
	return s
}

// maybeShortenAndHash bounds identifier length, replacing an overlong tail
// with a stable hash suffix so truncation never collides silently.
func maybeShortenAndHash(s string) string {
	if len(s) <= mangleMaxIdent {
		return s
	}
	h := hash32(s)
	const suffixLen = 3 + 8 // "__h" + 8 hex digits
	keep := mangleMaxIdent
	if keep > suffixLen {
		keep -= suffixLen
	}
	return s[:keep] + "__h" + hex32(h)
}

func hex32(v uint32) string {
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigit(byte(v & 0xF))
		v >>= 4
	}
	return string(buf[:])
}

func finalize(s string) string {
	s = ensureIdentStart(s)
	s = maybeKeywordEscape(s)
	return maybeShortenAndHash(s)
}

// MangleGlobal mangles a backend global under an arbitrary kind tag
// (e.g. "g" for a plain global, "ev" for an enum variant namespace).
func MangleGlobal(modulePath, kindTag, name string) string {
	var sb strings.Builder
	sb.WriteString(manglePrefix)
	if kindTag != "" {
		sb.WriteString(kindTag)
		sb.WriteString("__")
	}
	sb.WriteString(manglePath(modulePath))
	sb.WriteString("__")
	sb.WriteString(mangleSeg(name))
	return finalize(sb.String())
}

// MangleFn mangles a function name, folding a signature hash in when given
// (used to disambiguate overload-like scenario variants).
func MangleFn(modulePath, fnName, signature string) string {
	var sb strings.Builder
	sb.WriteString(manglePrefix)
	sb.WriteString("fn__")
	sb.WriteString(manglePath(modulePath))
	sb.WriteString("__")
	sb.WriteString(mangleSeg(fnName))
	if signature != "" {
		sb.WriteString("__s")
		sb.WriteString(hex32(hash32(signature)))
	}
	return finalize(sb.String())
}

// MangleType mangles a type name, optionally folding in a structural
// signature hash (used for generic instantiations).
func MangleType(modulePath, typeName, signature string) string {
	var sb strings.Builder
	sb.WriteString(manglePrefix)
	sb.WriteString("ty__")
	sb.WriteString(manglePath(modulePath))
	sb.WriteString("__")
	sb.WriteString(mangleSeg(typeName))
	if signature != "" {
		sb.WriteString("__s")
		sb.WriteString(hex32(hash32(signature)))
	}
	return finalize(sb.String())
}

// MangleGlobalVar mangles a module-level variable.
func MangleGlobalVar(modulePath, name string) string {
	return MangleGlobal(modulePath, "g", name)
}

// MangleEnumVariant mangles module::Enum::Variant.
func MangleEnumVariant(modulePath, enumName, variantName string) string {
	var sb strings.Builder
	sb.WriteString(manglePrefix)
	sb.WriteString("ev__")
	sb.WriteString(manglePath(modulePath))
	sb.WriteString("__")
	sb.WriteString(mangleSeg(enumName))
	sb.WriteString("__")
	sb.WriteString(mangleSeg(variantName))
	return finalize(sb.String())
}

// MangleTmp produces a deterministic local temporary name from an index,
// e.g. "t_0000002a". Temporaries are never prefixed/escaped like globals:
// they live inside a function body, not at file scope.
func MangleTmp(idx uint32) string {
	return mangleTmpPrefix + hex32(idx)
}

// Demangle best-effort reverses MangleGlobal/MangleFn/MangleType output for
// diagnostics: "__" becomes "::" and "_xHH" escapes decode back to bytes.
// Reports false if mangled doesn't carry the backend's prefix.
func Demangle(mangled string) (string, bool) {
	if !strings.HasPrefix(mangled, manglePrefix) {
		return "", false
	}
	rest := mangled[len(manglePrefix):]
	var sb strings.Builder
	for i := 0; i < len(rest); {
		if i+1 < len(rest) && rest[i] == '_' && rest[i+1] == '_' {
			sb.WriteString("::")
			i += 2
			continue
		}
		if i+3 < len(rest) && rest[i] == '_' && rest[i+1] == 'x' && isHexDigit(rest[i+2]) && isHexDigit(rest[i+3]) {
			v := hexVal(rest[i+2])<<4 | hexVal(rest[i+3])
			if v >= 0x20 && v <= 0x7E {
				sb.WriteByte(byte(v))
			} else {
				sb.WriteByte('?')
			}
			i += 4
			continue
		}
		sb.WriteByte(rest[i])
		i++
	}
	return sb.String(), true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
