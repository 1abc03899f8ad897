// Package naming converts protocol identifiers into Go identifiers and maps
// wire argument types onto Go types.
package naming

import (
	"go/token"
	"strings"
	"unicode"
)

// Camel converts a snake_case name into UpperCamelCase:
// "wl_data_device" becomes "WlDataDevice".
func Camel(name string) string {
	var b strings.Builder
	upper := true
	for _, c := range name {
		if c == '_' {
			upper = true
			continue
		}
		if upper {
			c = unicode.ToUpper(c)
			upper = false
		}
		b.WriteRune(c)
	}
	return Identifier(b.String())
}

// LowerCamel converts a snake_case name into lowerCamelCase.
func LowerCamel(name string) string {
	s := Camel(name)
	if s == "" || !unicode.IsUpper(rune(s[0])) {
		return s
	}
	return string(unicode.ToLower(rune(s[0]))) + s[1:]
}

// Screaming converts a snake_case name into SCREAMING_SNAKE_CASE.
func Screaming(name string) string {
	return Identifier(strings.ToUpper(name))
}

// Identifier makes s usable as a Go identifier by prefixing an "X" when it
// starts with a digit.
func Identifier(s string) string {
	if s != "" && unicode.IsDigit(rune(s[0])) {
		return "X" + s
	}
	return s
}

// EnumEntry returns the UpperCamelCase variant name of an enum entry. An
// entry starting with a digit is prefixed with the first letter of its enum,
// upper-cased: entry "90" of enum "transform" becomes "T90".
func EnumEntry(enum, entry string) string {
	variant := Camel(entry)
	if entry != "" && unicode.IsDigit(rune(entry[0])) {
		variant = strings.ToUpper(enum[:1]) + entry
		variant = Camel(variant)
	}
	return variant
}

// Local names used by generated method bodies, which parameters must not
// shadow.
var reservedLocals = map[string]bool{
	"p":       true,
	"n":       true,
	"h":       true,
	"zero":    true,
	"proxy":   true,
	"client":  true,
	"version": true,
}

// Param returns the lowerCamelCase parameter name of an argument. Go
// keywords, predeclared identifiers and names used by generated code get an
// underscore suffix.
func Param(name string) string {
	s := LowerCamel(name)
	if token.IsKeyword(s) || predeclared[s] || reservedLocals[s] {
		return s + "_"
	}
	return s
}

// Methods every generated proxy defines as part of its capability set.
var capabilityMethods = map[string]bool{
	"Ptr":           true,
	"ID":            true,
	"Interface":     true,
	"InterfaceName": true,
	"Version":       true,
	"FromHandle":    true,
	"SetEventQueue": true,
	"EventQueue":    true,
	"String":        true,
}

// Method returns the exported method name of a request. Names colliding with
// the proxy capability set get an underscore suffix.
func Method(name string) string {
	s := Camel(name)
	if capabilityMethods[s] {
		return s + "_"
	}
	return s
}

// Field returns the exported struct field name of an event argument.
func Field(name string) string {
	return Camel(name)
}

var predeclared = map[string]bool{
	"any": true, "append": true, "bool": true, "byte": true, "cap": true,
	"clear": true, "close": true, "comparable": true, "complex": true,
	"complex128": true, "complex64": true, "copy": true, "delete": true,
	"error": true, "false": true, "float32": true, "float64": true,
	"imag": true, "int": true, "int16": true, "int32": true, "int64": true,
	"int8": true, "iota": true, "len": true, "make": true, "max": true,
	"min": true, "new": true, "nil": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true, "rune": true,
	"string": true, "true": true, "uint": true, "uint16": true,
	"uint32": true, "uint64": true, "uint8": true, "uintptr": true,
}
