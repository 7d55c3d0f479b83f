package internal

import (
	"fmt"
	"strings"
)

// Parser turns one fleet source file into vehicle records. The column
// table maps source headers to record field names; self-describing
// formats ignore it.
type Parser interface {
	Parse(path string, columns map[string]string) ([]VehicleRecord, error)
}

// ParserFunc adapts a plain function to Parser.
type ParserFunc func(path string, columns map[string]string) ([]VehicleRecord, error)

func (f ParserFunc) Parse(path string, columns map[string]string) ([]VehicleRecord, error) {
	return f(path, columns)
}

// parsers holds every known source format, keyed by name.
var parsers = map[string]Parser{}

// RegisterParser makes a parser selectable under the given source name.
func RegisterParser(name string, p Parser) {
	parsers[name] = p
}

// GetParser looks up a parser by source name.
func GetParser(source string) (Parser, error) {
	p, ok := parsers[source]
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s (available: %v)", source, AvailableSources())
	}
	return p, nil
}

// AvailableSources lists the registered source names.
func AvailableSources() []string {
	var sources []string
	for name := range parsers {
		sources = append(sources, name)
	}
	return sources
}

// IsKnownParser reports whether name is a registered source.
func IsKnownParser(name string) bool {
	_, ok := parsers[name]
	return ok
}

// ParseFileArg splits an optional source prefix off a file argument,
// so "fleet-json:data.json" selects the fleet-json parser for
// data.json. Only registered source names count as a prefix; any other
// colon (a Windows drive letter, say) stays part of the path and the
// returned format is empty, leaving SniffSource to decide.
func ParseFileArg(arg string) (format, path string) {
	idx := strings.Index(arg, ":")
	if idx == -1 {
		return "", arg
	}
	if prefix := arg[:idx]; IsKnownParser(prefix) {
		return prefix, arg[idx+1:]
	}
	return "", arg
}

// SniffSource picks a parser name from the file extension when no
// format prefix was given.
func SniffSource(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return "fleet-json"
	}
	return "fleet-xlsx"
}

func init() {
	RegisterParser("fleet-xlsx", ParserFunc(ParseFleetXLSX))
	RegisterParser("fleet-json", ParserFunc(ParseFleetJSON))
}
