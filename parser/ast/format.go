package ast

import "github.com/pkg/errors"

// Formats lists the output formats accepted by Format.
var Formats = []string{"dump", "json", "yaml", "html"}

// Format writes nodes in one of Formats.
func Format(nodes []Node, format string) ([]byte, error) {
	switch format {
	case "dump":
		return []byte(Dump(nodes) + "\n"), nil
	case "json":
		return JSON(nodes)
	case "yaml":
		return YAML(nodes)
	case "html":
		return []byte(Render(nodes)), nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// ContentType is the HTTP media type of a format.
func ContentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "html":
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}
