package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var outputFormats = []string{"text", "json", "yaml", "pretty"}

func isOutputFormat(s string) bool {
	for _, f := range outputFormats {
		if f == s {
			return true
		}
	}
	return false
}

// render writes v in the selected output format. text and pretty are
// supplied by the caller because they differ per command.
func render(w io.Writer, v interface{}, text, pretty func() string) error {
	switch app.output {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()

	case "pretty":
		if pretty != nil {
			_, err := fmt.Fprintln(w, pretty())
			return err
		}
	}

	_, err := fmt.Fprintln(w, text())
	return err
}
