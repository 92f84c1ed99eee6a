// Package tmplt renders text templates with a struct of named values.
package tmplt

import (
	"io"
	"io/ioutil"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// ExpandFile expands the file at path and writes the result in a file without suffix.
func ExpandFile(path, suffix string, values interface{}) error {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	out, err := os.Create(strings.TrimSuffix(path, suffix))
	if err != nil {
		return err
	}
	defer out.Close()

	return Expand(path, string(in), out, values)
}

// Expand takes an in string with https://golang.org/pkg/text/template/ directives and values
// and writes the result to out.
// Referencing a value that is not set is an error.
func Expand(name, in string, out io.Writer, values interface{}) error {
	t, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(in)
	if err != nil {
		return err
	}

	return t.Execute(out, values)
}
