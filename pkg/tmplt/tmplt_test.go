package tmplt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	type Site struct {
		Port int
		User string
	}

	type Val struct {
		Field  string
		Map    map[string]string
		Struct Site
	}

	tests := []struct {
		it       string
		inText   string
		inValues interface{}
		want     string
	}{
		{
			it:     "should expand a field",
			inText: "{{ .Field }}",
			inValues: Val{
				Field: "field",
			},
			want: "field",
		}, {
			it:     "should expand a map",
			inText: "{{ .Map.two }}",
			inValues: Val{
				Map: map[string]string{"one": "1", "two": "2"},
			},
			want: "2",
		}, {
			it:     "should expand a struct",
			inText: "Listen {{ .Struct.Port }} as {{ .Struct.User }}",
			inValues: Val{
				Struct: Site{Port: 8004, User: "stack"},
			},
			want: "Listen 8004 as stack",
		}, {
			it:     "should expand sprig functions",
			inText: "{{ .Field | upper }}",
			inValues: Val{
				Field: "field",
			},
			want: "FIELD",
		},
	}
	for _, tst := range tests {
		t.Run(tst.it, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := Expand(tst.it, tst.inText, out, tst.inValues)
			assert.NoError(t, err)
			got := out.String()
			assert.Equal(t, tst.want, got)
		})
	}
}

func TestExpandMissingValue(t *testing.T) {
	out := &bytes.Buffer{}
	err := Expand("t", "{{ .Map.nosuch }}", out, struct{ Map map[string]string }{})
	assert.Error(t, err)
}
