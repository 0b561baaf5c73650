package cmd

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/darcyabjones/paf/internal/config"
)

// emitter writes values in the configured output format. In paf format
// values are written with their String method, one per line; json writes
// one object per line and yaml one document per value.
type emitter struct {
	format string
	w      io.Writer
	json   *json.Encoder
	yaml   *yaml.Encoder
}

func newEmitter(format string, w io.Writer) *emitter {
	e := &emitter{format: format, w: w}
	switch format {
	case config.FormatJSON:
		e.json = json.NewEncoder(w)
	case config.FormatYAML:
		e.yaml = yaml.NewEncoder(w)
		e.yaml.SetIndent(2)
	}
	return e
}

func (e *emitter) emit(v fmt.Stringer) error {
	switch {
	case e.json != nil:
		return e.json.Encode(v)
	case e.yaml != nil:
		return e.yaml.Encode(v)
	default:
		_, err := fmt.Fprintln(e.w, v.String())
		return err
	}
}

func (e *emitter) Close() error {
	if e.yaml != nil {
		return e.yaml.Close()
	}
	return nil
}
