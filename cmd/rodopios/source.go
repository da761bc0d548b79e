package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/rodopios/internal/storage"
	"github.com/san-kum/rodopios/internal/trace"
)

// source is a trace resolved from a file or a stored run.
type source struct {
	name string
	// path is set when the trace came from a file.
	path string
	key  *trace.KeyData
}

// loadSource treats arg as a file path when it names an existing file or
// "-", and as a run id otherwise.
func loadSource(arg string) (*source, error) {
	if arg == "-" {
		k, err := trace.Load(arg)
		if err != nil {
			return nil, err
		}
		return &source{name: "stdin", key: k}, nil
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		k, err := trace.Load(arg)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
		return &source{name: name, path: arg, key: k}, nil
	}

	st := store()
	meta, err := st.Load(arg)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s is neither a trace file nor a run in %s: %w", arg, st.Dir(), err)
		}
		return nil, err
	}
	k, err := st.LoadKeyData(arg)
	if err != nil {
		return nil, err
	}
	return &source{name: meta.Name, key: k}, nil
}

func (s *source) trace() trace.Trace { return s.key.Trace() }

// fields lists the key material worth printing, in display order.
func (s *source) fields() [][2]string {
	k := s.key
	return [][2]string{
		{"Private key (base-40)", k.PrivateKeyBase40},
		{"Public key X (base-40)", k.PublicKeyXBase40},
		{"Address (base-40)", k.AddressBase40},
		{"Address (base58check)", k.AddressBase58Check},
	}
}
