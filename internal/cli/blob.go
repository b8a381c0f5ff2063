package cli

import (
	"fmt"

	"memgraph/demangle"
	"memgraph/memblob"
	"memgraph/region"
)

// blobClassifier builds the classifier for a saved snapshot directory.
// Snapshots carry no symbol or heap metadata, so region lengths come from
// caller-known sizes and bounded probes.
func blobClassifier(cfg Config, dir string) (*region.Classifier, error) {
	blob, err := memblob.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &region.Classifier{
		Mem:       blob,
		Demangler: demangle.New(cfg.Demangler),
	}, nil
}
