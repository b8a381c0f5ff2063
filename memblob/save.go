package memblob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"memgraph/process"
)

type segmentMeta struct {
	Base uint64 `json:"base"`
	Size uint64 `json:"size"`
	File string `json:"file"`
}

type blobMeta struct {
	Created  time.Time     `json:"created"`
	Segments []segmentMeta `json:"segments"`
}

// Save writes the blob to a directory: metadata.json plus one .bin file per
// segment.
func (b *Blob) Save(dirname string) error {
	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	meta := blobMeta{Created: time.Now()}
	for _, seg := range b.segments {
		name := fmt.Sprintf("seg_%x.bin", uint64(seg.Base))
		if err := os.WriteFile(filepath.Join(dirname, name), seg.Data, 0644); err != nil {
			return fmt.Errorf("write segment %s: %w", seg.Base.Hex(), err)
		}
		meta.Segments = append(meta.Segments, segmentMeta{
			Base: uint64(seg.Base),
			Size: uint64(len(seg.Data)),
			File: name,
		})
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, "metadata.json"), data, 0644); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// Load reads a blob previously written by Save.
func Load(dirname string) (*Blob, error) {
	raw, err := os.ReadFile(filepath.Join(dirname, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta blobMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	b := New()
	for _, sm := range meta.Segments {
		data, err := os.ReadFile(filepath.Join(dirname, sm.File))
		if err != nil {
			return nil, fmt.Errorf("read segment %s: %w", sm.File, err)
		}
		if uint64(len(data)) != sm.Size {
			return nil, fmt.Errorf("segment %s: have %d bytes, metadata says %d", sm.File, len(data), sm.Size)
		}
		b.Add(process.Address(sm.Base), data)
	}
	return b, nil
}
