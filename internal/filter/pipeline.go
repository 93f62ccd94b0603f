package filter

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	binpkg "github.com/robert-malhotra/go-pngme/internal/binary"
)

// envelopeMagic prefixes every envelope. The leading NUL keeps it from
// colliding with ordinary text messages.
var envelopeMagic = []byte{0x00, 'P', 'M', 'F'}

const (
	envelopeVersion = 1
	stageSize       = 5
	maxStages       = math.MaxUint8
)

// Pipeline represents an ordered filter pipeline.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a pipeline from filter names, applied in order.
func NewPipeline(names ...string) (*Pipeline, error) {
	if len(names) > maxStages {
		return nil, fmt.Errorf("pipeline has %d filters, at most %d allowed", len(names), maxStages)
	}

	p := &Pipeline{
		filters: make([]Filter, 0, len(names)),
	}

	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("creating filter %q: %w", name, err)
		}
		p.filters = append(p.filters, f)
	}

	return p, nil
}

// Encode applies every filter in order and wraps the result in an
// envelope. An empty pipeline still produces an envelope with zero stages.
func (p *Pipeline) Encode(input []byte) ([]byte, error) {
	data := input
	lengths := make([]uint32, len(p.filters))

	for i, f := range p.filters {
		if len(data) > MaxDecodedSize {
			return nil, fmt.Errorf("filter %s: input of %d bytes exceeds %d", f.Name(), len(data), MaxDecodedSize)
		}
		lengths[i] = uint32(len(data))

		var err error
		data, err = f.Encode(data)
		if err != nil {
			return nil, fmt.Errorf("filter %s encode: %w", f.Name(), err)
		}
	}

	w := binpkg.NewWriterSize(binpkg.DefaultConfig(), len(envelopeMagic)+2+stageSize*len(p.filters)+len(data))
	w.WriteBytes(envelopeMagic)
	w.WriteUint8(envelopeVersion)
	w.WriteUint8(uint8(len(p.filters)))
	for i, f := range p.filters {
		w.WriteUint8(f.ID())
		w.WriteUint32(lengths[i])
	}
	w.WriteBytes(data)

	return w.Bytes(), nil
}

// Names returns the filter names in application order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.filters))
	for i, f := range p.filters {
		names[i] = f.Name()
	}
	return names
}

// IsEnvelope reports whether payload starts with the envelope magic.
func IsEnvelope(payload []byte) bool {
	return bytes.HasPrefix(payload, envelopeMagic)
}

type stage struct {
	id     uint8
	length uint32
}

// Decode unwraps an envelope produced by Pipeline.Encode, undoing its
// filters last-first.
func Decode(envelope []byte) ([]byte, error) {
	if !IsEnvelope(envelope) {
		return nil, ErrNotEnvelope
	}

	r := binpkg.NewReader(envelope, binpkg.DefaultConfig())
	r.Skip(len(envelopeMagic))

	version, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEnvelope, err)
	}
	if version != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptEnvelope, version)
	}

	count, err := r.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEnvelope, err)
	}

	stages := make([]stage, count)
	for i := range stages {
		id, err := r.ReadUint8()
		if err != nil {
			return nil, fmt.Errorf("%w: stage %d: %v", ErrCorruptEnvelope, i, err)
		}
		length, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: stage %d: %v", ErrCorruptEnvelope, i, err)
		}
		if length > MaxDecodedSize {
			return nil, fmt.Errorf("%w: stage %d records %d bytes, limit %d",
				ErrCorruptEnvelope, i, length, MaxDecodedSize)
		}
		stages[i] = stage{id: id, length: length}
	}

	data, _ := r.ReadBytes(r.Remaining())

	for i := len(stages) - 1; i >= 0; i-- {
		f, err := New(stages[i].id)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		data, err = f.Decode(data, int(stages[i].length))
		if errors.Is(err, ErrOutputTooLarge) {
			return nil, fmt.Errorf("%w: filter %s: %w", ErrCorruptEnvelope, f.Name(), err)
		}
		if err != nil {
			return nil, fmt.Errorf("filter %s decode: %w", f.Name(), err)
		}
		if uint64(len(data)) != uint64(stages[i].length) {
			return nil, fmt.Errorf("%w: filter %s produced %d bytes, expected %d",
				ErrCorruptEnvelope, f.Name(), len(data), stages[i].length)
		}
	}

	return bytes.Clone(data), nil
}
