// SPDX-License-Identifier: EPL-2.0

package wavqc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavqc/analysis"
	"github.com/ik5/wavqc/formats/wav"
)

// Document is a parsed and verified WAVE file together with its analysis.
// It is immutable once returned.
type Document struct {
	riff   wav.RiffEnvelope
	format wav.FormatDescriptor
	data   wav.DataChunk

	chars analysis.Characteristics
}

// Load opens path and reads it with Read. The file is closed before Load
// returns.
func Load(path string, cfg analysis.Config) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StageError{Stage: StageIO, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()

	return Read(bufio.NewReader(f), cfg)
}

// Read parses the RIFF envelope, the fmt chunk and the data chunk in that
// order and analyzes the samples. The first failing stage aborts the read
// with a *StageError and no Document.
func Read(r io.Reader, cfg analysis.Config) (*Document, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env, err := wav.ReadRiffEnvelope(r)
	if err != nil {
		return nil, stageFailure(StageRiff, wav.ErrRiffInvalid, err)
	}

	if err := env.Verify(); err != nil {
		return nil, &StageError{Stage: StageRiff, Err: err}
	}

	format, err := wav.ReadFormatDescriptor(r)
	if err != nil {
		return nil, stageFailure(StageFormat, wav.ErrFormatUnsupported, err)
	}

	if err := format.Verify(); err != nil {
		return nil, &StageError{Stage: StageFormat, Err: err}
	}

	data, err := wav.ReadDataChunk(r)
	if err != nil {
		return nil, stageFailure(StageData, wav.ErrDataChunkInvalid, err)
	}

	if err := data.Verify(); err != nil {
		return nil, &StageError{Stage: StageData, Err: err}
	}

	doc := &Document{
		riff:   env,
		format: format,
		data:   data,
	}

	doc.chars = analysis.New(cfg).Analyze(analysis.Input{
		Samples:       data.Samples,
		DataSize:      data.Size,
		SampleRate:    format.SampleRate,
		BitsPerSample: format.BitsPerSample,
	})

	return doc, nil
}

// stageFailure classifies a read error: a truncated block belongs to the
// stage that was reading it, anything else is an I/O failure.
func stageFailure(stage Stage, sentinel, err error) error {
	if errors.Is(err, wav.ErrShortHeader) {
		return &StageError{Stage: stage, Err: fmt.Errorf("%w: %w", sentinel, err)}
	}

	return &StageError{Stage: StageIO, Err: fmt.Errorf("%w: reading %s: %w", ErrIO, stage, err)}
}

// Analyze loads path with the default configuration and returns its
// characteristics.
func Analyze(path string) (analysis.Characteristics, error) {
	doc, err := Load(path, analysis.DefaultConfig())
	if err != nil {
		return analysis.Characteristics{}, err
	}

	return doc.Characteristics(), nil
}

func (d *Document) Riff() wav.RiffEnvelope { return d.riff }

func (d *Document) Format() wav.FormatDescriptor { return d.format }

// FormatSummary is the one-line description of the audio format.
func (d *Document) FormatSummary() string { return d.format.String() }

// Samples returns a copy of the decoded samples.
func (d *Document) Samples() []int16 { return slices.Clone(d.data.Samples) }

// IntBuffer returns the samples as a go-audio buffer.
func (d *Document) IntBuffer() *goaudio.IntBuffer {
	return d.data.IntBuffer(d.format.Format())
}

// Duration is the playing time of the data chunk.
func (d *Document) Duration() time.Duration {
	if d.format.SampleRate == 0 {
		return 0
	}

	return time.Duration(len(d.data.Samples)) * time.Second / time.Duration(d.format.SampleRate)
}

// Characteristics returns the analysis computed when the document was read.
// Repeated calls return the same value.
func (d *Document) Characteristics() analysis.Characteristics { return d.chars }
