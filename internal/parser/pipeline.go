package parser

import (
	"github.com/gluefinance/parse-schema/internal/checksum"
	"github.com/gluefinance/parse-schema/pkg/parseschema"
)

// Result contains the outcome of splitting a schema dump.
type Result struct {
	// Records holds one entry per tokenized statement, in dump order.
	Records []parseschema.ObjectRecord

	// Placeholders is the digest -> body map built by the extractor.
	// Read-only after extraction.
	Placeholders parseschema.PlaceholderMap
}

// Pipeline sequences the parsing stages: body extraction, statement
// tokenization, and residual validation. Each stage produces a value
// fully consumed by the next.
type Pipeline struct {
	extractor *Extractor
	tokenizer *Tokenizer
	logger    parseschema.Logger
}

// NewPipeline creates a parsing pipeline.
// Panics if calc or logger is nil.
func NewPipeline(calc checksum.Calculator, logger parseschema.Logger) *Pipeline {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Pipeline{
		extractor: NewExtractor(calc, logger),
		tokenizer: NewTokenizer(logger),
		logger:    logger,
	}
}

// Split runs the full parse over a dump. It fails if anything other
// than comments and whitespace is left after tokenization.
func (p *Pipeline) Split(dump string) (*Result, error) {
	p.logger.Verbose("extracting dollar-quoted bodies")
	text, placeholders := p.extractor.Extract(dump)
	p.logger.Marker("\n")

	p.logger.Verbose("tokenizing statements")
	records, residual := p.tokenizer.Tokenize(text, placeholders)
	p.logger.Marker("\n")

	if err := ValidateResidual(residual); err != nil {
		return nil, err
	}

	p.logger.Verbose("parsed %d statements (%d extracted bodies)", len(records), len(placeholders))
	return &Result{Records: records, Placeholders: placeholders}, nil
}
