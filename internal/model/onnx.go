package model

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/healthml/obesity-predictor/internal/domain/record"
)

// Predictor is the opaque prediction contract: a normalized record in, an
// integer class code out. The ONNX-backed implementation below satisfies it;
// tests substitute doubles.
type Predictor interface {
	Predict(ctx context.Context, n record.NormalizedRecord) (int, error)
	Close() error
}

// ONNXPredictor runs the pre-trained classifier through onnxruntime. The
// session and its bound tensors are created once at startup and treated as
// read-only afterwards; Run itself mutates the bound tensors, so calls are
// serialized with a mutex.
type ONNXPredictor struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	meta         *Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

// New loads the model artifact and its metadata. Any failure here is a fatal
// startup condition: the caller must refuse to serve rather than degrade
// every request to an error.
func New(modelPath, metadataPath string) (*ONNXPredictor, error) {
	meta, err := LoadMetadata(metadataPath)
	if err != nil {
		return nil, err
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("%w: initialize ONNX environment: %w", ErrLoad, err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("%w: create input tensor: %w", ErrLoad, err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("%w: create output tensor: %w", ErrLoad, err)
	}

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("%w: create ONNX session for %s: %w", ErrLoad, modelPath, err)
	}

	return &ONNXPredictor{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Metadata exposes the loaded artifact metadata.
func (p *ONNXPredictor) Metadata() *Metadata {
	return p.meta
}

// Predict encodes the normalized record, runs the session and returns the
// argmax class code over the output logits.
func (p *ONNXPredictor) Predict(ctx context.Context, n record.NormalizedRecord) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInference, err)
	}

	encoded, err := p.meta.Encode(n)
	if err != nil {
		return 0, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	copy(p.inputTensor.GetData(), encoded)

	if err := p.session.Run(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInference, err)
	}

	logits := p.outputTensor.GetData()
	if len(logits) == 0 {
		return 0, fmt.Errorf("%w: empty output tensor", ErrInference)
	}

	maxIdx := 0
	for i := 1; i < len(logits); i++ {
		if logits[i] > logits[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx, nil
}

// Close releases the session, tensors and the ONNX environment.
func (p *ONNXPredictor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inputTensor != nil {
		p.inputTensor.Destroy()
		p.inputTensor = nil
	}
	if p.outputTensor != nil {
		p.outputTensor.Destroy()
		p.outputTensor = nil
	}
	if p.session != nil {
		p.session.Destroy()
		p.session = nil
	}
	return ort.DestroyEnvironment()
}
