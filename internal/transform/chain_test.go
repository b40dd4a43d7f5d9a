package transform

import (
	"errors"
	"fmt"
	"testing"

	"github.com/linuxmatters/ffmpreg/internal/core"
)

func TestChainThreadsInOrder(t *testing.T) {
	f := stereoFrame([]int32{-4000, 2000, 4000, -2000}, 16)
	chain := NewChain(NewGain(2.0), NewGain(2.0))

	out, err := chain.Apply(f)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	af := out.(core.AudioFrame)
	want := []int32{-16000, 8000, 16000, -8000}
	for i, s := range af.Samples {
		if s != want[i] {
			t.Errorf("sample %d: got %d, want %d", i, s, want[i])
		}
	}
}

type erroringTransform struct{}

func (erroringTransform) Name() string { return "boom" }
func (erroringTransform) Apply(core.Frame) (core.Frame, error) {
	return nil, &core.TransformError{Transform: "boom", Err: errors.New("always fails")}
}

func TestChainStopsAtFirstError(t *testing.T) {
	f := stereoFrame([]int32{1, 2}, 16)
	chain := NewChain(NewGain(2.0), erroringTransform{}, NewGain(2.0))

	_, err := chain.Apply(f)
	if err == nil {
		t.Fatal("expected an error")
	}
	var te *core.TransformError
	if !errors.As(err, &te) {
		t.Fatalf("expected the core.TransformError unchanged, got %v", err)
	}
	fmt.Sprint(err) // exercise Error() formatting
}
