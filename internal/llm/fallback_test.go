package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := NewMockProvider(MockResponse{Content: json.RawMessage(`"from primary"`)})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"from secondary"`)})

	p := WithFallback(primary, secondary)
	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if string(resp.Content) != `"from primary"` {
		t.Errorf("content = %s, want from primary", resp.Content)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.CallCount())
	}
}

func TestFallback_PrimaryDownSecondarySaves(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("timeout")}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"from secondary"`)})

	p := WithFallback(primary, secondary)
	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if string(resp.Content) != `"from secondary"` {
		t.Errorf("content = %s, want from secondary", resp.Content)
	}
}

func TestFallback_EmptyResponseCrossesTiers(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrEmptyResponse{Model: "fast"}})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)})

	p := WithFallback(primary, secondary)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if secondary.CallCount() != 1 {
		t.Errorf("secondary called %d times, want 1", secondary.CallCount())
	}
}

func TestFallback_BothTiersDown(t *testing.T) {
	primary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	secondary := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error when both tiers fail")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("error = %T, want *ErrProviderUnavailable", err)
	}
}

func TestFallback_InvalidResponseNotRetried(t *testing.T) {
	invalid := &ErrInvalidResponse{Err: errors.New("missing field")}
	primary := NewMockProvider(MockResponse{Err: invalid})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(context.Background(), Request{})

	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("error = %T, want *ErrInvalidResponse passthrough", err)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0 (parse failures stay on tier one)", secondary.CallCount())
	}
}

func TestFallback_ContextCancelNotRetried(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := NewMockProvider(MockResponse{Err: context.Canceled})
	secondary := NewMockProvider(MockResponse{Content: json.RawMessage(`"ok"`)})

	p := WithFallback(primary, secondary)
	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if secondary.CallCount() != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.CallCount())
	}
}

func TestFallback_NilSecondaryIsPassthrough(t *testing.T) {
	primary := NewMockProvider()
	p := WithFallback(primary, nil)
	if p != Provider(primary) {
		t.Error("nil secondary should return primary unchanged")
	}
}
