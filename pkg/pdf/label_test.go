package pdf

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestLabelWrite_Signature(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultLabel().Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with %%PDF- signature")
	}
}

func TestLabelWrite_PageSizeAndText(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultLabel().Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "/MediaBox [0 0 400.00 200.00]") {
		t.Errorf("output missing 400x200 MediaBox")
	}
	if got := strings.Count(out, "(Sample Label Text)"); got != 1 {
		t.Errorf("text draw count = %d, want 1", got)
	}
}

func TestLabelWrite_Concurrent(t *testing.T) {
	// Each render owns its buffer; parallel renders must all succeed
	// and produce complete documents.
	var wg sync.WaitGroup
	errs := make([]error, 8)
	outs := make([]bytes.Buffer, 8)

	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = DefaultLabel().Write(&outs[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("render %d failed: %v", i, err)
		}
		if !bytes.HasPrefix(outs[i].Bytes(), []byte("%PDF-")) {
			t.Errorf("render %d missing PDF signature", i)
		}
	}
}
