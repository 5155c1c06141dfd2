package display

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a bytes.Buffer for tests that render progress from
// multiple goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestProgress_Basic tests the basic behavior of Progress.
//
// It verifies:
//   - Increments progress and shows percentage
func TestProgress_Basic(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Checking packages")

	p.Increment()
	p.Increment()
	p.Increment()

	output := buf.String()
	assert.Contains(t, output, "Checking packages")
	assert.Contains(t, output, "3/10")
	assert.Contains(t, output, "30%")
}

// TestProgress_Done tests the behavior of Done.
//
// It verifies:
//   - Marks progress as 100% complete
//   - Ends with newline
func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 5, "Checking")

	p.Increment()
	p.Increment()
	p.Done()

	output := buf.String()
	assert.Contains(t, output, "5/5")
	assert.Contains(t, output, "100%")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

// TestProgress_SetCurrent tests the behavior of SetCurrent.
//
// It verifies:
//   - Sets progress to specific value and shows correct percentage
func TestProgress_SetCurrent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 100, "Checking")

	p.SetCurrent(50)

	output := buf.String()
	assert.Contains(t, output, "50/100")
	assert.Contains(t, output, "50%")
}

// TestProgress_Clear tests the behavior of Clear.
//
// It verifies:
//   - Clears progress line with spaces and carriage return
func TestProgress_Clear(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Checking")

	p.Increment()
	p.Clear()

	output := buf.String()
	assert.NotEmpty(t, output, "output should not be empty")
	assert.Contains(t, output, "Checking", "should contain original message")
	assert.Contains(t, output, "1/10", "should contain progress")
	assert.Contains(t, output, "\r", "should contain carriage return for clearing")
	assert.True(t, strings.HasSuffix(output, "\r"), "should end with carriage return from Clear()")
}

// TestProgress_Disabled tests the behavior when progress is disabled.
//
// It verifies:
//   - No output when progress is disabled
func TestProgress_Disabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Checking")
	p.SetEnabled(false)

	p.Increment()
	p.Increment()
	p.Done()

	assert.Empty(t, buf.String())
}

// TestProgress_ZeroTotal tests the behavior with zero total.
//
// It verifies:
//   - Does not panic with zero total
//   - Produces no output
func TestProgress_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 0, "Checking")

	p.Increment()
	p.Done()

	assert.Empty(t, buf.String())
}

// TestProgress_PaddingWhenLineShorter tests the behavior when the rendered
// line gets shorter.
//
// It verifies:
//   - Pads with spaces to clear the previous longer line
func TestProgress_PaddingWhenLineShorter(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 100, "Checking")

	p.SetCurrent(99)
	initialOutput := buf.String()
	assert.Contains(t, initialOutput, "99/100")

	buf.Reset()
	p.SetCurrent(1)

	output := buf.String()
	assert.Contains(t, output, "1/100")
	assert.GreaterOrEqual(t, len(output), len(initialOutput),
		"output should be padded to at least the previous width")

	trimmedLen := len(strings.TrimRight(output, " "))
	assert.Less(t, trimmedLen, len(output), "output should have trailing padding spaces")
}

// TestProgress_ClearWithoutRender tests the behavior of Clear without prior render.
//
// It verifies:
//   - Clear without render produces no output
func TestProgress_ClearWithoutRender(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Checking")

	p.Clear()

	assert.Empty(t, buf.String())
}

// TestProgress_ConcurrentIncrements tests concurrent use of Increment.
//
// It verifies:
//   - Concurrent increments from multiple goroutines reach the exact total
//   - Done renders the final count
func TestProgress_ConcurrentIncrements(t *testing.T) {
	var buf syncBuffer
	p := NewProgress(&buf, 20, "Checking packages")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Increment()
		}()
	}
	wg.Wait()
	p.Done()

	output := buf.String()
	assert.Contains(t, output, "20/20")
	assert.Contains(t, output, "100%")
}
