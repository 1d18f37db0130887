package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackThrottles(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	clock := time.Unix(0, 0)

	r := New(&out, time.Second)
	r.now = func() time.Time { return clock }

	track := r.Track("a.txt")

	track(10, 100) // first call prints
	track(20, 100) // same instant, throttled

	clock = clock.Add(2 * time.Second)
	track(30, 100)

	track(100, 100) // completion always prints

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"a.txt: 10 B / 100 B (10%)",
		"a.txt: 30 B / 100 B (30%)",
		"a.txt: 100 B / 100 B (100%)",
	}, lines)
}

func TestTrackUnknownTotal(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	r := New(&out, 0)
	r.Track("-")(2048, 0)

	assert.Equal(t, "-: 2.0 KiB\n", out.String())
}
