package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/jvmtune/internal/config"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance for system testing, capturing
// the plan output and the logs in separate buffers.
func SetupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	planBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(planBuffer, logBuffer, appConfig, loader)

	t.Cleanup(func() {
		if os.Getenv("JVMTUNE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, planBuffer, logBuffer
}
