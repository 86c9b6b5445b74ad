package testUtils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/otiai10/copy"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/CMSgov/pixfeed-app/conf"
	"github.com/CMSgov/pixfeed-app/pixfeed/message"
)

func setEnv(why, key, value string) {
	if err := conf.SetEnv(&testing.T{}, key, value); err != nil {
		log.Printf("Error %s env value %s to %s\n", why, key, value)
	}
}

// SetAndRestoreEnvKey replaces the current value of the env var key,
// returning a function which can be used to restore the original value
func SetAndRestoreEnvKey(key, value string) func() {
	originalValue := conf.GetEnv(key)
	setEnv("setting", key, value)
	return func() {
		setEnv("restoring", key, originalValue)
	}
}

// CopyToTemporaryDirectory copies all of the content found at src into a temporary directory.
// The temporary directory is removed when the test completes.
func CopyToTemporaryDirectory(t *testing.T, src string) string {
	newPath := t.TempDir()
	if err := copy.Copy(src, newPath); err != nil {
		t.Fatalf("Failed to copy contents from %s to %s %s", src, newPath, err.Error())
	}
	return newPath
}

// FixturePath returns the path of a file under pixfeed/message/testdata
// regardless of the calling package's directory.
func FixturePath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "message", "testdata", name)
}

// LoadControlAct decodes a control-act fixture.
func LoadControlAct(t *testing.T, name string) *message.ControlActProcess {
	f, err := os.Open(FixturePath(name))
	require.NoError(t, err)
	defer f.Close()

	act, err := message.Decode(f)
	require.NoError(t, err)
	return act
}

// FixedClock always returns now.
func FixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

// SequentialIDs returns a generator of predictable identifiers: prefix-1, prefix-2, ...
func SequentialIDs(prefix string) func() string {
	var (
		mu sync.Mutex
		n  int
	)
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// MockTranslator is a terminology translator driven by testify expectations.
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(code, sourceSystem, targetSystem string) (string, bool) {
	args := m.Called(code, sourceSystem, targetSystem)
	return args.String(0), args.Bool(1)
}
