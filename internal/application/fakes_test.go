package application_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fnwatchdog/fnwatchdog/internal/domain"
)

type logEntry struct {
	Level   string
	Msg     string
	KeyVals []any
}

func (e logEntry) field(key string) any {
	for i := 0; i+1 < len(e.KeyVals); i += 2 {
		if e.KeyVals[i] == key {
			return e.KeyVals[i+1]
		}
	}
	return nil
}

// recordingLogger captures log entries for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	debug   bool
	entries []logEntry
}

func (l *recordingLogger) add(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{Level: level, Msg: msg, KeyVals: kv})
}

func (l *recordingLogger) Debug(msg string, kv ...any) { l.add("debug", msg, kv) }
func (l *recordingLogger) Info(msg string, kv ...any)  { l.add("info", msg, kv) }
func (l *recordingLogger) Warn(msg string, kv ...any)  { l.add("warn", msg, kv) }
func (l *recordingLogger) Error(msg string, kv ...any) { l.add("error", msg, kv) }
func (l *recordingLogger) DebugEnabled() bool          { return l.debug }

// withKey returns entries whose message was built from the given key.
func (l *recordingLogger) withKey(key string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if len(e.Msg) >= len(key) && e.Msg[:len(key)] == key {
			out = append(out, e)
		}
	}
	return out
}

// keyTranslator renders "key|arg1|arg2" so tests can match on keys.
type keyTranslator struct{}

func (keyTranslator) Translate(_ string, key string, args ...any) string {
	out := key
	for _, a := range args {
		out += fmt.Sprintf("|%v", a)
	}
	return out
}

// fakeEngine returns canned reports per root and records every call.
type fakeEngine struct {
	mu      sync.Mutex
	reports map[string]domain.ViolationReport
	faults  map[string]error
	calls   []string
}

func (e *fakeEngine) Check(root string) (domain.ViolationReport, error) {
	e.mu.Lock()
	e.calls = append(e.calls, root)
	e.mu.Unlock()
	if err, ok := e.faults[root]; ok {
		return nil, err
	}
	return e.reports[root], nil
}

func (e *fakeEngine) called() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string{}, e.calls...)
}

// engineFactory returns a factory handing out eng and counting constructions.
func engineFactory(eng *fakeEngine, built *int) domain.EngineFactory {
	return func(_ []string, _ map[string]string) (domain.ConventionEngine, error) {
		*built++
		return eng, nil
	}
}

func failingFactory(err error) domain.EngineFactory {
	return func(_ []string, _ map[string]string) (domain.ConventionEngine, error) {
		return nil, err
	}
}

type staticRoots []string

func (r staticRoots) DefaultRoots(_, _ string) []string { return r }

type fakeGit struct {
	hash string
	err  error
}

func (g fakeGit) IsGitRepo(string) bool { return true }
func (g fakeGit) CommitHash(string) (string, error) {
	return g.hash, g.err
}

var errEngineFault = errors.New("engine fault")
