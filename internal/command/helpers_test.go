// Where: internal/command/helpers_test.go
// What: Shared fakes and helpers for command tests.
// Why: Run commands end-to-end without AWS or a terminal.
package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/lambda-function-cli/internal/deploy"
	"github.com/poruru/lambda-function-cli/internal/platform"
)

type fakePrompter struct {
	answer bool
	asked  []string
}

func (f *fakePrompter) Confirm(message string) (bool, error) {
	f.asked = append(f.asked, message)
	return f.answer, nil
}

type fakeFunctionAPI struct {
	calls    []string
	lastCode deploy.CodeSource
}

func (f *fakeFunctionAPI) GetFunction(_ context.Context, name string) (deploy.FunctionInfo, error) {
	f.calls = append(f.calls, "get")
	return deploy.FunctionInfo{
		Arn:              fmt.Sprintf("arn:aws:lambda:us-east-1:123456789012:function:%s", name),
		Version:          "$LATEST",
		LastUpdateStatus: deploy.UpdateStatusSuccessful,
	}, nil
}

func (f *fakeFunctionAPI) UpdateFunctionCode(_ context.Context, _ string, code deploy.CodeSource) (deploy.FunctionInfo, error) {
	f.calls = append(f.calls, "update")
	f.lastCode = code
	return deploy.FunctionInfo{Version: "$LATEST", LastUpdateStatus: deploy.UpdateStatusSuccessful}, nil
}

func (f *fakeFunctionAPI) PublishVersion(_ context.Context, _ string) (deploy.FunctionInfo, error) {
	f.calls = append(f.calls, "publish")
	return deploy.FunctionInfo{Version: "3", LastUpdateStatus: deploy.UpdateStatusSuccessful}, nil
}

type fakeObjectStore struct {
	calls  int
	bucket string
	key    string
}

func (f *fakeObjectStore) PutObject(_ context.Context, bucket, key string, body io.Reader, _ int64) error {
	f.calls++
	f.bucket = bucket
	f.key = key
	_, err := io.Copy(io.Discard, body)
	return err
}

type testEnv struct {
	deps      Dependencies
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	prompter  *fakePrompter
	functions *fakeFunctionAPI
	objects   *fakeObjectStore
	// clientsBuilt counts NewClients invocations to prove --no-upload
	// never builds an AWS session.
	clientsBuilt int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
		prompter:  &fakePrompter{answer: true},
		functions: &fakeFunctionAPI{},
		objects:   &fakeObjectStore{},
	}
	cwd := t.TempDir()
	env.deps = Dependencies{
		Out:        env.out,
		ErrOut:     env.errOut,
		Prompter:   env.prompter,
		Getwd:      func() (string, error) { return cwd, nil },
		ConfigPath: filepath.Join(t.TempDir(), "lambda-cli.json"),
		NewClients: func(context.Context, platform.Options) (deploy.FunctionAPI, deploy.ObjectStore, error) {
			env.clientsBuilt++
			return env.functions, env.objects, nil
		},
	}
	return env
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
