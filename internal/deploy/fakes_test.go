// Where: internal/deploy/fakes_test.go
// What: Fake platform ports shared by the deploy tests.
// Why: Exercise the pipeline without the AWS SDK.
package deploy

import (
	"context"
	"fmt"
	"io"
)

type fakeFunctionAPI struct {
	calls []string

	getErr     error
	updateErr  error
	publishErr error

	arn string
	// statusSeq is consumed one value per GetFunction call after the first;
	// the last value repeats.
	statusSeq   []string
	statusIndex int

	lastCode CodeSource
}

func (f *fakeFunctionAPI) nextStatus() string {
	if len(f.statusSeq) == 0 {
		return UpdateStatusSuccessful
	}
	status := f.statusSeq[f.statusIndex]
	if f.statusIndex < len(f.statusSeq)-1 {
		f.statusIndex++
	}
	return status
}

func (f *fakeFunctionAPI) GetFunction(_ context.Context, name string) (FunctionInfo, error) {
	f.calls = append(f.calls, "get")
	if f.getErr != nil {
		return FunctionInfo{}, f.getErr
	}
	arn := f.arn
	if arn == "" {
		arn = fmt.Sprintf("arn:aws:lambda:us-east-1:123456789012:function:%s", name)
	}
	return FunctionInfo{Arn: arn, Version: "$LATEST", LastUpdateStatus: f.nextStatus()}, nil
}

func (f *fakeFunctionAPI) UpdateFunctionCode(_ context.Context, _ string, code CodeSource) (FunctionInfo, error) {
	f.calls = append(f.calls, "update")
	if f.updateErr != nil {
		return FunctionInfo{}, f.updateErr
	}
	f.lastCode = code
	return FunctionInfo{Arn: f.arn, Version: "$LATEST", LastUpdateStatus: UpdateStatusInProgress}, nil
}

func (f *fakeFunctionAPI) PublishVersion(_ context.Context, _ string) (FunctionInfo, error) {
	f.calls = append(f.calls, "publish")
	if f.publishErr != nil {
		return FunctionInfo{}, f.publishErr
	}
	return FunctionInfo{Arn: f.arn, Version: "7", LastUpdateStatus: UpdateStatusSuccessful}, nil
}

type fakeObjectStore struct {
	calls   int
	bucket  string
	key     string
	size    int64
	putErr  error
	payload []byte
}

func (f *fakeObjectStore) PutObject(_ context.Context, bucket, key string, body io.Reader, size int64) error {
	f.calls++
	if f.putErr != nil {
		return f.putErr
	}
	f.bucket = bucket
	f.key = key
	f.size = size
	payload, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.payload = payload
	return nil
}
