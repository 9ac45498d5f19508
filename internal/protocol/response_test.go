package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/labi-le/clipwire/pkg/clipboard"
)

func marshal(t *testing.T, resp Response) string {
	t.Helper()
	payload, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	return string(payload)
}

func TestResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		resp Response
		want string
	}{
		{
			name: "Success",
			resp: Success(),
			want: `{"success":true}`,
		},
		{
			name: "Version",
			resp: VersionResponse("1.2.3"),
			want: `{"success":true,"version":"1.2.3"}`,
		},
		{
			name: "PasteWithMime",
			resp: PasteResponse(clipboard.Data{Text: "hello", Mime: "text/plain"}),
			want: `{"success":true,"data":"hello","mime":"text/plain"}`,
		},
		{
			// An empty clipboard still carries the data field; only the
			// mime label disappears.
			name: "PasteEmpty",
			resp: PasteResponse(clipboard.Data{}),
			want: `{"success":true,"data":""}`,
		},
		{
			name: "FailureFlat",
			resp: Failure(errors.New("no action specified")),
			want: `{"success":false,"message":"no action specified"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := marshal(t, tt.resp); got != tt.want {
				t.Errorf("response = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFailure_Chain(t *testing.T) {
	root := errors.New("connection refused")
	mid := fmt.Errorf("failed to open clipboard: %w", root)
	top := clipboard.System(mid)

	want := `{"success":false,"message":"system error",` +
		`"source":{"message":"failed to open clipboard",` +
		`"source":{"message":"connection refused"}}}`

	if got := marshal(t, Failure(top)); got != want {
		t.Errorf("response = %s, want %s", got, want)
	}
}

func TestFailure_WrapDoesNotRepeatCause(t *testing.T) {
	err := clipboard.Wrap("invalid request", errors.New("unexpected end of JSON input"))

	want := `{"success":false,"message":"invalid request",` +
		`"source":{"message":"unexpected end of JSON input"}}`

	if got := marshal(t, Failure(err)); got != want {
		t.Errorf("response = %s, want %s", got, want)
	}
}
