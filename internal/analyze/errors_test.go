package analyze

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "io error is prefixed",
			err:  IOErrorf("failed to open %s", "a.txt"),
			want: "io error: failed to open a.txt",
		},
		{
			name: "other error is bare",
			err:  Otherf("unexpected state %d", 7),
			want: "unexpected state 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	ioErr := IOErrorf("failed to open %s", "a.txt")

	if !errors.Is(ioErr, Error{Kind: KindIO}) {
		t.Error("io error did not match the bare io kind")
	}
	if errors.Is(ioErr, Error{Kind: KindOther}) {
		t.Error("io error matched the other kind")
	}
	if !errors.Is(ioErr, Error{Kind: KindIO, Message: "failed to open a.txt"}) {
		t.Error("error did not match its exact value")
	}
	if errors.Is(ioErr, Error{Kind: KindIO, Message: "something else"}) {
		t.Error("error matched a different message of the same kind")
	}
	if errors.Is(ioErr, fmt.Errorf("failed to open a.txt")) {
		t.Error("error matched a plain error value")
	}
}

func TestErrorConstructors(t *testing.T) {
	if e := IOErrorf("x"); e.Kind != KindIO {
		t.Errorf("IOErrorf kind = %s, expected %s", e.Kind, KindIO)
	}
	if e := Otherf("x"); e.Kind != KindOther {
		t.Errorf("Otherf kind = %s, expected %s", e.Kind, KindOther)
	}
}

func TestRecord_Failed(t *testing.T) {
	rec := Record{}
	if rec.Failed() {
		t.Error("empty record reported failure")
	}

	rec.Errors = append(rec.Errors, Otherf("boom"))
	if !rec.Failed() {
		t.Error("record with errors reported success")
	}
}
