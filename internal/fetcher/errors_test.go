package fetcher

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "status",
			err:  NewStatusError(503),
			want: "transport error (status 503): requesting the api resulted in status code 503",
		},
		{
			name: "invalid argument",
			err:  NewInvalidArgumentError("unsupported coin type \"dogecoin\""),
			want: "invalid_argument error: unsupported coin type \"dogecoin\"",
		},
		{
			name: "parse with cause",
			err:  NewParseError("missing field final_balance", errors.New("eof")),
			want: "parse error: missing field final_balance: eof",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("bitcoin: %w", NewStatusError(418))

	if !IsTransport(wrapped) {
		t.Error("IsTransport() = false, want true")
	}
	if IsParse(wrapped) {
		t.Error("IsParse() = true, want false")
	}
	if IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument() = true, want false")
	}
	if IsTransport(errors.New("plain")) {
		t.Error("IsTransport() on plain error = true, want false")
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Result string `json:"result"`
	}

	if err := DecodeJSON(`{"result":"42"}`, &v); err != nil {
		t.Fatalf("DecodeJSON() returned unexpected error: %v", err)
	}
	if v.Result != "42" {
		t.Errorf("Result = %q, want %q", v.Result, "42")
	}

	err := DecodeJSON(`Invalid Bitcoin Address`, &v)
	if !IsParse(err) {
		t.Errorf("DecodeJSON() error = %v, want parse error", err)
	}
}
