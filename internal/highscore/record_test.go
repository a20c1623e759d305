package highscore

import (
	"errors"
	"testing"
)

func TestDecodeRecord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Record
		wantErr bool
	}{
		{"single record", "highscore=42", Record{"highscore": 42}, false},
		{"trailing newline", "highscore=7\n", Record{"highscore": 7}, false},
		{"spaces around value", " highscore = 9 \n\n", Record{"highscore": 9}, false},
		{"multiple keys", "a=1\nb=2", Record{"a": 1, "b": 2}, false},
		{"empty file", "", Record{}, false},
		{"missing separator", "highscore 42", nil, true},
		{"not a number", "highscore=lots", nil, true},
		{"missing key", "=5", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRecord([]byte(tc.input))
			if tc.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, expected %v", got, tc.want)
			}
			for k, v := range tc.want {
				if got[k] != v {
					t.Errorf("%s = %d, expected %d", k, got[k], v)
				}
			}
		})
	}
}

func TestRecordEncode(t *testing.T) {
	if got := string(Record{"highscore": 11}.Encode()); got != "highscore=11" {
		t.Errorf("Encode() = %q, expected %q", got, "highscore=11")
	}
	if got := string(Record{"b": 2, "a": 1}.Encode()); got != "a=1\nb=2" {
		t.Errorf("Encode() = %q, keys should be sorted", got)
	}
}
