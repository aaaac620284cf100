package snapshot

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/keyholelabs/keyhole"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Runtime: "anathema 0.2",
		Slots: []Slot{
			{Owned: 0x0001_00AB_0000_0007, Sub: "None"},
			{Owned: 0x0009_0000_0000_0000, Sub: "None"},
			{Owned: 0xFFFF_0000_0000_0000, Sub: "SubKey(12)"},
		},
	}
}

func TestContainerRoundTrip(t *testing.T) {
	want := sampleSnapshot()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Version != Version {
		t.Fatalf("version: got %d, want %d", got.Version, Version)
	}
	if got.Runtime != want.Runtime {
		t.Fatalf("runtime: got %q, want %q", got.Runtime, want.Runtime)
	}
	if len(got.Slots) != len(want.Slots) {
		t.Fatalf("slots: got %d, want %d", len(got.Slots), len(want.Slots))
	}
	for i := range want.Slots {
		if got.Slots[i] != want.Slots[i] {
			t.Fatalf("slot %d: got %+v, want %+v", i, got.Slots[i], want.Slots[i])
		}
	}
}

func TestDecodeRejectsMalformedContainers(t *testing.T) {
	valid, err := Encode(sampleSnapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	cases := []struct {
		name    string
		mutate  func([]byte) []byte
		wantErr string
	}{
		{"short", func(b []byte) []byte { return b[:6] }, "too short"},
		{"bad magic", func(b []byte) []byte { b[0] = 'X'; return b }, "header magic"},
		{"truncated body", func(b []byte) []byte {
			// drop one body byte, keep the trailer
			out := append([]byte{}, b[:len(b)-trailerSize-1]...)
			return append(out, b[len(b)-trailerSize:]...)
		}, "length mismatch"},
		{"flipped body bit", func(b []byte) []byte { b[len(HeaderMagic)] ^= 0x01; return b }, "checksum mismatch"},
		{"flipped checksum", func(b []byte) []byte { b[len(b)-1] ^= 0xFF; return b }, "checksum mismatch"},
		{"garbage body", func(b []byte) []byte {
			body := []byte{0xFF, 0xFF, 0xFF}
			out := append([]byte{}, HeaderMagic[:]...)
			out = append(out, body...)
			var tr [trailerSize]byte
			binary.LittleEndian.PutUint32(tr[0:4], uint32(len(body)))
			binary.LittleEndian.PutUint32(tr[4:8], Checksum(body, 0))
			return append(out, tr[:]...)
		}, "decode snapshot body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.mutate(append([]byte{}, valid...))
			_, err := Decode(data)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	data, err := Encode(sampleSnapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := DetectFormat(data); got != FormatContainer {
		t.Fatalf("container detected as %d", got)
	}
	if got := DetectFormat([]byte("  {\"slots\": []}")); got != FormatJSON {
		t.Fatalf("json detected as %d", got)
	}
	if got := DetectFormat([]byte("plain text")); got != FormatUnknown {
		t.Fatalf("garbage detected as %d", got)
	}
	if got := DetectFormat(nil); got != FormatUnknown {
		t.Fatalf("empty input detected as %d", got)
	}
}

func TestLoadBothFormats(t *testing.T) {
	data, err := Encode(sampleSnapshot())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := Load(data); err != nil {
		t.Fatalf("load container: %v", err)
	}
	if _, err := Load([]byte(`{"runtime": "anathema", "slots": []}`)); err != nil {
		t.Fatalf("load json: %v", err)
	}
	if _, err := Load([]byte("nope")); err == nil {
		t.Fatal("expected an error for unrecognized input")
	}
}

func TestSnapshotRender(t *testing.T) {
	lines := sampleSnapshot().Render(keyhole.DefaultRegistry())
	want := []string{
		"<PendingValue (Int) idx: 7 | g: 171 | sub: None>",
		"<PendingValue (Composite) idx: 0 | g: 0 | sub: None>",
		"<PendingValue (corrupt type information) idx: 0 | g: 0 | sub: SubKey(12)>",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSnapshotRenderFallback(t *testing.T) {
	// empty registry: every slot falls back to the host default form
	lines := sampleSnapshot().Render(keyhole.NewRegistry())
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "PendingValue(0x000100ab00000007)" {
		t.Fatalf("fallback line: %q", lines[0])
	}
}
