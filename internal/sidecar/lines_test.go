package sidecar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testGUID = "0123456789abcdef0123456789abcdef"

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single unterminated", "a", []string{"a"}},
		{"LF", "a\nb\n", []string{"a\n", "b\n"}},
		{"CRLF kept", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"mixed with tail", "a\r\nb\nc", []string{"a\r\n", "b\n", "c"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines([]byte(tt.content))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitLines() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRewrite_ReplacesIdentifierLine(t *testing.T) {
	in := []string{
		"fileFormatVersion: 2\r\n",
		"guid: ffffffffffffffffffffffffffffffff\r\n",
		"MonoImporter:\r\n",
		"  serializedVersion: 2\r\n",
	}
	want := []string{
		"fileFormatVersion: 2\r\n",
		"guid: " + testGUID + "\n",
		"MonoImporter:\r\n",
		"  serializedVersion: 2\r\n",
	}

	got := Rewrite(in, testGUID, "2")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
	if in[1] != "guid: ffffffffffffffffffffffffffffffff\r\n" {
		t.Error("Rewrite() modified its input")
	}
}

func TestRewrite_ReplacesEveryIdentifierLine(t *testing.T) {
	in := []string{"guid: a\n", "x: 1\n", "guid: b\n"}
	want := []string{"guid: " + testGUID + "\n", "x: 1\n", "guid: " + testGUID + "\n"}

	if diff := cmp.Diff(want, Rewrite(in, testGUID, "2")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_IndentedIdentifierIsNotAField(t *testing.T) {
	in := []string{"fileFormatVersion: 2\n", "  guid: nested\n"}
	want := []string{"fileFormatVersion: 2\n", "guid: " + testGUID + "\n", "  guid: nested\n"}

	if diff := cmp.Diff(want, Rewrite(in, testGUID, "2")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_InsertsAfterFirstFormatVersion(t *testing.T) {
	in := []string{
		"# leading\n",
		"fileFormatVersion: 2\n",
		"fileFormatVersion: 3\n",
		"folderAsset: yes\n",
	}
	want := []string{
		"# leading\n",
		"fileFormatVersion: 2\n",
		"guid: " + testGUID + "\n",
		"fileFormatVersion: 3\n",
		"folderAsset: yes\n",
	}

	if diff := cmp.Diff(want, Rewrite(in, testGUID, "2")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_TerminatesUnterminatedAnchor(t *testing.T) {
	in := []string{"fileFormatVersion: 2"}
	want := []string{"fileFormatVersion: 2\n", "guid: " + testGUID + "\n"}

	if diff := cmp.Diff(want, Rewrite(in, testGUID, "2")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_PrependsHeader(t *testing.T) {
	in := []string{"TextureImporter:\n", "  mipmaps: 0\n"}
	want := []string{
		"fileFormatVersion: 2\n",
		"guid: " + testGUID + "\n",
		"TextureImporter:\n",
		"  mipmaps: 0\n",
	}

	if diff := cmp.Diff(want, Rewrite(in, testGUID, "2")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrite_EmptyFile(t *testing.T) {
	want := []string{"fileFormatVersion: 7\n", "guid: " + testGUID + "\n"}

	if diff := cmp.Diff(want, Rewrite(nil, testGUID, "7")); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}
