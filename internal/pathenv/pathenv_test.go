package pathenv

import (
	"strings"
	"testing"
)

func join(segs ...string) string {
	return strings.Join(segs, Delimiter)
}

func TestSplitTrimsAndDropsEmpty(t *testing.T) {
	got := Split(join(" /a ", "", "/b"))
	if len(got) != 2 || got[0] != "/a" || got[1] != "/b" {
		t.Fatalf("unexpected segments: %v", got)
	}
	if got := Split(""); len(got) != 0 {
		t.Fatalf("expected no segments for empty value, got %v", got)
	}
}

func TestContainsCaseInsensitiveExact(t *testing.T) {
	v := join("/Tools/Git", "/opt/editor")
	if !Contains(v, "/tools/git") {
		t.Fatalf("expected case-insensitive match")
	}
	if Contains(v, "/Tools") {
		t.Fatalf("prefix of a segment must not match")
	}
	if Contains(v, "/Tools/Git/cmd") {
		t.Fatalf("longer path must not match a shorter segment")
	}
	if Contains("", "/a") {
		t.Fatalf("empty value contains nothing")
	}
}

func TestContainsIgnoresSegmentWhitespace(t *testing.T) {
	if !Contains(join(" /a ", "/b"), "/a") {
		t.Fatalf("expected match despite stored surrounding whitespace")
	}
}

func TestAppend(t *testing.T) {
	if got := Append("", "/x"); got != "/x" {
		t.Fatalf("append to empty must not add a delimiter, got %q", got)
	}
	if got := Append("/a", "/x"); got != "/a"+Delimiter+"/x" {
		t.Fatalf("unexpected append result: %q", got)
	}
}
