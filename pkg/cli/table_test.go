package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_EmptyProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "NAME", "SLUG")
	tbl.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table wrote %q, want nothing", buf.String())
	}
}

func TestTable_HeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "NAME", "SLUG")
	tbl.Row("Juniper", "juniper")
	tbl.Row("Hewlett Packard", "hewlett-packard")
	tbl.Flush()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4 (header, divider, 2 rows):\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "NAME") || !strings.Contains(lines[0], "SLUG") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----") {
		t.Errorf("divider line = %q", lines[1])
	}
	if !strings.Contains(lines[3], "hewlett-packard") {
		t.Errorf("row line = %q", lines[3])
	}
}
