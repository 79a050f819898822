package completion

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func testRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "refcat"}
	root.AddCommand(&cobra.Command{Use: "generate", Short: "Render catalogs"})
	root.AddCommand(&cobra.Command{Use: "watch", Short: "Watch a style file"})
	return root
}

func TestBashCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenBashCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "_refcat") {
		t.Error("bash completion should contain _refcat function")
	}
}

func TestZshCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenZshCompletion(&buf); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "compdef") {
		t.Error("zsh completion should contain compdef")
	}
}

func TestFishCompletion(t *testing.T) {
	root := testRootCmd()
	var buf bytes.Buffer

	if err := root.GenFishCompletion(&buf, true); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "complete -c refcat") {
		t.Error("fish completion should contain 'complete -c refcat'")
	}
}
