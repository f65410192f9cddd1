package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/chartparse/parse"
	"github.com/google/go-cmp/cmp"
)

func TestParseCmdFindsSentenceParse(t *testing.T) {
	for _, grammarFile := range []string{"chinese.yaml", "chinese.jsonc", "chinese.ebnf"} {
		t.Run(grammarFile, func(t *testing.T) {
			cmd := newParseCmd()
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs([]string{"-g", "../../testdata/" + grammarFile, "-f", "line", "老谢在编辑学习手册"})

			if err := cmd.Execute(); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.Contains(buf.String(), "\tS\t0\t6\tS -> NP VP\n") {
				t.Errorf("output has no S spanning the sentence:\n%s", buf.String())
			}
		})
	}
}

func TestParseCmdTextHeaders(t *testing.T) {
	cmd := newParseCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"-g", "../../testdata/chinese.yaml", "-e", "both"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := buf.String()
	bu := strings.Index(out, "bottom-up:\n")
	td := strings.Index(out, "top-down:\n")
	if bu != 0 || td <= bu {
		t.Errorf("headers at %d and %d, want bottom-up first:\n%s", bu, td, out)
	}
	if strings.Count(out, "size of arc_list:") != 2 {
		t.Errorf("expected two result blocks:\n%s", out)
	}
}

func TestParseCmdUnknownWord(t *testing.T) {
	cmd := newParseCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-g", "../../testdata/chinese.yaml", "老王"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown word")
	}
}

func TestCheckCmd(t *testing.T) {
	cmd := newCheckCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"../../testdata/chinese.yaml"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(buf.String(), "11 rules, 6 words, start S") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestCheckCmdMissingStart(t *testing.T) {
	cmd := newCheckCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--start", "TOP", "../../testdata/chinese.yaml"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a start category without rules")
	}
}

func TestStrategyList(t *testing.T) {
	var l strategyList
	if err := l.Set("both"); err != nil {
		t.Fatalf("Set(both): %v", err)
	}
	if diff := cmp.Diff(strategyList{parse.BottomUp, parse.TopDown}, l); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if err := l.Set("top-down, bottom-up"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if l.String() != "top-down,bottom-up" {
		t.Errorf("String() = %q", l.String())
	}
	if err := l.Set("left-corner"); err == nil {
		t.Error("Set(left-corner) should fail")
	}
}
