package inputs

import (
	"testing"

	"github.com/dnd-it/action-workflow-files/workflow"
)

func TestParseMapping(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    workflow.Mapping
		wantErr bool
	}{
		{
			name: "document order kept",
			yaml: "zeta: 1\nalpha: two\nmid: 3.0\n",
			want: workflow.Mapping{workflow.KV("zeta", "1"), workflow.KV("alpha", "two"), workflow.KV("mid", "3.0")},
		},
		{
			name: "literal scalars",
			yaml: "version: 1.10\nenabled: yes\nquoted: \"a: b\"\n",
			want: workflow.Mapping{workflow.KV("version", "1.10"), workflow.KV("enabled", "yes"), workflow.KV("quoted", "a: b")},
		},
		{
			name: "block scalar",
			yaml: "notes: |\n  one\n  two\n",
			want: workflow.Mapping{workflow.KV("notes", "one\ntwo\n")},
		},
		{
			name: "empty input",
			yaml: "  \n",
			want: nil,
		},
		{
			name:    "sequence root",
			yaml:    "- a\n- b\n",
			wantErr: true,
		},
		{
			name:    "nested mapping",
			yaml:    "a:\n  b: c\n",
			wantErr: true,
		},
		{
			name:    "null value",
			yaml:    "a:\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			yaml:    "a: [b\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMapping(tt.yaml)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMapping error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseMapping got %d entries, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Setenv("INPUT_OUTPUTS", "a: 1\nb: x\n")
	t.Setenv("INPUT_ENV", "")
	t.Setenv("INPUT_PATHS", "bin\r\n  tools/*/bin  \n\n")
	t.Setenv("INPUT_GLOB", "true")
	t.Setenv("INPUT_SUMMARY", "## Done")
	t.Setenv("INPUT_SUMMARY_FILE", "")
	t.Setenv("INPUT_PREFIX", "")
	t.Setenv("INPUT_WORKING_DIRECTORY", "")
	t.Setenv("GITHUB_WORKSPACE", "/work")

	cfg, err := Parse()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Outputs) != 2 || cfg.Outputs[0].Key != "a" || cfg.Outputs[1].Key != "b" {
		t.Errorf("unexpected outputs %+v", cfg.Outputs)
	}
	if len(cfg.Paths) != 2 || cfg.Paths[0] != "bin" || cfg.Paths[1] != "tools/*/bin" {
		t.Errorf("unexpected paths %q", cfg.Paths)
	}
	if !cfg.Glob {
		t.Error("glob should be enabled")
	}
	if cfg.Prefix != "GITHUB" {
		t.Errorf("prefix = %q, want GITHUB", cfg.Prefix)
	}
	if cfg.WorkingDirectory != "/work" {
		t.Errorf("working directory = %q, want /work", cfg.WorkingDirectory)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "nothing to do", env: map[string]string{}},
		{name: "bad glob", env: map[string]string{"INPUT_SUMMARY": "x", "INPUT_GLOB": "maybe"}},
		{name: "bad outputs", env: map[string]string{"INPUT_OUTPUTS": "- a"}},
		{name: "bad env", env: map[string]string{"INPUT_ENV": "a:\n  b: c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"INPUT_OUTPUTS", "INPUT_ENV", "INPUT_PATHS", "INPUT_GLOB", "INPUT_SUMMARY", "INPUT_SUMMARY_FILE"} {
				t.Setenv(k, tt.env[k])
			}
			if _, err := Parse(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
