package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"devdoctor/internal/doctor"
	"devdoctor/internal/pathenv"
	"devdoctor/internal/tools"
)

func sampleResult() doctor.RunResult {
	return doctor.RunResult{
		Elevated: false,
		Tools: []doctor.ToolStatus{
			{
				Probe: tools.ToolProbe{ID: tools.ToolGit, DisplayName: "Git", Command: "git"},
				State: tools.InstallState{Kind: tools.FoundNotOnPath, Dir: "/tools/git"},

				Recommendation: "could not update PATH (write persistent PATH: access denied); rerun from an elevated session",
			},
			{
				Probe: tools.ToolProbe{ID: tools.ToolVSCode, DisplayName: "VS Code", Command: "code"},
				State: tools.InstallState{Kind: tools.FoundOnPath, Location: "/usr/bin/code", Version: "1.85.1"},
			},
		},
		Reconciliation: &pathenv.Outcome{
			Kind:   pathenv.OutcomeFailed,
			Dir:    "/tools/git",
			Reason: "write persistent PATH: access denied",
		},
	}
}

func TestRenderCoversEveryTool(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sampleResult())
	out := buf.String()
	for _, want := range []string{"Git", "VS Code", "installed & reachable", "installed, not reachable", "elevated"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	var got struct {
		Healthy bool `json:"healthy"`
		Tools   []struct {
			Tool      string `json:"tool"`
			Status    string `json:"status"`
			Directory string `json:"directory"`
		} `json:"tools"`
		Reconciliation *struct {
			Outcome string `json:"outcome"`
			Reason  string `json:"reason"`
		} `json:"reconciliation"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Healthy {
		t.Fatalf("expected unhealthy")
	}
	if len(got.Tools) != 2 || got.Tools[0].Tool != "git" || got.Tools[0].Directory != "/tools/git" {
		t.Fatalf("unexpected tools: %+v", got.Tools)
	}
	if got.Reconciliation == nil || got.Reconciliation.Outcome != "failed" || got.Reconciliation.Reason == "" {
		t.Fatalf("unexpected reconciliation: %+v", got.Reconciliation)
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleResult())
	for _, want := range []string{
		"# Workstation readiness",
		"| Git |",
		"| VS Code |",
		"## PATH reconciliation",
		"`/tools/git`",
		"## Recommendations",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownHealthyRunHasNoRecommendations(t *testing.T) {
	res := doctor.RunResult{
		Elevated: true,
		Tools: []doctor.ToolStatus{{
			Probe: tools.ToolProbe{ID: tools.ToolGit, DisplayName: "Git", Command: "git"},
			State: tools.InstallState{Kind: tools.FoundOnPath, Location: "/usr/bin/git"},
		}},
	}
	md := Markdown(res)
	if strings.Contains(md, "## Recommendations") {
		t.Fatalf("healthy run must not emit recommendations:\n%s", md)
	}
}
