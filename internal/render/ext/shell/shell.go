// Package shell implements the var_type=="shell" extension: it spawns a
// child process with the current render scope exported as ESPANSO_*
// environment variables, grounded on the original implementation's
// espanso-render/src/extension/shell.rs (SPEC_FULL.md §C.1).
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/espanso/espanso-core/internal/render"
)

type Extension struct {
	// loginPATH returns the interactive login shell's PATH. On macOS,
	// Calculate calls it on every invocation, running
	// `/bin/zsh -lic 'echo $PATH'`, so child processes see the same PATH
	// the user's terminal would, not launchd's minimal default.
	loginPATH func() (string, error)
}

func New() Extension {
	return Extension{loginPATH: probeMacOSLoginPATH}
}

func (Extension) Name() string { return "shell" }

func (e Extension) Calculate(ctx context.Context, _ *render.RenderContext, scope render.Scope, params render.Params) render.Result {
	cmdStr := params["cmd"].Str
	if cmdStr == "" {
		return render.OK(render.Single(""))
	}

	shellBin, shellArg := "sh", "-c"
	if s, ok := params["shell"]; ok && s.Str != "" {
		shellBin, shellArg = s.Str, "-c"
	}

	cmd := exec.CommandContext(ctx, shellBin, shellArg, cmdStr)
	cmd.Env = scopeEnv(scope)
	if runtime.GOOS == "darwin" && e.loginPATH != nil {
		if path, err := e.loginPATH(); err == nil && path != "" {
			cmd.Env = append(cmd.Env, "PATH="+path)
		}
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return render.Aborted()
	}
	return render.OK(render.Single(strings.TrimRight(out.String(), "\n")))
}

// scopeEnv exports every already-evaluated scope variable as ESPANSO_<NAME>,
// matching the original's "full env of the current scope" behavior.
func scopeEnv(scope render.Scope) []string {
	env := make([]string, 0, len(scope))
	for name, out := range scope {
		key := "ESPANSO_" + strings.ToUpper(name)
		switch out.Kind {
		case render.KindSingle:
			env = append(env, key+"="+out.Single)
		case render.KindMultiple:
			for sub, v := range out.Multiple {
				env = append(env, key+"_"+strings.ToUpper(sub)+"="+v)
			}
		}
	}
	return env
}

func probeMacOSLoginPATH() (string, error) {
	shellBin := "/bin/zsh"
	out, err := exec.Command(shellBin, "-lic", "echo $PATH").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
