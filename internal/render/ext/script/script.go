package script

import (
	"context"

	lua "github.com/yuin/gopher-lua"

	"github.com/espanso/espanso-core/internal/event"
	"github.com/espanso/espanso-core/internal/render"
)

// Extension evaluates a Lua snippet. The script communicates its result by
// assigning the global `output`; `trigger` and `trigger_args` are set
// before the script runs.
type Extension struct {
	exec   *Executor
	cancel context.CancelFunc
}

// New starts a dedicated LState owner goroutine and returns a ready
// Extension. Call Close when done to stop that goroutine.
func New() *Extension {
	L := lua.NewState()
	newSandbox(L).install()
	exec := NewExecutor(L, 32)
	ctx, cancel := context.WithCancel(context.Background())
	go exec.Run(ctx)
	return &Extension{exec: exec, cancel: cancel}
}

func (e *Extension) Close() {
	e.cancel()
	e.exec.Close()
}

func (*Extension) Name() string { return "script" }

func (e *Extension) Calculate(ctx context.Context, rc *render.RenderContext, _ render.Scope, params render.Params) render.Result {
	code := params["code"].Str
	if code == "" {
		return render.OK(render.Single(""))
	}

	var out string
	err := e.exec.Execute(ctx, func(L *lua.LState) error {
		L.SetGlobal("trigger", lua.LString(rc.Trigger))
		argsTbl := L.NewTable()
		for k, v := range rc.TriggerArgs {
			argsTbl.RawSetString(k, lua.LString(v))
		}
		L.SetGlobal("trigger_args", argsTbl)
		L.SetGlobal("output", lua.LString(""))

		if err := L.DoString(code); err != nil {
			return err
		}
		out = L.GetGlobal("output").String()
		return nil
	})
	if err != nil {
		return render.Errorf(event.ErrKindOther, err.Error())
	}
	return render.OK(render.Single(out))
}
